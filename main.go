package main

import (
	"flag"
	"fmt"
	"os"

	"breathed/internal/di"
	"breathed/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "breathed.yaml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "duplicate logs to stderr")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "breathed: %s\n", err)
		os.Exit(1)
	}
}
