package providers

import (
	"breathed/internal/structures"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "BREATHED_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "BREATHED_SAVE_INTERVAL")
	viper.BindEnv("watcher.mode", "BREATHED_WATCHER_MODE")
	viper.BindEnv("watcher.cooldown", "BREATHED_COOLDOWN")
	viper.BindEnv("database.path", "BREATHED_DB_PATH")
	viper.BindEnv("cache.enabled", "BREATHED_CACHE_ENABLED")
	viper.BindEnv("cache.size", "BREATHED_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Watcher.Cooldown <= 0 {
		conf.Watcher.Cooldown = 10 * time.Second
	}
	if conf.Watcher.EventRateLimit <= 0 {
		conf.Watcher.EventRateLimit = 5
	}
	if conf.Watcher.EventBurst <= 0 {
		conf.Watcher.EventBurst = 10
	}
	if conf.Watcher.DefaultDuration <= 0 {
		conf.Watcher.DefaultDuration = 60
	}

	conf.AppName = "BreatheDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
