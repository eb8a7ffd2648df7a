package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type WatcherConfig struct {
	// Mode selects the platform bridge: "sample" serves a fixed app list
	// for development builds, "none" disables the bridge entirely.
	Mode             string        `yaml:"mode" validate:"required|in:sample,none"`
	Cooldown         time.Duration `yaml:"cooldown"`
	MonitoredPath    string        `yaml:"monitoredPath" validate:"required|unixPath"`
	EventRateLimit   float64       `yaml:"eventRateLimit"`
	EventBurst       int           `yaml:"eventBurst"`
	DefaultDuration  int           `yaml:"defaultDuration"`
	SessionRetention time.Duration `yaml:"sessionRetention"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	TTL     int  `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server         `yaml:"webServer"`
	Persistence Persistence    `yaml:"persistence"`
	Logger      LoggerConfig   `yaml:"logger"`
	Watcher     WatcherConfig  `yaml:"watcher"`
	Database    DatabaseConfig `yaml:"database"`
	Cache       CacheConfig    `yaml:"cache"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}
