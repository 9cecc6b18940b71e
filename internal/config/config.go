package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log LogConfig `yaml:"log"`
	Run RunConfig `yaml:"run"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RunConfig holds settings of a single command invocation.
type RunConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"RUN_TIMEOUT" env-default:"30m"`
}
