package app

import "errors"

// DefaultConfigFile is looked up in the working directory when no
// configuration path is given.
const DefaultConfigFile = "schemagen.hcl"

// Config holds all the necessary configuration for an App instance to run.
// Non-empty directory and generator fields override the configuration file.
type Config struct {
	ConfigPath string // hcl file or directory

	BaseDir   string
	BuildDir  string
	Generator string
	Command   string

	// Plan resolves and prints every file's options instead of generating.
	Plan bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
