package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Names      []string // task or alias names, executed in order
	Dirs       []string // search directories, probed in order
	ConfigFile string   // config file name looked up across Dirs
	List       bool     // list tasks instead of executing

	LogFormat string
	LogLevel  string

	Argv map[string]string // pass-through task arguments
}

// DefaultDir is the search directory assumed when none is given.
const DefaultDir = "tasks"

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Names) == 0 && !cfg.List {
		return nil, errors.New("at least one task or alias name is required")
	}
	if cfg.ConfigFile == "" {
		return nil, errors.New("ConfigFile is a required configuration field and cannot be empty")
	}
	if len(cfg.Dirs) == 0 {
		cfg.Dirs = []string{DefaultDir}
	}
	if cfg.Argv == nil {
		cfg.Argv = map[string]string{}
	}

	return &cfg, nil
}
