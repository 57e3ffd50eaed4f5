package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config describes one hammer run.
type Config struct {
	Lock       string `yaml:"lock"`
	Strategy   string `yaml:"strategy"`
	Workers    int    `yaml:"workers"`
	Readers    int    `yaml:"readers"`
	Iterations int    `yaml:"iterations"`
	GOMAXPROCS int    `yaml:"gomaxprocs"`
}

const (
	lockMutex  = "mutex"
	lockRWLock = "rwlock"

	strategySpin  = "spin"
	strategyYield = "yield"
)

func defaultConfig() Config {
	return Config{
		Lock:       lockMutex,
		Strategy:   strategyYield,
		Workers:    4,
		Readers:    4,
		Iterations: 10000,
	}
}

// loadConfig reads a YAML file on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Lock {
	case lockMutex, lockRWLock:
	default:
		return fmt.Errorf("unknown lock %q", c.Lock)
	}
	switch c.Strategy {
	case strategySpin, strategyYield:
	default:
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Lock == lockRWLock && c.Readers < 0 {
		return fmt.Errorf("readers must not be negative, got %d", c.Readers)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.GOMAXPROCS < 0 {
		return fmt.Errorf("gomaxprocs must not be negative, got %d", c.GOMAXPROCS)
	}
	return nil
}
