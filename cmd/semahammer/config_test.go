package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hammer.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "lock: rwlock\nstrategy: spin\nreaders: 7\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, lockRWLock, cfg.Lock)
	assert.Equal(t, strategySpin, cfg.Strategy)
	assert.Equal(t, 7, cfg.Readers)
	assert.Equal(t, defaultConfig().Workers, cfg.Workers)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "lokc: mutex\n"))
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"lock":       func(c *Config) { c.Lock = "ticket" },
		"strategy":   func(c *Config) { c.Strategy = "park" },
		"workers":    func(c *Config) { c.Workers = 0 },
		"readers":    func(c *Config) { c.Lock, c.Readers = lockRWLock, -1 },
		"iterations": func(c *Config) { c.Iterations = -3 },
		"gomaxprocs": func(c *Config) { c.GOMAXPROCS = -1 },
	} {
		cfg := defaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
	assert.NoError(t, defaultConfig().Validate())
}

func TestOverride(t *testing.T) {
	cfg := defaultConfig()
	flags := Config{Lock: lockRWLock, Workers: 9}

	override(&cfg, flags, "workers")
	assert.Equal(t, 9, cfg.Workers)
	assert.Equal(t, lockMutex, cfg.Lock)

	override(&cfg, flags, "lock")
	assert.Equal(t, lockRWLock, cfg.Lock)
}
