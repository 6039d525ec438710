package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.ImagePath)
}

func TestLoadUnparsableFallsBack(t *testing.T) {
	t.Setenv("SEED_CATALOG", "not-a-bool")
	t.Setenv("ABOUT_CONCURRENCY", "many")

	cfg := Load()

	assert.True(t, cfg.SeedCatalog)
	assert.Equal(t, 4, cfg.AboutConcurrency)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("DB_PATH", "/custom/db.sqlite")
	t.Setenv("IMAGE_PATH", "/custom/img")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SEED_CATALOG", "false")
	t.Setenv("ABOUT_CONCURRENCY", "1")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/custom/db.sqlite", cfg.DBPath)
	assert.Equal(t, "/custom/img", cfg.ImagePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.SeedCatalog)
	assert.Equal(t, 1, cfg.AboutConcurrency)
}
