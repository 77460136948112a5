package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "~/.modgen/templates", cfg.TemplatesDir)
	assert.Equal(t, "text", cfg.Output)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestWithDefaults_KeepsSetValues(t *testing.T) {
	cfg := (&Config{TemplatesDir: "/srv/templates", Author: "ana"}).WithDefaults()
	assert.Equal(t, "/srv/templates", cfg.TemplatesDir)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "ana", cfg.Author)
}
