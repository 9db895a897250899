package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "page", cfg.PageParamName)
	assert.Equal(t, 5, cfg.DefaultPageSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("PAGINATION_PAGE_SIZE", "25")
	t.Setenv("PAGINATION_PAGE_ARGUMENT_NAME", "p")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, "p", cfg.PageParamName)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_NonPositivePageSize(t *testing.T) {
	t.Setenv("PAGINATION_PAGE_SIZE", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}
