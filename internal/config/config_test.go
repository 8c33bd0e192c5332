package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cplx/internal/display"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	mode, err := cfg.DisplayMode()
	require.NoError(t, err)
	assert.Equal(t, display.Tuple, mode)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"CPLX_DISPLAY_MODE":    "angle",
		"CPLX_DISPLAY_DEGREES": "true",
		"CPLX_LOCALE":          "de-DE",
	})
	require.NoError(t, err)
	assert.Equal(t, "angle", cfg.Mode)
	assert.True(t, cfg.Degrees)
	assert.Equal(t, "de-DE", cfg.Locale)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.DisplayOptions()
	require.NoError(t, err)
	assert.True(t, opts.Degrees)
	assert.NotNil(t, opts.Printer)
}

func TestLoadFrom_BadBool(t *testing.T) {
	_, err := LoadFrom(map[string]string{"CPLX_DISPLAY_DEGREES": "sometimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoad_ProcessEnv(t *testing.T) {
	t.Setenv("CPLX_DISPLAY_MODE", "cart")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "cart", cfg.Mode)
}

func TestValidate_BadMode(t *testing.T) {
	err := Config{Mode: "spiral"}.Validate()
	assert.ErrorIs(t, err, display.ErrInvalidMode)
}

func TestValidate_BadLocale(t *testing.T) {
	err := Config{Mode: "tuple", Locale: "not a tag!"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid locale")

	_, err = Config{Mode: "tuple", Locale: "not a tag!"}.DisplayOptions()
	assert.Error(t, err)
}

func TestDisplayOptions_NoLocale(t *testing.T) {
	opts, err := Default().DisplayOptions()
	require.NoError(t, err)
	assert.Nil(t, opts.Printer)
	assert.False(t, opts.Degrees)
}
