package cmd

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/habrreader/internal/config"
)

func TestInitConfig_DefaultsLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())

	require.NoError(t, initConfig())

	cfg, err := config.Load(viper.GetViper())
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())

	t.Setenv("HABR_BASE_URL", "https://habr.example.test")
	t.Setenv("HABR_LOCALE", "en")
	t.Setenv("HABR_REQUEST_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SERVER_ADDRESS", ":9999")

	require.NoError(t, initConfig())

	cfg, err := config.Load(viper.GetViper())
	require.NoError(t, err)
	assert.Equal(t, "https://habr.example.test", cfg.Habr.BaseURL)
	assert.Equal(t, "en", cfg.Habr.Locale)
	assert.Equal(t, 3*time.Second, cfg.Habr.RequestTimeout)
	assert.Equal(t, "json", cfg.Logger.Encoding)
	assert.Equal(t, ":9999", cfg.Server.Address)
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfgFile = "/nonexistent/habrreader.yaml"
	t.Cleanup(func() { cfgFile = "" })

	require.Error(t, initConfig())
}
