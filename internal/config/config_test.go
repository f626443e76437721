package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T) Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	require.NoError(t, Load())
	return C()
}

func TestLoadDefaults(t *testing.T) {
	cfg := load(t)

	assert.Empty(t, cfg.Synology.Host)
	assert.Equal(t, 5000, cfg.Synology.Port)
	assert.Equal(t, 30, cfg.Synology.Timeout)
	assert.False(t, cfg.Synology.HTTPS)
	assert.Equal(t, "./files", cfg.Telegram.StoragePath)
	assert.Equal(t, int64(50<<20), cfg.Telegram.MaxFileSize)
	assert.False(t, cfg.Verbose)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TGFSYN_SYNOLOGY_HOST", "nas.local")
	t.Setenv("TGFSYN_SYNOLOGY_PORT", "5001")
	t.Setenv("TGFSYN_SYNOLOGY_HTTPS", "true")
	t.Setenv("TGFSYN_TELEGRAM_TOKEN", "123:abc")

	cfg := load(t)

	assert.Equal(t, "nas.local", cfg.Synology.Host)
	assert.Equal(t, 5001, cfg.Synology.Port)
	assert.True(t, cfg.Synology.HTTPS)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
}

func TestLoadLegacyEnvironment(t *testing.T) {
	t.Setenv("SYNOLOGY_HOST", "192.168.1.34")
	t.Setenv("SYNOLOGY_PORT", "5001")
	t.Setenv("SYNOLOGY_USERNAME", "admin")
	t.Setenv("SYNOLOGY_PASSWORD", "secret")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("STORAGE_PATH", "/volume1/watch")
	t.Setenv("ALLOWED_USERS", "1,2")

	cfg := load(t)

	assert.Equal(t, "192.168.1.34", cfg.Synology.Host)
	assert.Equal(t, 5001, cfg.Synology.Port)
	assert.Equal(t, "admin", cfg.Synology.Username)
	assert.Equal(t, "secret", cfg.Synology.Password)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, "/volume1/watch", cfg.Telegram.StoragePath)
	assert.Equal(t, "1,2", cfg.Telegram.AllowedUsers)
}

func TestLoadPrefixedWinsOverLegacy(t *testing.T) {
	t.Setenv("SYNOLOGY_HOST", "old.local")
	t.Setenv("TGFSYN_SYNOLOGY_HOST", "new.local")

	cfg := load(t)

	assert.Equal(t, "new.local", cfg.Synology.Host)
}

func TestLoadClampsBadValues(t *testing.T) {
	t.Setenv("TGFSYN_SYNOLOGY_PORT", "99999")
	t.Setenv("TGFSYN_SYNOLOGY_TIMEOUT", "-5")
	t.Setenv("TGFSYN_TELEGRAM_MAX_FILE_SIZE", "0")
	t.Setenv("TGFSYN_TELEGRAM_STORAGE_PATH", "")

	cfg := load(t)

	assert.Equal(t, 5000, cfg.Synology.Port)
	assert.Equal(t, 30, cfg.Synology.Timeout)
	assert.Equal(t, int64(50<<20), cfg.Telegram.MaxFileSize)
	assert.Equal(t, "./files", cfg.Telegram.StoragePath)
}

func TestLoadCapsMaxFileSize(t *testing.T) {
	t.Setenv("TGFSYN_TELEGRAM_MAX_FILE_SIZE", "104857600")

	cfg := load(t)

	assert.Equal(t, int64(50<<20), cfg.Telegram.MaxFileSize)
}

func TestSynologyValidate(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		s := Synology{Host: "nas.local", Username: "admin", Password: "secret"}
		assert.NoError(t, s.Validate())
	})

	t.Run("everything missing", func(t *testing.T) {
		assert.EqualError(t, Synology{}.Validate(),
			"missing required configuration: synology.host, synology.username, synology.password")
	})

	t.Run("password missing", func(t *testing.T) {
		s := Synology{Host: "nas.local", Username: "admin"}
		assert.EqualError(t, s.Validate(), "missing required configuration: synology.password")
	})
}

func TestTelegramValidate(t *testing.T) {
	assert.EqualError(t, Telegram{}.Validate(), "missing required configuration: telegram.token")
	assert.NoError(t, Telegram{Token: "123:abc"}.Validate())
}
