package set

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCmd(t *testing.T) {
	t.Run("persists a valid key", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte(""), 0o644))
		viper.SetConfigFile(cfgPath)

		cmd := NewSetCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"synology.host", "nas.local"})

		require.NoError(t, cmd.Execute())

		data, err := os.ReadFile(cfgPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "host: nas.local")
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		cmd := NewSetCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"api-key", "x"})

		assert.ErrorContains(t, cmd.Execute(), "invalid config key")
	})
}
