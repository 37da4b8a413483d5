package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docforge-cli/internal/adapters/driven/config/file"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigCmd_ErrorsWithoutStore(t *testing.T) {
	restore := withConfigStore(nil)
	defer restore()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config store not configured")
}

func TestConfigCmd_SetAndGet(t *testing.T) {
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	restore := withConfigStore(store)
	defer restore()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "rate_limit.burst", "10"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Set rate_limit.burst = 10")
	assert.Equal(t, 10, store.GetInt("rate_limit.burst"))

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "get", "rate_limit.burst"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "10")
}

func TestConfigCmd_GetUnsetKeyFails(t *testing.T) {
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	restore := withConfigStore(store)
	defer restore()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "get", "no_such_key"})
	defer rootCmd.SetArgs(nil)

	err = rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "key not set")
}

func TestConfigCmd_ShowListsKeys(t *testing.T) {
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("credentials_file", "/tmp/creds.json"))
	restore := withConfigStore(store)
	defer restore()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "credentials_file: /tmp/creds.json")
	assert.Contains(t, buf.String(), store.Path())
}
