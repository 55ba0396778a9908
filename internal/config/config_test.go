package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestConfigData_GetSetRemove(t *testing.T) {
	c := ReadFromString(`
prompt: disabled
collections:
  http://tfs:8080/tfs/defaultcollection:
    url: http://tfs:8080/tfs/DefaultCollection
`)

	val, err := c.Get([]string{"prompt"})
	require.NoError(t, err)
	assert.Equal(t, "disabled", val)

	val, err = c.Get([]string{Collections, "http://tfs:8080/tfs/defaultcollection", URL})
	require.NoError(t, err)
	assert.Equal(t, "http://tfs:8080/tfs/DefaultCollection", val)

	_, err = c.Get([]string{"missing"})
	var notFound *KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Key)

	val, err = c.GetOrDefault([]string{"pager"})
	require.NoError(t, err)
	assert.Empty(t, val)

	c.Set([]string{Collections, "http://other/tfs", Pat}, "secret")
	keys, err := c.Keys([]string{Collections})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://tfs:8080/tfs/defaultcollection", "http://other/tfs"}, keys)
	assert.True(t, c.accounts)
	assert.False(t, c.general)

	require.NoError(t, c.Remove([]string{Collections, "http://other/tfs"}))
	keys, err = c.Keys([]string{Collections})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://tfs:8080/tfs/defaultcollection"}, keys)

	require.ErrorIs(t, c.Remove([]string{"nope", "x"}), &KeyNotFoundError{})
}

func TestConfigData_GetOrDefault(t *testing.T) {
	c := ReadFromString("pager:\n")

	val, err := c.GetOrDefault([]string{"prompt"})
	require.NoError(t, err)
	assert.Equal(t, "enabled", val)

	val, err = c.GetOrDefault([]string{"pager"})
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestWriteAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(configDirEnv, dir)

	c, err := load(generalConfigFile(), collectionsConfigFile())
	require.NoError(t, err)

	val, err := c.Get([]string{"prompt"})
	require.NoError(t, err)
	assert.Equal(t, "enabled", val)

	c.Set([]string{"pager"}, "less")
	c.Set([]string{Collections, "http://tfs/tfs/dc", URL}, "http://tfs/tfs/DC")
	require.NoError(t, Write(c))

	general, err := os.ReadFile(filepath.Join(dir, "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(general), "pager: less")
	assert.NotContains(t, string(general), Collections)

	collections, err := os.ReadFile(filepath.Join(dir, "collections.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(collections), "http://tfs/tfs/DC")

	reloaded, err := load(generalConfigFile(), collectionsConfigFile())
	require.NoError(t, err)
	val, err = reloaded.Get([]string{Collections, "http://tfs/tfs/dc", URL})
	require.NoError(t, err)
	assert.Equal(t, "http://tfs/tfs/DC", val)
	val, err = reloaded.Get([]string{"pager"})
	require.NoError(t, err)
	assert.Equal(t, "less", val)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(configDirEnv, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("- a\n- b\n"), 0o600))

	_, err := load(generalConfigFile(), collectionsConfigFile())
	var invalid *InvalidConfigFileError
	require.ErrorAs(t, err, &invalid)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestConfigDir(t *testing.T) {
	t.Setenv(configDirEnv, "")
	t.Setenv(xdgConfigHome, "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "tfsprops"), ConfigDir())

	t.Setenv(configDirEnv, "/explicit")
	assert.Equal(t, "/explicit", ConfigDir())
}

func TestAuthConfig(t *testing.T) {
	keyring.MockInit()
	t.Setenv(configDirEnv, t.TempDir())
	t.Setenv(tfspropsToken, "")

	cfg := NewFromString("")
	auth := cfg.Authentication()
	key := "http://tfs/tfs/dc"

	_, err := auth.GetToken(key)
	require.ErrorIs(t, err, &KeyNotFoundError{})

	insecure, err := auth.Login(key, "http://tfs/tfs/DC", "from-keyring", true)
	require.NoError(t, err)
	assert.False(t, insecure)

	token, source, err := auth.GetTokenWithSource(key)
	require.NoError(t, err)
	assert.Equal(t, "from-keyring", token)
	assert.Equal(t, TokenSourceKeyring, source)

	insecure, err = auth.Login("http://a/tfs", "http://a/tfs", "plain", false)
	require.NoError(t, err)
	assert.True(t, insecure)

	token, source, err = auth.GetTokenWithSource("http://a/tfs")
	require.NoError(t, err)
	assert.Equal(t, "plain", token)
	assert.Equal(t, TokenSourceConfig, source)

	assert.Equal(t, []string{"http://a/tfs", key}, auth.GetCollections())

	t.Setenv(tfspropsToken, "from-env")
	token, source, err = auth.GetTokenWithSource(key)
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
	assert.Equal(t, TokenSourceEnv, source)
	t.Setenv(tfspropsToken, "")

	require.NoError(t, auth.Logout(key))
	assert.Equal(t, []string{"http://a/tfs"}, auth.GetCollections())
	_, err = auth.GetToken(key)
	require.ErrorIs(t, err, &KeyNotFoundError{})
}

func TestAuthConfig_KeyringUnavailable(t *testing.T) {
	keyring.MockInitWithError(errors.New("The name org.freedesktop.secrets was not provided by any .service files"))
	t.Cleanup(keyring.MockInit)
	t.Setenv(configDirEnv, t.TempDir())
	t.Setenv(tfspropsToken, "")

	auth := NewFromString("").Authentication()

	_, err := auth.GetToken("http://tfs/tfs/dc")
	require.ErrorIs(t, err, &KeyNotFoundError{})

	insecure, err := auth.Login("http://tfs/tfs/dc", "http://tfs/tfs/DC", "plain", true)
	require.NoError(t, err)
	assert.True(t, insecure)

	token, source, err := auth.GetTokenWithSource("http://tfs/tfs/dc")
	require.NoError(t, err)
	assert.Equal(t, "plain", token)
	assert.Equal(t, TokenSourceConfig, source)
}
