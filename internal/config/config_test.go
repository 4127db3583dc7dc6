package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `log_responses: true
accounts:
  - name: prod
    account_id: " acc-prod "
    api_key: ${FLAREIMG_TEST_PROD_KEY}
  - name: staging
    account_id: acc-staging
    api_key: staging-key
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("FLAREIMG_LOG_ERRORS", "true")
	t.Setenv("FLAREIMG_TEST_PROD_KEY", "prod-key")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.True(t, cfg.LogResponses)
	assert.True(t, cfg.LogErrors)
	require.Len(t, cfg.Accounts, 2)
	assert.Equal(t, "acc-prod", cfg.Accounts[0].AccountID)
	assert.Equal(t, "${FLAREIMG_TEST_PROD_KEY}", cfg.Accounts[0].APIKey)

	prod, err := cfg.Resolve("PROD")
	require.NoError(t, err)
	assert.Equal(t, "prod-key", prod.APIKey)
	assert.Equal(t, "acc-prod", prod.AccountID)

	staging, err := cfg.Resolve("staging")
	require.NoError(t, err)
	assert.Equal(t, "staging-key", staging.APIKey)

	_, err = cfg.Resolve("missing")
	assert.True(t, errors.Is(err, ErrAccountNotFound))
}

func TestLoadRejectsIncompleteAccounts(t *testing.T) {
	tests := map[string]string{
		"missing name":       "accounts:\n  - account_id: a\n    api_key: k\n",
		"missing account id": "accounts:\n  - name: a\n    api_key: k\n",
		"missing api key":    "accounts:\n  - name: a\n    account_id: a\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestResolveUsesEnvironment(t *testing.T) {
	t.Setenv("FLAREIMG_API_KEY", "env-key")
	t.Setenv("FLAREIMG_ACCOUNT_ID", "env-acc")

	cfg, err := Load(writeConfig(t, "accounts: []\n"))
	require.NoError(t, err)

	account, err := cfg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", account.APIKey)
	assert.Equal(t, "env-acc", account.AccountID)
	assert.Equal(t, "env", account.Name)
}

func TestResolveWithoutCredentials(t *testing.T) {
	_, err := Config{}.Resolve("")
	assert.True(t, errors.Is(err, ErrNoCredentials))
}

func TestEnsureAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Ensure(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Accounts)

	cfg.LogErrors = true
	cfg.Accounts = append(cfg.Accounts, Account{Name: "prod", AccountID: "acc", APIKey: "${KEY}"})
	require.NoError(t, Save(path, cfg))

	reloaded, err := Ensure(path)
	require.NoError(t, err)
	assert.True(t, reloaded.LogErrors)
	require.Len(t, reloaded.Accounts, 1)
	assert.Equal(t, "${KEY}", reloaded.Accounts[0].APIKey)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "flareimg", "config.yaml"), DefaultPath())
}
