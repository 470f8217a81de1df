package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:3000", cfg.Address())
	assert.Equal(t, TokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.False(t, cfg.Email.Enabled())
	assert.True(t, cfg.Upload.IsAllowedType("image/png"))
	assert.False(t, cfg.Upload.IsAllowedType("text/plain"))
	assert.Equal(t, 1600, cfg.Upload.MaxDimension)
}

func TestValidate_RequiresSecretsAndDSN(t *testing.T) {
	cfg := Default()
	assert.ErrorContains(t, cfg.Validate(), "TOKEN_KEY")

	cfg.Auth.TokenKey = "token"
	assert.ErrorContains(t, cfg.Validate(), "PRODUCT_KEY")

	cfg.Auth.ProductKey = "product"
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")

	cfg.Database.DSN = "postgres://localhost/realty"
	cfg.Auth.TokenTTL = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, TokenTTL, cfg.Auth.TokenTTL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 8080
  env: production
database:
  driver: mysql
  url: "user:pass@tcp(localhost:3306)/realty"
auth:
  token_key: from-file
  product_key: product-from-file
email:
  smtp_host: smtp.example.com
  from_email: noreply@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TOKEN_KEY", "from-env")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PRODUCT_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.Auth.TokenKey)
	assert.Equal(t, "product-from-file", cfg.Auth.ProductKey, "empty env values do not override")
	assert.True(t, cfg.Email.Enabled())
	assert.Equal(t, 587, cfg.Email.SMTPPort)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("TOKEN_KEY", "")
	t.Setenv("PRODUCT_KEY", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadUnvalidated()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)

	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := LoadUnvalidated()
	assert.ErrorContains(t, err, "failed to parse config file")
}
