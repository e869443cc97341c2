package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Cleanup(func() { SetConfig(Config{}) })

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: db.internal\nRATE_LIMIT: 50\nJWT_SECRET: s3cret\n"), 0o600))
	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "50", GetConfig("RATE_LIMIT"))
	assert.Equal(t, "s3cret", GetConfig("JWT_SECRET"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
	assert.Equal(t, "America/Mexico_City", GetConfig("PLANT_TIMEZONE"))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Cleanup(func() { SetConfig(Config{}) })

	require.NoError(t, LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: [unclosed"), 0o600))

	assert.Error(t, LoadConfig(path))
}

func TestGetConfigEnvironmentWins(t *testing.T) {
	t.Cleanup(func() { SetConfig(Config{}) })
	SetConfig(Config{DBName: "from_yaml"})
	t.Setenv("DB_NAME", "from_env")

	assert.Equal(t, "from_env", GetConfig("DB_NAME"))
}
