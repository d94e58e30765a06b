package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"data_dir": "/tmp/resumes",
		"port": 9090,
		"owner_id": "ana"
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/resumes", cfg.DataDir)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "ana", cfg.OwnerID)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{DataDir: "/data", Port: 8080, OwnerID: "local"})

	assert.Equal(t, "/data", merged.DataDir)
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "local", merged.OwnerID)
}

func TestMergeWithDefaults_FallsBackToHomeDir(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{})
	assert.NotEmpty(t, merged.DataDir)

	// A database URL suppresses the file-store default.
	cfg = Config{DatabaseURL: "postgres://localhost/resumes"}
	merged = cfg.MergeWithDefaults(Config{})
	assert.Empty(t, merged.DataDir)
}

func TestValidate(t *testing.T) {
	valid := Config{DataDir: "/data", Port: 8080}
	assert.NoError(t, valid.Validate())

	noStorage := Config{}
	assert.Error(t, noStorage.Validate())

	badPort := Config{DataDir: "/data", Port: 70000}
	assert.Error(t, badPort.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RESUME_DATA_DIR", "/env/data")
	t.Setenv("DATABASE_URL", "postgres://db/resumes")
	t.Setenv("RESUME_OWNER_ID", "owner-env")

	cfg := FromEnv()
	assert.Equal(t, "/env/data", cfg.DataDir)
	assert.Equal(t, "postgres://db/resumes", cfg.DatabaseURL)
	assert.Equal(t, "owner-env", cfg.OwnerID)
}
