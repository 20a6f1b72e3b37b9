package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bahikhata.yaml")

	cfg := Default("Sharma Constructions", "27")
	cfg.Business.GSTIN = "27AAPFU0939F1ZV"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sharma Constructions", loaded.Business.Name)
	assert.Equal(t, "27", loaded.Business.StateCode)
	assert.Equal(t, "27AAPFU0939F1ZV", loaded.Business.GSTIN)
	assert.Equal(t, "04-01", loaded.Fiscal.YearStart)
	assert.True(t, loaded.Git.AutoCommit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("BAHIKHATA_DIR", "")
	t.Setenv("BAHIKHATA_LOG_LEVEL", "")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", e.LogLevel)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("BAHIKHATA_DIR", "/tmp/books")
	t.Setenv("BAHIKHATA_LOG_LEVEL", "debug")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/books", e.BooksDir)
	assert.Equal(t, "debug", e.LogLevel)
}
