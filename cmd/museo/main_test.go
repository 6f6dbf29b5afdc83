package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/museo/internal/connectors/harvard"
	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/logger"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(prev) })
	return &buf
}

func TestNewCatalogClient_ValidBaseURL(t *testing.T) {
	buf := captureLog(t)

	client, err := newCatalogClient(harvard.Config{APIKey: "k", BaseURL: "http://localhost:8080/object"})

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Empty(t, buf.String())
}

func TestNewCatalogClient_InvalidBaseURLFallsBack(t *testing.T) {
	buf := captureLog(t)

	client, err := newCatalogClient(harvard.Config{APIKey: "k", BaseURL: "not-a-url"})

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), domain.DefaultBaseURL)
}

func TestWire_InvalidBaseURLKeepsConfigUsable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MUSEO_DATA_DIR", home)
	t.Setenv("MUSEO_API_KEY", "")
	t.Setenv("MUSEO_API_URL", "not-a-url")
	buf := captureLog(t)

	require.NoError(t, wire())
	assert.Contains(t, buf.String(), "api.base_url")
}

func TestWire_InvalidBaseURLInConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MUSEO_DATA_DIR", home)
	t.Setenv("MUSEO_API_KEY", "")
	t.Setenv("MUSEO_API_URL", "")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".museo"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".museo", "config.toml"),
		[]byte("[api]\nbase_url = \"not-a-url\"\n"), 0o600))
	buf := captureLog(t)

	require.NoError(t, wire())
	assert.Contains(t, buf.String(), "not-a-url")
}
