package migration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"create analyses", "create_analyses"},
		{"Add-Sector-Index", "add_sector_index"},
		{"ADD_MARKET_CAP", "add_market_cap"},
		{"add__market__cap", "add_market_cap"},
		{"Backfill 2025", "backfill_2025"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 10, 14, 30, 5, 0, time.FixedZone("CET", 3600))

	mf, err := Create(dir, "add sector index", "Index analyses by sector", now)
	require.NoError(t, err)

	assert.Equal(t, "20250310133005", mf.Version)
	assert.Equal(t, filepath.Join(dir, "20250310133005_add_sector_index.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, "20250310133005_add_sector_index.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: add sector index")
	assert.Contains(t, string(up), "-- Description: Index analyses by sector")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(Rollback)")
}

func TestCreate_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := Create(nested, "init", "", time.Now())
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreate_Errors(t *testing.T) {
	t.Run("unusable name", func(t *testing.T) {
		_, err := Create(t.TempDir(), "!!!", "", time.Now())
		assert.Error(t, err)
	})

	t.Run("existing version is not overwritten", func(t *testing.T) {
		dir := t.TempDir()
		now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		_, err := Create(dir, "init", "", now)
		require.NoError(t, err)

		_, err = Create(dir, "init", "", now)
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"20250302000000_add_index.up.sql",
		"20250302000000_add_index.down.sql",
		"20250301000000_init.up.sql",
		"20250301000000_init.down.sql",
		"README.md",
		".gitkeep",
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("-- test"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.up.sql"), 0o755))

	names, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"20250301000000_init", "20250302000000_add_index"}, names)
}

func TestList_MissingDirectory(t *testing.T) {
	names, err := List(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestEmbedded(t *testing.T) {
	names, err := Embedded()
	require.NoError(t, err)
	assert.Contains(t, names, "20250301000000_create_analyses")
}
