// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sourcebook/internal/document"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		base, data, name string
		want             string
	}{
		{".", "data", "dmg", filepath.Join("data", "dmg.txt")},
		{"/srv/app", "data", "phb", filepath.Join("/srv/app", "data", "phb.txt")},
		{"/srv/app", "out/books", "adventure", filepath.Join("/srv/app", "out", "books", "adventure.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.base, tt.data, tt.name))
		})
	}
}

func TestWrite_CreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "dmg.txt")

	n, err := Write(path, "--- Page 1 ---\nDragons")
	require.NoError(t, err)
	assert.Equal(t, 22, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "--- Page 1 ---\nDragons", string(data))
}

func TestWrite_OverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phb.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	_, err := Write(path, "new")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "phb.txt", entries[0].Name())
}

func TestWrite_EmptyText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")

	n, err := Write(path, "")
	require.NoError(t, err)
	assert.Zero(t, n)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWrite_CountsCodePoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "es.txt")

	n, err := Write(path, "Tamaño")
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, 7)
}

func TestWrite_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("a file, not a directory"), 0o644))

	_, err := Write(filepath.Join(blocker, "dmg.txt"), "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, document.ErrIOWriteFailure)
}

func TestWrite_ReadOnlyDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions not enforced")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	require.NoError(t, os.MkdirAll(dir, 0o555))

	path := filepath.Join(dir, "dmg.txt")
	_, err := Write(path, "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, document.ErrIOWriteFailure)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWrite_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "dmg.txt")
	require.NoError(t, os.MkdirAll(target, 0o755))
	kept := filepath.Join(target, "notes.md")
	require.NoError(t, os.WriteFile(kept, []byte("keep me"), 0o644))

	_, err := Write(target, "--- Page 1 ---\nDragons")
	require.Error(t, err)
	assert.ErrorIs(t, err, document.ErrIOWriteFailure)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	data, err := os.ReadFile(kept)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files left behind")
	assert.Equal(t, "dmg.txt", entries[0].Name())
}
