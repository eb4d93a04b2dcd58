// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output resolves where extracted text goes and writes it there.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/renameio/v2"

	"github.com/pdiddy/sourcebook/internal/document"
)

const textExt = ".txt"

// ResolvePath returns <baseDir>/<dataDir>/<name>.txt.
func ResolvePath(baseDir, dataDir, name string) string {
	return filepath.Join(baseDir, dataDir, name+textExt)
}

// Write creates any missing parent directories of path and replaces path
// with text. renameio writes a temporary file in the same directory and
// renames it into place, so a failed write never leaves a partial file at
// path. It returns the number of Unicode code points written. Every
// failure wraps document.ErrIOWriteFailure.
func Write(path, text string) (int, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w: %v", dir, document.ErrIOWriteFailure, err)
	}

	if err := renameio.WriteFile(path, []byte(text), 0o644, renameio.WithTempDir(dir)); err != nil {
		return 0, fmt.Errorf("writing %s: %w: %v", path, document.ErrIOWriteFailure, err)
	}

	return utf8.RuneCountInString(text), nil
}
