// Package storage keeps uploaded files and hands back the URL they are
// served from.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var ErrInvalidName = errors.New("invalid file name")

// BlobStore saves r under name and returns the public URL. Saving the same
// name twice replaces the earlier content.
type BlobStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// cleanName keeps the client supplied name but drops any directory part.
func cleanName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", ErrInvalidName
	}
	return base, nil
}
