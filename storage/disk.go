package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const chunkSize = 32 * 1024

const fileMode = 0644

type DiskStore struct {
	root    string
	tmpDir  string
	baseURL string
	prefix  string
}

// NewDiskStore stores files in root and builds URLs as baseURL+prefix+"/"+name.
// Partial uploads are written next to root, never inside it, so they are not
// served while in flight.
func NewDiskStore(root, baseURL, prefix string) *DiskStore {
	root = filepath.Clean(root)
	return &DiskStore{
		root:    root,
		tmpDir:  filepath.Join(filepath.Dir(root), "."+filepath.Base(root)+".tmp"),
		baseURL: strings.TrimRight(baseURL, "/"),
		prefix:  "/" + strings.Trim(prefix, "/"),
	}
}

func (s *DiskStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	for _, dir := range []string{s.root, s.tmpDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	tmp, err := os.CreateTemp(s.tmpDir, ".pending-")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	// Hide ReadFrom so the copy goes through buf in fixed-size chunks.
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(struct{ io.Writer }{tmp}, &ctxReader{ctx: ctx, r: r}, buf); err != nil {
		tmp.Close()
		return "", fmt.Errorf("storing %s failed: %w", name, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.root, name)); err != nil {
		return "", fmt.Errorf("rename %s failed: %w", name, err)
	}

	return s.URL(name), nil
}

func (s *DiskStore) URL(name string) string {
	return s.baseURL + s.prefix + "/" + url.PathEscape(name)
}

// ctxReader stops a copy once the request context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
