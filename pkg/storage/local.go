package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local stores QR images on the local filesystem. The server exposes the
// directory under /qr/ so the returned URLs resolve against BASE_URL.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates a local-disk image store rooted at dir.
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create qr dir: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the PNG to disk and returns the URL it is served under.
func (l *Local) Save(_ context.Context, key string, png []byte) (string, error) {
	name := path.Base(key)
	if err := os.WriteFile(filepath.Join(l.dir, name), png, 0o644); err != nil {
		return "", fmt.Errorf("write qr image: %w", err)
	}
	return l.baseURL + "/qr/" + name, nil
}
