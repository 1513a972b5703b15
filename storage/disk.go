package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores objects under a local directory, mirroring the bucket's
// <category>/<filename> layout. Used in development and in tests.
type Disk struct {
	root string
	base string
}

// NewDisk creates a disk store rooted at dir. base is the origin the
// public URLs resolve against, typically the API's own address.
func NewDisk(dir, base string) *Disk {
	return &Disk{root: dir, base: strings.TrimRight(base, "/")}
}

// Upload writes the object at key, creating category directories on demand.
func (d *Disk) Upload(_ context.Context, key string, r io.Reader, _ string) error {
	dst := filepath.Join(d.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("storage upload %s: %w", key, err)
	}
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("storage upload %s: %w", key, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("storage upload %s: %w", key, err)
	}
	return nil
}

// Remove deletes the given objects. A missing object is an error, matching
// the remote store's behaviour.
func (d *Disk) Remove(_ context.Context, keys []string) error {
	for _, key := range keys {
		if err := os.Remove(filepath.Join(d.root, filepath.FromSlash(key))); err != nil {
			return fmt.Errorf("storage remove %s: %w", key, err)
		}
	}
	return nil
}

// List returns the full keys of all objects under prefix.
func (d *Disk) List(_ context.Context, prefix string) ([]string, error) {
	dir := filepath.Join(d.root, filepath.FromSlash(prefix))
	var keys []string
	err := filepath.WalkDir(dir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage list %s: %w", prefix, err)
	}
	return keys, nil
}

// PublicURL resolves a stored url value to its public address.
func (d *Disk) PublicURL(key string) string {
	return PublicURL(d.base, "media", key)
}
