// Package storage abstracts the object store that holds the site's images.
// Production uses the Supabase storage API; the disk store backs local
// development and the maintenance commands' dry runs.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is an object store keyed by <category>/<filename>.
type Store interface {
	// Upload writes the object at key. Keys are never overwritten:
	// ObjectKey makes collisions practically impossible.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	// Remove deletes the given objects.
	Remove(ctx context.Context, keys []string) error
	// List returns the full keys of all objects under prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// PublicURL resolves a stored url value to an absolute URL.
	PublicURL(key string) string
}

// ObjectKey derives a collision-resistant storage key for a new upload:
// <category>/<unix-ms>-<token>.<ext>. The extension is taken from the
// source filename and lowercased.
func ObjectKey(category, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s/%d-%s%s", category, time.Now().UnixMilli(), token, ext)
}

// PublicURL resolves a stored url value against the public object prefix
// of the given bucket. Absolute URLs pass through unchanged, which makes
// the function idempotent; an empty value stays empty.
func PublicURL(base, bucket, url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", strings.TrimRight(base, "/"), bucket, url)
}

// KeyFromURL inverts PublicURL: it maps a stored url value back to its
// bucket-relative key. Relative keys pass through; absolute URLs resolve
// only when they point into this bucket's public prefix. External URLs
// (and empty values) have no object here and report false.
func KeyFromURL(base, bucket, url string) (string, bool) {
	if url == "" {
		return "", false
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return url, true
	}
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", strings.TrimRight(base, "/"), bucket)
	if key, ok := strings.CutPrefix(url, prefix); ok && key != "" {
		return key, true
	}
	return "", false
}
