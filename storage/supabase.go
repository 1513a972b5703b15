package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// Supabase stores objects in a Supabase storage bucket.
type Supabase struct {
	client *storage_go.Client
	base   string
	bucket string
}

// NewSupabase creates a store for the bucket at the given project URL.
// The key should be the service key for write access; the anon key is
// enough for read-only use.
func NewSupabase(projectURL, key, bucket string) *Supabase {
	base := strings.TrimRight(projectURL, "/")
	return &Supabase{
		client: storage_go.NewClient(base+"/storage/v1", key, nil),
		base:   base,
		bucket: bucket,
	}
}

// Upload writes the object at key. The storage-go client does not take a
// context; cancellation is not propagated.
func (s *Supabase) Upload(_ context.Context, key string, r io.Reader, contentType string) error {
	opts := storage_go.FileOptions{}
	if contentType != "" {
		opts.ContentType = &contentType
	}
	if _, err := s.client.UploadFile(s.bucket, key, r, opts); err != nil {
		return fmt.Errorf("storage upload %s: %w", key, err)
	}
	return nil
}

// Remove deletes the given objects from the bucket.
func (s *Supabase) Remove(_ context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.client.RemoveFile(s.bucket, keys); err != nil {
		return fmt.Errorf("storage remove: %w", err)
	}
	return nil
}

// listPageSize is the explicit page size for bucket listings. The server
// applies its own small default when none is sent, truncating the result.
const listPageSize = 1000

// collectPages drains a paged listing: it calls page with increasing
// offsets until a short page signals the end.
func collectPages(pageSize int, page func(limit, offset int) ([]string, error)) ([]string, error) {
	var all []string
	for offset := 0; ; offset += pageSize {
		batch, err := page(pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < pageSize {
			return all, nil
		}
	}
}

// List returns the full keys of all objects under prefix, paging through
// the bucket until the listing is exhausted.
func (s *Supabase) List(_ context.Context, prefix string) ([]string, error) {
	keys, err := collectPages(listPageSize, func(limit, offset int) ([]string, error) {
		objects, err := s.client.ListFiles(s.bucket, prefix, storage_go.FileSearchOptions{
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return nil, err
		}
		batch := make([]string, 0, len(objects))
		for _, o := range objects {
			if prefix == "" {
				batch = append(batch, o.Name)
				continue
			}
			batch = append(batch, prefix+"/"+o.Name)
		}
		return batch, nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage list %s: %w", prefix, err)
	}
	return keys, nil
}

// PublicURL resolves a stored url value to its public address.
func (s *Supabase) PublicURL(key string) string {
	return PublicURL(s.base, s.bucket, key)
}
