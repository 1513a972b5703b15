package storage

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
)

func TestPublicURL(t *testing.T) {
	base := "https://example.supabase.co"
	tests := []struct {
		url      string
		expected string
	}{
		{"", ""},
		{"motocross/123-abc.jpg", "https://example.supabase.co/storage/v1/object/public/media/motocross/123-abc.jpg"},
		{"https://cdn.example.com/x.jpg", "https://cdn.example.com/x.jpg"},
		{"http://example.com/y.png", "http://example.com/y.png"},
	}
	for i, test := range tests {
		got := PublicURL(base, "media", test.url)
		if got != test.expected {
			t.Errorf("%d expect %q, got %q", i, test.expected, got)
		}
	}
}

func TestPublicURLIdempotent(t *testing.T) {
	base := "https://example.supabase.co"
	for _, url := range []string{"", "portrait/1-a.jpg", "https://cdn.example.com/x.jpg"} {
		once := PublicURL(base, "media", url)
		twice := PublicURL(base, "media", once)
		if once != twice {
			t.Errorf("%q: expect %q, got %q", url, once, twice)
		}
	}
}

func TestPublicURLTrailingSlashBase(t *testing.T) {
	got := PublicURL("https://example.supabase.co/", "media", "product/1-a.jpg")
	if strings.Contains(got, "co//") {
		t.Errorf("double slash in %q", got)
	}
}

func TestKeyFromURL(t *testing.T) {
	base := "https://example.supabase.co"
	tests := []struct {
		url      string
		expected string
		ok       bool
	}{
		{"", "", false},
		{"motocross/1700000000000-abcd1234.jpg", "motocross/1700000000000-abcd1234.jpg", true},
		{"https://example.supabase.co/storage/v1/object/public/media/motocross/1700000000000-abcd1234.jpg", "motocross/1700000000000-abcd1234.jpg", true},
		{"https://cdn.example.com/legacy.jpg", "", false},
		{"https://example.supabase.co/storage/v1/object/public/other/x.jpg", "", false},
		{"https://example.supabase.co/storage/v1/object/public/media/", "", false},
	}
	for i, test := range tests {
		got, ok := KeyFromURL(base, "media", test.url)
		if got != test.expected || ok != test.ok {
			t.Errorf("%d %q: expect (%q, %v), got (%q, %v)", i, test.url, test.expected, test.ok, got, ok)
		}
	}
}

func TestKeyFromURLInvertsPublicURL(t *testing.T) {
	base := "https://example.supabase.co"
	for _, key := range []string{"motocross/1-a.jpg", "portrait/2-b.jpeg", "product/3-c.png"} {
		url := PublicURL(base, "media", key)
		got, ok := KeyFromURL(base, "media", url)
		if !ok || got != key {
			t.Errorf("%q: expect (%q, true), got (%q, %v)", url, key, got, ok)
		}
	}
}

func TestObjectKey(t *testing.T) {
	pattern := regexp.MustCompile(`^motocross/\d+-[0-9a-f]{8}\.jpg$`)
	key := ObjectKey("motocross", "photo.JPG")
	if !pattern.MatchString(key) {
		t.Errorf("key %q does not match %v", key, pattern)
	}
}

func TestObjectKeyNoExtension(t *testing.T) {
	pattern := regexp.MustCompile(`^portrait/\d+-[0-9a-f]{8}$`)
	key := ObjectKey("portrait", "rawfile")
	if !pattern.MatchString(key) {
		t.Errorf("key %q does not match %v", key, pattern)
	}
}

func TestCollectPages(t *testing.T) {
	keys := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		keys = append(keys, fmt.Sprintf("motocross/%d-aaaa0000.jpg", i))
	}

	var offsets []int
	page := func(limit, offset int) ([]string, error) {
		offsets = append(offsets, offset)
		if offset >= len(keys) {
			return nil, nil
		}
		end := offset + limit
		if end > len(keys) {
			end = len(keys)
		}
		return keys[offset:end], nil
	}

	got, err := collectPages(10, page)
	if err != nil {
		t.Fatalf("collectPages: %v", err)
	}
	if len(got) != len(keys) {
		t.Fatalf("expect %d keys, got %d", len(keys), len(got))
	}
	for i, k := range got {
		if k != keys[i] {
			t.Errorf("%d expect %q, got %q", i, keys[i], k)
		}
	}
	// 25 keys at page size 10: full, full, short.
	if len(offsets) != 3 || offsets[2] != 20 {
		t.Errorf("unexpected page offsets %v", offsets)
	}
}

func TestCollectPagesError(t *testing.T) {
	page := func(limit, offset int) ([]string, error) {
		if offset > 0 {
			return nil, errors.New("listing fault")
		}
		full := make([]string, limit)
		return full, nil
	}
	if _, err := collectPages(5, page); err == nil {
		t.Fatal("expected error from second page")
	}
}

func TestObjectKeyUnique(t *testing.T) {
	a := ObjectKey("product", "a.png")
	b := ObjectKey("product", "a.png")
	if a == b {
		t.Errorf("expected distinct keys, got %q twice", a)
	}
}
