package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskRoundTrip(t *testing.T) {
	ctx := context.Background()
	d := NewDisk(t.TempDir(), "http://localhost:9000")

	key := "motocross/1-abcd1234.jpg"
	if err := d.Upload(ctx, key, strings.NewReader("bytes"), "image/jpeg"); err != nil {
		t.Fatalf("upload: %v", err)
	}

	keys, err := d.List(ctx, "motocross")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(keys) != 1 || keys[0] != key {
		t.Fatalf("expect [%s], got %v", key, keys)
	}

	if err := d.Remove(ctx, []string{key}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	keys, err = d.List(ctx, "motocross")
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expect empty, got %v", keys)
	}
}

func TestDiskUploadWritesBytes(t *testing.T) {
	dir := t.TempDir()
	d := NewDisk(dir, "http://localhost:9000")

	if err := d.Upload(context.Background(), "portrait/2-ffff0000.png", strings.NewReader("content"), ""); err != nil {
		t.Fatalf("upload: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "portrait", "2-ffff0000.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("expect %q, got %q", "content", data)
	}
}

func TestDiskRemoveMissing(t *testing.T) {
	d := NewDisk(t.TempDir(), "http://localhost:9000")
	if err := d.Remove(context.Background(), []string{"product/none.jpg"}); err == nil {
		t.Error("expected error removing missing object")
	}
}

func TestDiskListEmptyPrefix(t *testing.T) {
	d := NewDisk(t.TempDir(), "http://localhost:9000")
	keys, err := d.List(context.Background(), "motocross")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expect no keys, got %v", keys)
	}
}
