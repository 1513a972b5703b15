// cmd/uploadimages/main.go
// Bulk-imports a directory of images into the object store and the photos
// table. Files are processed strictly in order; a failure is logged and the
// import continues with the next file.
//
// Usage:
//
//	go run ./cmd/uploadimages -dir ~/images/mx -category motocross \
//	    -event-id 6a3e... -start-numbers numbers.txt
//
// The optional start-numbers file maps one "filename startnumber" pair per
// line; files not listed get an empty start number.
package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/frebomedia/freboapi/config"
	bundb "github.com/frebomedia/freboapi/db"
	"github.com/frebomedia/freboapi/models"
	"github.com/frebomedia/freboapi/repo"
	"github.com/frebomedia/freboapi/storage"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

func main() {
	dir := flag.String("dir", "", "directory of images to import (required)")
	category := flag.String("category", "", "photo category: motocross, portrait or product (required)")
	eventID := flag.String("event-id", "", "event to assign the photos to")
	numbersFile := flag.String("start-numbers", "", "file of 'filename startnumber' lines")
	flag.Parse()

	if *dir == "" {
		log.Fatal("-dir is required")
	}
	if !models.ValidCategory(*category) {
		log.Fatalf("-category must be one of: %s", strings.Join(models.Categories, ", "))
	}

	var evID *uuid.UUID
	if *eventID != "" {
		parsed, err := uuid.Parse(*eventID)
		if err != nil {
			log.Fatalf("invalid -event-id: %v", err)
		}
		evID = &parsed
	}

	numbers, err := loadStartNumbers(*numbersFile)
	if err != nil {
		log.Fatalf("start numbers: %v", err)
	}

	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	ctx := context.Background()
	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	var store storage.Store
	if cfg.StorageDriver == "disk" {
		store = storage.NewDisk(cfg.StorageDir, "http://localhost"+cfg.Port)
	} else {
		store = storage.NewSupabase(cfg.SupabaseURL, cfg.StorageKey(), cfg.StorageBucket)
	}
	photos := repo.NewPhotos(db)

	files, err := imageFiles(*dir)
	if err != nil {
		log.Fatalf("read dir: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("no images found in %s", *dir)
	}
	log.Printf("importing %d images from %s", len(files), *dir)

	ok, failed := 0, 0
	for _, file := range files {
		name := filepath.Base(file)
		if err := importOne(ctx, store, photos, file, *category, numbers[name], evID); err != nil {
			log.Printf("FAILED %s: %v", name, err)
			failed++
			continue
		}
		log.Printf("uploaded %s", name)
		ok++
	}

	log.Printf("done: %d uploaded, %d failed", ok, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func importOne(ctx context.Context, store storage.Store, photos *repo.Photos, file, category, startNumber string, eventID *uuid.UUID) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	key := storage.ObjectKey(category, file)
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(file)))

	if err := store.Upload(ctx, key, f, contentType); err != nil {
		return err
	}

	return photos.Create(ctx, &models.Photo{
		URL:         key,
		Category:    category,
		StartNumber: startNumber,
		EventID:     eventID,
	})
}

func imageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func loadStartNumbers(file string) (map[string]string, error) {
	numbers := map[string]string{}
	if file == "" {
		return numbers, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 {
			numbers[fields[0]] = fields[1]
		}
	}
	return numbers, scanner.Err()
}
