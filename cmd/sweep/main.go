// cmd/sweep/main.go
// Reconciles the object store with the photos table. Upload writes the
// object before the row and delete removes the object before the row, so a
// failure in between can leave storage objects no row points at. The sweep
// lists every category prefix, diffs against photos.url and reports the
// orphans; -delete removes them.
//
// Usage:
//
//	go run ./cmd/sweep            # dry run, report only
//	go run ./cmd/sweep -delete    # remove orphaned objects
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/frebomedia/freboapi/config"
	bundb "github.com/frebomedia/freboapi/db"
	"github.com/frebomedia/freboapi/models"
	"github.com/frebomedia/freboapi/repo"
	"github.com/frebomedia/freboapi/storage"
)

func main() {
	del := flag.Bool("delete", false, "remove orphaned storage objects (default: report only)")
	flag.Parse()

	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	ctx := context.Background()

	var store storage.Store
	base, bucket := cfg.SupabaseURL, cfg.StorageBucket
	if cfg.StorageDriver == "disk" {
		base, bucket = "http://localhost"+cfg.Port, "media"
		store = storage.NewDisk(cfg.StorageDir, base)
	} else {
		store = storage.NewSupabase(cfg.SupabaseURL, cfg.StorageKey(), cfg.StorageBucket)
	}

	urls, err := repo.NewPhotos(db).Keys(ctx)
	if err != nil {
		log.Fatalf("photo keys: %v", err)
	}
	// Rows may hold either relative keys or absolute URLs; both forms must
	// protect their object, so each url is mapped back to its bucket key
	// before the diff. External URLs reference nothing in the bucket.
	referenced := make(map[string]bool, len(urls))
	for _, u := range urls {
		if key, ok := storage.KeyFromURL(base, bucket, u); ok {
			referenced[key] = true
		}
	}

	var orphans []string
	for _, category := range models.Categories {
		objects, err := store.List(ctx, category)
		if err != nil {
			log.Fatalf("list %s: %v", category, err)
		}
		for _, key := range objects {
			if !referenced[key] {
				orphans = append(orphans, key)
			}
		}
	}

	if len(orphans) == 0 {
		log.Println("no orphaned objects")
		return
	}

	for _, key := range orphans {
		log.Printf("orphan: %s", key)
	}

	if !*del {
		log.Printf("%d orphaned objects; re-run with -delete to remove them", len(orphans))
		os.Exit(1)
	}

	if err := store.Remove(ctx, orphans); err != nil {
		log.Fatalf("remove orphans: %v", err)
	}
	log.Printf("removed %d orphaned objects", len(orphans))
}
