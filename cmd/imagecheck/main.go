package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"posterseed/internal/catalog"
	"posterseed/internal/config"
	"posterseed/internal/imagecheck"
	"posterseed/internal/observability"
)

// go run ./cmd/imagecheck -workers=4
func main() {
	workers := flag.Int("workers", 8, "concurrent HEAD requests")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := cfg.RequireImageKey(); err != nil {
		log.Fatalf("%v", err)
	}

	records, err := catalog.BuildCatalog(catalog.Movies, catalog.Descriptions, catalog.ImageKitURLs(cfg.ImageKey, cfg.ImageFolder))
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}

	var urls []string
	for _, p := range records {
		urls = append(urls, p.ImageURLs...)
	}
	log.Printf("[ImageCheck] checking %d urls for %d products", len(urls), len(records))

	c := imagecheck.New()
	c.Workers = *workers
	c.Observe = observability.Recorder{}.ObserveImage

	broken := 0
	for _, r := range c.Check(context.Background(), urls) {
		if r.OK() {
			continue
		}
		broken++
		if r.Err != nil {
			fmt.Printf("BROKEN %s → %v\n", r.URL, r.Err)
		} else {
			fmt.Printf("BROKEN %s → status %d\n", r.URL, r.Status)
		}
	}

	log.Printf("Image check finished: %d of %d urls broken", broken, len(urls))
	if broken > 0 {
		os.Exit(1)
	}
}
