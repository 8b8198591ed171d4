package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"posterseed/internal/backend"
	"posterseed/internal/catalog"
	"posterseed/internal/config"
	"posterseed/internal/lock"
	"posterseed/internal/model"
	"posterseed/internal/observability"
	"posterseed/internal/seeder"
)

// go run ./cmd/seed
// go run ./cmd/seed -limit=1
// go run ./cmd/seed -ids="Nayagan,Jeeva" -dry-run
func main() {
	limit := flag.Int("limit", 0, "seed only the first N catalog items (0 = all)")
	idsArg := flag.String("ids", "", "comma separated catalog items to seed")
	insertOnly := flag.Bool("insert", false, "plain insert instead of upsert on title")
	dryRun := flag.Bool("dry-run", false, "print the records without writing them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := cfg.RequireImageKey(); err != nil {
		log.Fatalf("%v", err)
	}

	var only []string
	for _, id := range strings.Split(*idsArg, ",") {
		if id = strings.TrimSpace(id); id != "" {
			only = append(only, id)
		}
	}

	items, err := catalog.Select(catalog.Movies, only, *limit)
	if err != nil {
		log.Fatalf("Failed to select catalog items: %v", err)
	}

	records, err := catalog.BuildCatalog(items, catalog.Descriptions, catalog.ImageKitURLs(cfg.ImageKey, cfg.ImageFolder))
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}
	log.Printf("[Seed] %d records built", len(records))

	if *dryRun {
		for _, p := range records {
			fmt.Printf("%s | %.0f/%.0f | %s | %s\n", p.Title, p.Price, p.MRP, p.ThumbnailURL, catalog.Excerpt(p.Description, 60))
		}
		return
	}

	observability.Start(cfg.MetricsPort)

	failed, err := run(cfg, records, *insertOnly)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// run seeds records and returns the number of failed records. The error is
// set only when the run could not start.
func run(cfg *config.Config, records []model.Product, insertOnly bool) (int, error) {
	ctx := context.Background()

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		return 0, fmt.Errorf("could not open backend: %w", err)
	}
	defer store.Close()

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return 0, &config.ConfigurationError{Key: "REDIS_URL", Reason: err.Error()}
		}
		client := redis.NewClient(opts)
		defer client.Close()

		ttl := cfg.LockTTL
		if ttl <= 0 {
			ttl = lock.TTLFor(len(records), cfg.CallTimeout)
		}

		l := lock.New(client, cfg.Table, ttl)
		if err := l.Acquire(ctx); err != nil {
			return 0, fmt.Errorf("could not lock %s: %w", cfg.Table, err)
		}
		defer func() {
			if err := l.Release(context.Background()); err != nil {
				log.Printf("[Seed] %v", err)
			}
		}()
	}

	s := seeder.New(store, cfg.Table)
	s.InsertOnly = insertOnly
	s.CallTimeout = cfg.CallTimeout
	s.Metrics = observability.Recorder{}

	results := s.Seed(ctx, records)
	if err := seeder.Report(os.Stdout, results); err != nil {
		log.Printf("[Seed] report: %v", err)
	}

	sum := seeder.Summarize(results)
	log.Printf("Seed finished: %d ok, %d failed", sum.Succeeded, sum.Failed)
	return sum.Failed, nil
}
