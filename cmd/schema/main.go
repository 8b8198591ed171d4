package main

import (
	"context"
	"log"

	"posterseed/internal/backend"
	"posterseed/internal/config"
	"posterseed/internal/schema"
)

// go run ./cmd/schema
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}
	ctx := context.Background()

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Could not open backend: %v", err)
	}
	defer store.Close()

	if err := schema.Create(ctx, store, store.Dialect, cfg.Table); err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	log.Println("Table creation executed.")
}
