// Package backend opens the data store selected by SEED_BACKEND.
package backend

import (
	"context"
	"fmt"
	"log"

	"posterseed/internal/config"
	"posterseed/internal/db"
	"posterseed/internal/repository"
	"posterseed/internal/schema"
	"posterseed/internal/seeder"
)

type Store struct {
	seeder.DataStore
	Dialect schema.Dialect
	close   func()
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if err := cfg.RequireBackend(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case config.BackendPostgREST:
		log.Printf("[Backend] using PostgREST at %s", cfg.SupabaseURL)
		return &Store{
			DataStore: repository.NewPostgREST(cfg.SupabaseURL, cfg.SupabaseKey),
			Dialect:   schema.DialectPostgres,
		}, nil

	case config.BackendPgx:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Printf("[Backend] using pgx pool")
		return &Store{
			DataStore: &repository.ProductRepository{DB: pool},
			Dialect:   schema.DialectPostgres,
			close:     pool.Close,
		}, nil

	case config.BackendPostgres:
		conn, err := db.New(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := conn.PingContext(ctx); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		log.Printf("[Backend] using lib/pq")
		return &Store{
			DataStore: &repository.SQLRepository{DB: conn, Dialect: schema.DialectPostgres},
			Dialect:   schema.DialectPostgres,
			close:     func() { _ = conn.Close() },
		}, nil

	case config.BackendSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Backend] using sqlite %s", cfg.SQLitePath)
		return &Store{
			DataStore: &repository.SQLRepository{DB: conn, Dialect: schema.DialectSQLite},
			Dialect:   schema.DialectSQLite,
			close:     func() { _ = conn.Close() },
		}, nil
	}

	return nil, &config.ConfigurationError{Key: "SEED_BACKEND", Reason: fmt.Sprintf("unknown backend %q", cfg.Backend)}
}
