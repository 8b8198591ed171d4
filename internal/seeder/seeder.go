// Package seeder persists catalog records one at a time, reporting the
// outcome of every record instead of stopping at the first failure.
package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"posterseed/internal/model"
)

// DataStore is the table-level write API the seeder needs from a backend.
type DataStore interface {
	Upsert(ctx context.Context, table string, p model.Product, conflictKeys []string) (int64, error)
	Insert(ctx context.Context, table string, p model.Product) (int64, error)
	ExecRaw(ctx context.Context, sql string) error
}

// Recorder receives the latency and outcome of each store call.
type Recorder interface {
	ObserveCall(operation string, d time.Duration, err error)
}

// BackendError is a failed store call for one record.
type BackendError struct {
	Title string
	Err   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("store %q: %v", e.Title, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

const (
	OpUpsert = "upsert"
	OpInsert = "insert"
)

type Seeder struct {
	Store        DataStore
	Table        string
	ConflictKeys []string

	// InsertOnly sends plain inserts; existing titles then fail per record.
	InsertOnly bool
	// CallTimeout bounds each store call. Zero means no per-call limit.
	CallTimeout time.Duration

	Metrics Recorder
}

func New(store DataStore, table string) *Seeder {
	return &Seeder{
		Store:        store,
		Table:        table,
		ConflictKeys: []string{"title"},
	}
}

// Seed writes records in order, one call each, and returns one result per
// record. Nothing is rolled back: rows written before a failure stay written.
// Once ctx is done the remaining records are reported as failed unsent.
func (s *Seeder) Seed(ctx context.Context, records []model.Product) []model.SeedResult {
	results := make([]model.SeedResult, 0, len(records))
	for _, p := range records {
		if err := ctx.Err(); err != nil {
			results = append(results, model.SeedResult{Title: p.Title, Err: &BackendError{Title: p.Title, Err: err}})
			continue
		}

		n, err := s.write(ctx, p)
		if err != nil {
			log.Printf("[Seeder] %s failed: %v", p.Title, err)
			results = append(results, model.SeedResult{Title: p.Title, Err: &BackendError{Title: p.Title, Err: err}})
			continue
		}
		results = append(results, model.SeedResult{Title: p.Title, Success: true, RowsAffected: n})
	}
	return results
}

func (s *Seeder) write(ctx context.Context, p model.Product) (int64, error) {
	if s.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.CallTimeout)
		defer cancel()
	}

	op := OpUpsert
	if s.InsertOnly {
		op = OpInsert
	}

	start := time.Now()
	var n int64
	var err error
	if s.InsertOnly {
		n, err = s.Store.Insert(ctx, s.Table, p)
	} else {
		n, err = s.Store.Upsert(ctx, s.Table, p, s.ConflictKeys)
	}

	if s.Metrics != nil {
		s.Metrics.ObserveCall(op, time.Since(start), err)
	}
	return n, err
}
