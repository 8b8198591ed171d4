package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"posterseed/internal/model"
	"posterseed/internal/schema"
)

// ProductRepository talks to Postgres directly over a pgx pool.
type ProductRepository struct {
	DB *pgxpool.Pool
}

func (r *ProductRepository) Upsert(ctx context.Context, table string, p model.Product, conflictKeys []string) (int64, error) {
	query, err := upsertStatement(table, productColumns, conflictKeys, dollar)
	if err != nil {
		return 0, err
	}
	return r.exec(ctx, query, p)
}

func (r *ProductRepository) Insert(ctx context.Context, table string, p model.Product) (int64, error) {
	query, err := insertStatement(table, productColumns, dollar)
	if err != nil {
		return 0, err
	}
	return r.exec(ctx, query, p)
}

// ExecRaw runs query without arguments, so pgx uses the simple protocol and
// multi-statement DDL is accepted.
func (r *ProductRepository) ExecRaw(ctx context.Context, query string) error {
	_, err := r.DB.Exec(ctx, query)
	return err
}

func (r *ProductRepository) Count(ctx context.Context, table string) (int, error) {
	if err := schema.ValidateIdentifier(table); err != nil {
		return 0, err
	}

	var n int
	if err := r.DB.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (r *ProductRepository) exec(ctx context.Context, query string, p model.Product) (int64, error) {
	tag, err := r.DB.Exec(ctx, query, p.Title, p.Description, p.Price, p.MRP, p.ThumbnailURL, p.ImageURLs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
