package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"posterseed/internal/model"
	"posterseed/internal/schema"
)

// SQLRepository writes products through database/sql. The postgres dialect
// runs on lib/pq; the sqlite dialect stores image_urls as JSON text and
// generates row ids client side.
type SQLRepository struct {
	DB      *sql.DB
	Dialect schema.Dialect
}

func (r *SQLRepository) Upsert(ctx context.Context, table string, p model.Product, conflictKeys []string) (int64, error) {
	cols, args, ph, err := r.row(p)
	if err != nil {
		return 0, err
	}

	query, err := upsertStatement(table, cols, conflictKeys, ph)
	if err != nil {
		return 0, err
	}
	return r.exec(ctx, query, args...)
}

func (r *SQLRepository) Insert(ctx context.Context, table string, p model.Product) (int64, error) {
	cols, args, ph, err := r.row(p)
	if err != nil {
		return 0, err
	}

	query, err := insertStatement(table, cols, ph)
	if err != nil {
		return 0, err
	}
	return r.exec(ctx, query, args...)
}

func (r *SQLRepository) ExecRaw(ctx context.Context, query string) error {
	_, err := r.DB.ExecContext(ctx, query)
	return err
}

func (r *SQLRepository) Count(ctx context.Context, table string) (int, error) {
	if err := schema.ValidateIdentifier(table); err != nil {
		return 0, err
	}

	var n int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Get returns the stored product with the given title, or nil if none exists.
func (r *SQLRepository) Get(ctx context.Context, table, title string) (*model.Product, error) {
	if err := schema.ValidateIdentifier(table); err != nil {
		return nil, err
	}

	mark := dollar(1)
	if r.Dialect == schema.DialectSQLite {
		mark = question(1)
	}
	query := fmt.Sprintf(`
		SELECT title, COALESCE(description, ''), price, mrp, COALESCE(thumbnail_url, ''), image_urls
		FROM %s
		WHERE title = %s
	`, table, mark)

	var p model.Product
	var urls any
	if r.Dialect == schema.DialectSQLite {
		urls = new(sql.NullString)
	} else {
		urls = new(pq.StringArray)
	}

	err := r.DB.QueryRowContext(ctx, query, title).Scan(&p.Title, &p.Description, &p.Price, &p.MRP, &p.ThumbnailURL, urls)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", title, err)
	}

	switch v := urls.(type) {
	case *pq.StringArray:
		p.ImageURLs = []string(*v)
	case *sql.NullString:
		if v.Valid && v.String != "" {
			if err := json.Unmarshal([]byte(v.String), &p.ImageURLs); err != nil {
				return nil, fmt.Errorf("decode image_urls for %q: %w", title, err)
			}
		}
	}
	return &p, nil
}

func (r *SQLRepository) row(p model.Product) ([]string, []any, placeholderFunc, error) {
	switch r.Dialect {
	case schema.DialectPostgres:
		args := []any{p.Title, p.Description, p.Price, p.MRP, p.ThumbnailURL, pq.Array(p.ImageURLs)}
		return productColumns, args, dollar, nil
	case schema.DialectSQLite:
		urls, err := json.Marshal(p.ImageURLs)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("encode image_urls: %w", err)
		}
		cols := append([]string{"id"}, productColumns...)
		args := []any{uuid.New().String(), p.Title, p.Description, p.Price, p.MRP, p.ThumbnailURL, string(urls)}
		return cols, args, question, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported dialect %q", r.Dialect)
	}
}

func (r *SQLRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
