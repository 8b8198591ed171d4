// Package schema holds the DDL for the products table.
package schema

import (
	"context"
	"fmt"
	"log"
	"regexp"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateIdentifier rejects table or column names that would need quoting.
// Identifiers are interpolated into SQL, never bound as parameters.
func ValidateIdentifier(name string) error {
	if !identifierRE.MatchString(name) {
		return fmt.Errorf("invalid sql identifier %q", name)
	}
	return nil
}

const postgresProducts = `
create extension if not exists "uuid-ossp";
create table if not exists %s (
	id uuid default uuid_generate_v4() primary key,
	title text not null unique,
	description text,
	price numeric not null,
	mrp numeric not null,
	thumbnail_url text,
	image_urls text[],
	created_at timestamp with time zone default timezone('utc'::text, now())
);`

// image_urls is a JSON array; SQLite has no array type.
const sqliteProducts = `
create table if not exists %s (
	id text primary key,
	title text not null unique,
	description text,
	price numeric not null,
	mrp numeric not null,
	thumbnail_url text,
	image_urls text,
	created_at timestamp default CURRENT_TIMESTAMP
);`

func ProductsDDL(dialect Dialect, table string) (string, error) {
	if err := ValidateIdentifier(table); err != nil {
		return "", err
	}
	switch dialect {
	case DialectPostgres:
		return fmt.Sprintf(postgresProducts, table), nil
	case DialectSQLite:
		return fmt.Sprintf(sqliteProducts, table), nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", dialect)
	}
}

type Executor interface {
	ExecRaw(ctx context.Context, sql string) error
}

// Create issues the products DDL through the store's raw SQL channel.
func Create(ctx context.Context, store Executor, dialect Dialect, table string) error {
	ddl, err := ProductsDDL(dialect, table)
	if err != nil {
		return err
	}

	log.Printf("[Schema] creating table %s (%s)", table, dialect)
	if err := store.ExecRaw(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	log.Printf("[Schema] table creation executed")
	return nil
}
