package repository

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"posterseed/internal/schema"
)

// productColumns are written in this order by every SQL backend.
var productColumns = []string{"title", "description", "price", "mrp", "thumbnail_url", "image_urls"}

type placeholderFunc func(n int) string

func dollar(n int) string { return "$" + strconv.Itoa(n) }

func question(int) string { return "?" }

func insertStatement(table string, cols []string, ph placeholderFunc) (string, error) {
	if err := schema.ValidateIdentifier(table); err != nil {
		return "", err
	}

	marks := make([]string, len(cols))
	for i := range cols {
		marks[i] = ph(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(marks, ", ")), nil
}

// upsertStatement builds an INSERT ... ON CONFLICT that overwrites every
// non-key column. The syntax is shared by Postgres and SQLite.
func upsertStatement(table string, cols, conflictKeys []string, ph placeholderFunc) (string, error) {
	if len(conflictKeys) == 0 {
		return "", fmt.Errorf("upsert into %s: no conflict keys", table)
	}
	for _, k := range conflictKeys {
		if !slices.Contains(cols, k) {
			return "", fmt.Errorf("upsert into %s: conflict key %q is not a product column", table, k)
		}
	}

	insert, err := insertStatement(table, cols, ph)
	if err != nil {
		return "", err
	}

	var sets []string
	for _, c := range cols {
		if c == "id" || slices.Contains(conflictKeys, c) {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
	}

	action := "DO NOTHING"
	if len(sets) > 0 {
		action = "DO UPDATE SET " + strings.Join(sets, ", ")
	}
	return fmt.Sprintf("%s ON CONFLICT (%s) %s", insert, strings.Join(conflictKeys, ", "), action), nil
}
