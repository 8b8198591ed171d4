package seeder

import (
	"fmt"
	"io"

	"posterseed/internal/model"
)

type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

func Summarize(results []model.SeedResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}

// Report writes one line per record followed by a totals line.
func Report(w io.Writer, results []model.SeedResult) error {
	for _, r := range results {
		var err error
		if r.Success {
			_, err = fmt.Fprintf(w, "Inserted: %s → rows=%d\n", r.Title, r.RowsAffected)
		} else {
			_, err = fmt.Fprintf(w, "Failed: %s → %v\n", r.Title, r.Err)
		}
		if err != nil {
			return err
		}
	}

	s := Summarize(results)
	_, err := fmt.Fprintf(w, "%d records: %d ok, %d failed\n", s.Total, s.Succeeded, s.Failed)
	return err
}
