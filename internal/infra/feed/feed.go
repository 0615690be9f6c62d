// Package feed holds the file-backed connectors that move records
// between the data files and the services.
package feed

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"bond_go/internal/domain"
	"bond_go/internal/infra"
)

// errFieldCount reports a record with the wrong number of fields.
var errFieldCount = errors.New("wrong field count")

// scanRecords reads comma-separated records from r, skipping the header
// line, and hands the trimmed fields of each record to handle. A record
// that fails to parse is logged and skipped; only read errors and
// context cancellation abort the scan.
func scanRecords(ctx context.Context, r io.Reader, feed string, fields int, handle func(line int, rec []string) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		if line == 1 {
			continue // header
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		rec := strings.Split(text, ",")
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		var err error
		if len(rec) != fields {
			err = errFieldCount
		} else {
			err = handle(line, rec)
		}
		if err != nil {
			infra.GlobalMetrics.RecordSkipped()
			slog.Warn("feed record skipped",
				slog.Any("error", domain.NewFeedError(feed, line, err)))
			continue
		}
		infra.GlobalMetrics.RecordIngested()
	}
	return scanner.Err()
}
