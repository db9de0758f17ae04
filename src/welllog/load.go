package welllog

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iafilius/welltracks/src/logger"
)

// Load reads a table from a source string:
//
//	logs.csv                     CSV with a header row
//	logs.xlsx, logs.xlsx#Sheet1  first (or named) worksheet
//	logs.db, logs.sqlite         table "logs"
//	sqlite://logs.db?table=wells named table
func Load(ctx context.Context, source string) (*Table, error) {
	start := time.Now()
	t, err := load(ctx, source)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded %s rows x %d columns from %s in %s",
		humanize.Comma(int64(t.Len())), len(t.Columns()), source, time.Since(start).Round(time.Millisecond))
	return t, nil
}

func load(ctx context.Context, source string) (*Table, error) {
	if rest, ok := strings.CutPrefix(source, "sqlite://"); ok {
		path, query, _ := strings.Cut(rest, "?")
		q, err := url.ParseQuery(query)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", source, err)
		}
		return LoadSQLite(ctx, path, q.Get("table"))
	}
	path, sheet := source, ""
	if i := strings.LastIndex(source, "#"); i > 0 && isWorkbook(source[:i]) {
		path, sheet = source[:i], source[i+1:]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return LoadCSV(path)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path, "")
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
}

func isWorkbook(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".xlsx" || ext == ".xlsm"
}
