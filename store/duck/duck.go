// Package duck is an item store backed by an in-memory DuckDB.
//
// The driver is registered by importing github.com/marcboeker/go-duckdb in main.
package duck

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	nt "upnext/entity"
)

type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	filename string
}

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	if lgr == nil {
		lgr = nt.NopLogger{}
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}
	return
}

func (dk *Duck) Close() error {
	return dk.db.Close()
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Load a library export, a json array of item records
func (dk *Duck) Load(ctx context.Context, path string) (err error) {

	err = loadItems(ctx, dk.db, path)
	if err != nil {
		return
	}
	dk.filename = path

	count, err := dk.Count(ctx)
	if err != nil {
		return
	}

	dk.logger.Info(ctx, "loaded library", "path", path, "count", count)
	return
}

// Count returns the number of loaded records
func (dk *Duck) Count(ctx context.Context) (count int, err error) {

	err = dk.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&count)
	err = errors.Wrapf(err, "failed to count items")
	return
}

// Items returns the normalized items in file order
func (dk *Duck) Items(ctx context.Context) (items []nt.Item, err error) {

	rows, err := dk.db.QueryContext(ctx, "SELECT pos, raw::VARCHAR FROM items ORDER BY pos")
	if err != nil {
		err = errors.Wrapf(err, "failed to query items")
		return
	}
	defer rows.Close()

	items = []nt.Item{}
	for rows.Next() {
		var pos int64
		var raw string

		err = rows.Scan(&pos, &raw)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		var rec nt.Record
		err = json.Unmarshal([]byte(raw), &rec)
		if err != nil {
			err = errors.Wrapf(err, "failed to decode record at %d", pos)
			return
		}

		if rec.Id == "" {
			rec.Id = uuid.NewString()
		}
		items = append(items, rec.Item())
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func loadItems(ctx context.Context, db *sql.DB, path string) (err error) {

	// each array element is kept whole, normalization happens on the way out
	create := fmt.Sprintf(`
		CREATE OR REPLACE TABLE items AS
		SELECT
			ROW_NUMBER() OVER () AS pos,
			json_text::JSON AS raw
		FROM read_json_objects('%s',
			format='array',
			maximum_object_size=16777216) AS t(json_text)
	`, strings.ReplaceAll(path, "'", "''"))

	_, err = db.ExecContext(ctx, create)
	err = errors.Wrapf(err, "failed to create items table from %s", path)
	return
}
