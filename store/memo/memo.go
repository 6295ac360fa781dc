// Package memo is an in-memory item store decoding library exports with encoding/json.
package memo

import (
	"context"
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	nt "upnext/entity"
)

type Memo struct {
	items    []nt.Item
	filename string
	logger   nt.Logger
}

func New(lgr nt.Logger) *Memo {

	if lgr == nil {
		lgr = nt.NopLogger{}
	}
	return &Memo{logger: lgr}
}

// Name returns the name of the loaded file
func (mm *Memo) Name() string {
	return mm.filename
}

// Load a library export, a json array of item records
func (mm *Memo) Load(ctx context.Context, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s", path)
		return
	}

	items, err := Decode(data)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode %s", path)
		return
	}

	mm.items = items
	mm.filename = path

	mm.logger.Info(ctx, "loaded library", "path", path, "count", len(items))
	return
}

// Items returns the loaded items in file order
func (mm *Memo) Items(ctx context.Context) (items []nt.Item, err error) {

	items = make([]nt.Item, len(mm.items))
	copy(items, mm.items)
	return
}

func (mm *Memo) Close() error {
	return nil
}

// Decode normalizes a json array of records into items.
// Records without an id are given a random one.
func Decode(data []byte) (items []nt.Item, err error) {

	var records []nt.Record
	err = json.Unmarshal(data, &records)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal records")
		return
	}

	items = make([]nt.Item, 0, len(records))
	for _, rec := range records {
		if rec.Id == "" {
			rec.Id = uuid.NewString()
		}
		items = append(items, rec.Item())
	}
	return
}
