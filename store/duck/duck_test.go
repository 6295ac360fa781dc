package duck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "upnext/entity"
)

const library = `[
  {"id": "1", "type": "Book", "status": "Completed", "rating": 5, "title": "Foundation", "author": "Isaac Asimov"},
  {"type": "Manga", "status": "Reading/Watching", "title": "Berserk", "series": "Berserk", "seriesNumber": 41},
  {"id": "3", "type": "Movie", "title": "Alien", "rating": "3", "authors": ["Ridley Scott"], "isHidden": true}
]`

func TestDuck(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "it's a library.json")
	require.NoError(t, os.WriteFile(path, []byte(library), 0644))

	dk, err := New(nil)
	require.NoError(t, err)
	defer dk.Close()

	err = dk.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, dk.Name())

	count, err := dk.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	items, err := dk.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Foundation", items[0].Title)
	assert.Equal(t, []string{"Isaac Asimov"}, items[0].Authors)

	assert.NotEmpty(t, items[1].Id)
	assert.Equal(t, "41", items[1].SeriesNumber)
	assert.Equal(t, nt.StatusInProgress, items[1].Status)

	assert.Equal(t, 3, items[2].Rating)
	assert.Equal(t, nt.StatusPlanning, items[2].Status)
	assert.True(t, items[2].IsHidden)
}

func TestDuckMissing(t *testing.T) {

	dk, err := New(nil)
	require.NoError(t, err)
	defer dk.Close()

	err = dk.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to create items table")
}
