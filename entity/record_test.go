package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordItem(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Item
	}{
		{
			name: "legacy single author",
			data: `{"id":"a1","title":"Foundation","type":"Book","status":"Completed","rating":4,"author":" Asimov "}`,
			want: Item{Id: "a1", Title: "Foundation", Type: TypeBook, Status: StatusCompleted, Rating: 4, Authors: []string{"Asimov"}},
		},
		{
			name: "author list wins over legacy author",
			data: `{"id":"a2","type":"Book","authors":["Pratchett","Gaiman"],"author":"Someone"}`,
			want: Item{Id: "a2", Type: TypeBook, Status: StatusPlanning, Authors: []string{"Pratchett", "Gaiman"}},
		},
		{
			name: "null rating and numeric series number",
			data: `{"id":"a3","type":"Manga","status":"Planning","rating":null,"series":"Berserk","seriesNumber":12}`,
			want: Item{Id: "a3", Type: TypeManga, Status: StatusPlanning, Series: "Berserk", SeriesNumber: "12"},
		},
		{
			name: "out of range rating is unrated",
			data: `{"id":"a4","type":"Movie","status":"Completed","rating":9}`,
			want: Item{Id: "a4", Type: TypeMovie, Status: StatusCompleted},
		},
		{
			name: "string rating and blank list entries",
			data: `{"id":"a5","type":"Anime","status":"Dropped","rating":"2","tags":["mecha"," ",""]}`,
			want: Item{Id: "a5", Type: TypeAnime, Status: StatusDropped, Rating: 2, Tags: []string{"mecha"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec Record
			err := json.Unmarshal([]byte(tt.data), &rec)
			require.NoError(t, err)

			assert.Equal(t, tt.want, rec.Item())
		})
	}
}

func TestItemField(t *testing.T) {
	item := Item{
		Id:      "x",
		Type:    TypeBook,
		Rating:  0,
		Title:   "Dune",
		Authors: []string{"Herbert", "Anderson"},
	}

	assert.Equal(t, "Dune", item.Field("title"))
	assert.Equal(t, "Book", item.Field("type"))
	assert.Equal(t, "", item.Field("rating"))
	assert.Equal(t, "Herbert,Anderson", item.Field("authors"))
	assert.Equal(t, "false", item.Field("isHidden"))
	assert.Equal(t, "", item.Field("nonsense"))

	item.Rating = 3
	assert.Equal(t, "3", item.Field("rating"))
}

func TestValid(t *testing.T) {
	assert.True(t, TypeSeries.Valid())
	assert.False(t, TypeAll.Valid())
	assert.False(t, Type("Podcast").Valid())

	assert.True(t, StatusOnHold.Valid())
	assert.False(t, StatusAll.Valid())
}

func TestQueryEmpty(t *testing.T) {
	assert.True(t, Query{}.Empty())
	assert.True(t, Query{Clauses: map[string]string{}}.Empty())
	assert.False(t, Query{FreeText: "dune"}.Empty())
	assert.False(t, Query{Clauses: map[string]string{KeyTag: ""}}.Empty())
}
