package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nt "upnext/entity"
	"upnext/filter"
	"upnext/query"
)

func library() []nt.Item {
	return []nt.Item{
		{Id: "b1", Type: nt.TypeBook, Status: nt.StatusCompleted, Rating: 5, Title: "Foundation", Universe: "Foundation", Authors: []string{"Isaac Asimov"}, Tags: []string{"Space Opera"}, UpdatedAt: "2024-03-01"},
		{Id: "b2", Type: nt.TypeBook, Status: nt.StatusPlanning, Title: "Dune", Series: "Dune", SeriesNumber: "1", Authors: []string{"Frank Herbert"}, Abbreviations: []string{"DN"}, UpdatedAt: "2024-02-01"},
		{Id: "m1", Type: nt.TypeMovie, Status: nt.StatusCompleted, Rating: 3, Title: "A New Hope", AlternateTitles: []string{"Episode IV"}, Universe: "Star Wars", UpdatedAt: "2024-01-01"},
		{Id: "a1", Type: nt.TypeAnime, Status: nt.StatusInProgress, Rating: 2, Title: "Gundam", Tags: []string{"mecha"}, UpdatedAt: "2024-04-01"},
		{Id: "h1", Type: nt.TypeManga, Status: nt.StatusDropped, Rating: 1, Title: "Secret", IsHidden: true, UpdatedAt: "2024-05-01"},
	}
}

func ids(items []nt.Item) []string {

	out := []string{}
	for _, item := range items {
		out = append(out, item.Id)
	}
	return out
}

func TestMatcher(t *testing.T) {
	tests := []struct {
		name     string
		settings nt.Settings
		filter   func(fs *nt.FilterState)
		search   string
		want     []string
	}{
		{
			name: "defaults hide hidden",
			want: []string{"b1", "b2", "m1", "a1"},
		},
		{
			name:     "disabled type and status",
			settings: nt.Settings{DisabledTypes: []nt.Type{nt.TypeMovie}, DisabledStatuses: []nt.Status{nt.StatusPlanning}},
			want:     []string{"b1", "a1"},
		},
		{
			name:   "type selection",
			filter: func(fs *nt.FilterState) { filter.ToggleType(fs, nt.TypeBook) },
			want:   []string{"b1", "b2"},
		},
		{
			name:   "status selection",
			filter: func(fs *nt.FilterState) { filter.ToggleStatus(fs, nt.StatusCompleted) },
			want:   []string{"b1", "m1"},
		},
		{
			name:   "rating exempts unrated statuses",
			filter: func(fs *nt.FilterState) { filter.ToggleRating(fs, 5) },
			want:   []string{"b1", "b2", "a1"},
		},
		{
			name:     "configured unrated statuses",
			settings: nt.Settings{UnratedStatuses: []nt.Status{}},
			filter:   func(fs *nt.FilterState) { filter.ToggleRating(fs, 5) },
			want:     []string{"b1"},
		},
		{
			name: "show hidden",
			filter: func(fs *nt.FilterState) {
				filter.SetHiddenVisible(fs, true)
			},
			want: []string{"b1", "b2", "m1", "a1", "h1"},
		},
		{
			name: "hidden only",
			filter: func(fs *nt.FilterState) {
				filter.SetHiddenVisible(fs, true)
				filter.SetHiddenOnly(fs, true)
			},
			want: []string{"h1"},
		},
		{
			name:   "stale hidden only is ignored",
			filter: func(fs *nt.FilterState) { filter.SetHiddenOnly(fs, true) },
			want:   []string{"b1", "b2", "m1", "a1"},
		},
		{
			name:   "type clause is exact",
			search: "type=book",
			want:   []string{"b1", "b2"},
		},
		{
			name:   "type clause rejects partial",
			search: "type=boo",
			want:   []string{},
		},
		{
			name:   "universe clause substring",
			search: `universe="star"`,
			want:   []string{"m1"},
		},
		{
			name:   "series clause",
			search: "series=un",
			want:   []string{"b2"},
		},
		{
			name:   "author clause any entry",
			search: "author=asimov",
			want:   []string{"b1"},
		},
		{
			name:   "tag clause",
			search: "tags=MECH",
			want:   []string{"a1"},
		},
		{
			name:   "free text alternate title",
			search: "episode",
			want:   []string{"m1"},
		},
		{
			name:   "free text abbreviation and tag",
			search: "opera",
			want:   []string{"b1"},
		},
		{
			name:   "free text abbreviation",
			search: "dn",
			want:   []string{"b2"},
		},
		{
			name:   "free text skips authors",
			search: "herbert",
			want:   []string{},
		},
		{
			name:   "clause and free text",
			search: "type=Book dune",
			want:   []string{"b2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := nt.NewFilterState()
			if tt.filter != nil {
				tt.filter(&fs)
			}

			mt := NewMatcher(tt.settings, fs, query.Parse(tt.search))
			assert.Equal(t, tt.want, ids(mt.Filter(library())))
		})
	}
}

func TestMatcherMonotonic(t *testing.T) {
	items := library()
	fs := nt.NewFilterState()

	narrow := NewMatcher(nt.Settings{
		DisabledTypes:    []nt.Type{nt.TypeBook, nt.TypeAnime},
		DisabledStatuses: []nt.Status{nt.StatusCompleted},
	}, fs, nt.Query{})
	wide := NewMatcher(nt.Settings{
		DisabledTypes: []nt.Type{nt.TypeBook},
	}, fs, nt.Query{})

	for _, item := range items {
		if narrow.Accept(item) {
			assert.True(t, wide.Accept(item), item.Id)
		}
	}
}

func TestMatcherRatingExemption(t *testing.T) {
	fs := nt.NewFilterState()
	fs.Ratings = []int{5}

	mt := NewMatcher(nt.Settings{}, fs, nt.Query{})
	assert.True(t, mt.Accept(nt.Item{Id: "p", Type: nt.TypeBook, Status: nt.StatusPlanning}))
	assert.False(t, mt.Accept(nt.Item{Id: "c", Type: nt.TypeBook, Status: nt.StatusCompleted}))
}

func TestComparator(t *testing.T) {
	tests := []struct {
		name    string
		sorting nt.SortSpec
		want    []string
	}{
		{
			name:    "updated desc",
			sorting: nt.DefaultSort,
			want:    []string{"h1", "a1", "b1", "b2", "m1"},
		},
		{
			name:    "title asc ignores case",
			sorting: nt.SortSpec{By: "title", Order: nt.Asc},
			want:    []string{"m1", "b2", "b1", "a1", "h1"},
		},
		{
			name:    "rating asc unrated first",
			sorting: nt.SortSpec{By: "rating", Order: nt.Asc},
			want:    []string{"b2", "h1", "a1", "m1", "b1"},
		},
		{
			name:    "unknown field keeps order",
			sorting: nt.SortSpec{By: "bogus", Order: nt.Desc},
			want:    []string{"b1", "b2", "m1", "a1", "h1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := library()
			Sort(items, tt.sorting)
			assert.Equal(t, tt.want, ids(items))
		})
	}
}

func TestComparatorSeries(t *testing.T) {
	items := []nt.Item{
		{Id: "ten", Series: "Foo", SeriesNumber: "10"},
		{Id: "bar", Series: "bar", SeriesNumber: "99"},
		{Id: "two", Series: "foo", SeriesNumber: "2"},
		{Id: "none", Series: "Foo", SeriesNumber: "n/a"},
		{Id: "half", Series: "Foo", SeriesNumber: "2.5 (short)"},
	}

	Sort(items, nt.SortSpec{By: "series", Order: nt.Asc})
	assert.Equal(t, []string{"bar", "none", "two", "half", "ten"}, ids(items))

	Sort(items, nt.SortSpec{By: "series", Order: nt.Desc})
	assert.Equal(t, []string{"ten", "half", "two", "none", "bar"}, ids(items))
}

func TestSeriesNumber(t *testing.T) {
	assert.Equal(t, 0.0, SeriesNumber(""))
	assert.Equal(t, 0.0, SeriesNumber("vol. 3"))
	assert.Equal(t, 3.0, SeriesNumber(" 3 "))
	assert.Equal(t, 1.5, SeriesNumber("1.5"))
	assert.Equal(t, 0.5, SeriesNumber(".5"))
	assert.Equal(t, -2.0, SeriesNumber("-2"))
	assert.Equal(t, 12.0, SeriesNumber("12abc"))
}

func TestApplyIdempotent(t *testing.T) {
	items := library()
	mt := NewMatcher(nt.Settings{}, nt.NewFilterState(), nt.Query{})

	first := Apply(items, mt, nt.SortSpec{By: "type", Order: nt.Asc})
	second := Apply(items, mt, nt.SortSpec{By: "type", Order: nt.Asc})
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a1", "b1", "b2", "m1"}, ids(first))

	// source order untouched
	assert.Equal(t, []string{"b1", "b2", "m1", "a1", "h1"}, ids(items))
}

func TestPositionOf(t *testing.T) {
	items := []nt.Item{{Id: "A"}, {Id: "B"}, {Id: "C"}}

	assert.Equal(t, nt.Position{Index: 1, HasPrev: true, HasNext: true}, PositionOf(items, "B"))
	assert.Equal(t, nt.Position{Index: 0, HasPrev: false, HasNext: true}, PositionOf(items, "A"))
	assert.Equal(t, nt.Position{Index: 2, HasPrev: true, HasNext: false}, PositionOf(items, "C"))
	assert.Equal(t, nt.Position{Index: -1}, PositionOf(items, "Z"))
	assert.Equal(t, nt.NoPosition, PositionOf(nil, "A"))

	id, ok := Neighbor(items, "B", 1)
	assert.True(t, ok)
	assert.Equal(t, "C", id)

	_, ok = Neighbor(items, "A", -1)
	assert.False(t, ok)

	_, ok = Neighbor(items, "Z", 1)
	assert.False(t, ok)
}
