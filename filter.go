package upnext

import (
	"fmt"
	"slices"
	"strings"

	nt "upnext/entity"
)

var typeKeys = map[string]nt.Type{
	"`": nt.TypeAll,
	"1": nt.TypeAnime,
	"2": nt.TypeManga,
	"3": nt.TypeBook,
	"4": nt.TypeMovie,
	"5": nt.TypeSeries,
}

var statusKeys = map[string]nt.Status{
	"~": nt.StatusAll,
	"!": nt.StatusPlanning,
	"@": nt.StatusInProgress,
	"#": nt.StatusDropped,
	"$": nt.StatusOnHold,
	"%": nt.StatusAnticipating,
	"^": nt.StatusCompleted,
}

var ratingKeys = map[string]int{
	"f1": 1,
	"f2": 2,
	"f3": 3,
	"f4": 4,
	"f5": 5,
	"f6": nt.RatingAny,
}

// FilterKey applies the filter binding for key, reporting whether there is one.
func (lib *Library) FilterKey(key string) bool {

	if typ, ok := typeKeys[key]; ok {
		lib.SetFilterType(typ)
		return true
	}
	if status, ok := statusKeys[key]; ok {
		lib.SetFilterStatus(status)
		return true
	}
	if rating, ok := ratingKeys[key]; ok {
		lib.SetFilterRating(rating)
		return true
	}

	fs := lib.view.Filter
	switch key {
	case "m":
		lib.SetMultiSelect(!fs.MultiSelect)
	case "H":
		lib.SetHiddenVisible(!fs.ShowHidden)
	case "o":
		lib.SetHiddenOnly(!fs.HiddenOnly)
	case "s":
		lib.SetSortBy(NextSortField(lib.view.Sort.By))
	case "S":
		order := nt.Asc
		if lib.view.Sort.Order == nt.Asc {
			order = nt.Desc
		}
		lib.SetSortOrder(order)
	default:
		return false
	}
	return true
}

// NextSortField returns the sort field after field, cycling.
func NextSortField(field string) string {

	idx := slices.Index(nt.SortFields, field)
	return nt.SortFields[(idx+1)%len(nt.SortFields)]
}

// Summary describes a view in a line.
func Summary(vw nt.View) string {

	fs := vw.Filter
	parts := []string{
		"type:" + join(fs.Types),
		"status:" + join(fs.Statuses),
	}

	if len(fs.Ratings) > 0 {
		ratings := []string{}
		for _, rating := range fs.Ratings {
			ratings = append(ratings, fmt.Sprint(rating))
		}
		parts = append(parts, "rating:"+strings.Join(ratings, ","))
	}

	if fs.MultiSelect {
		parts = append(parts, "multi")
	}
	if fs.ShowHidden {
		hidden := "+hidden"
		if fs.HiddenOnly {
			hidden = "hidden only"
		}
		parts = append(parts, hidden)
	}

	arrow := "↓"
	if vw.Sort.Order == nt.Asc {
		arrow = "↑"
	}
	parts = append(parts, "sort:"+vw.Sort.By+arrow)

	return strings.Join(parts, " ")
}

// unexported

func join[T ~string](vals []T) string {

	strs := []string{}
	for _, val := range vals {
		strs = append(strs, string(val))
	}
	return strings.Join(strs, ",")
}
