package view

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	nt "upnext/entity"
)

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Comparator returns an ordering of items for sorting.
// Fields compare by their lower-cased string form, series additionally by the
// numeric value of the series number, and desc reverses both keys.
func Comparator(sorting nt.SortSpec) func(a, b nt.Item) int {

	sign := 1
	if sorting.Order == nt.Desc {
		sign = -1
	}

	if sorting.By == "series" {
		return func(a, b nt.Item) int {
			byName := strings.Compare(strings.ToLower(a.Series), strings.ToLower(b.Series))
			if byName != 0 {
				return sign * byName
			}
			return sign * cmp.Compare(SeriesNumber(a.SeriesNumber), SeriesNumber(b.SeriesNumber))
		}
	}

	return func(a, b nt.Item) int {
		return sign * strings.Compare(strings.ToLower(a.Field(sorting.By)), strings.ToLower(b.Field(sorting.By)))
	}
}

// Sort orders items in place, keeping the relative order of equal items.
func Sort(items []nt.Item, sorting nt.SortSpec) {
	slices.SortStableFunc(items, Comparator(sorting))
}

// SeriesNumber reads the leading number of a series number such as "2", "3.5"
// or "7 (omnibus)", zero when there is none.
func SeriesNumber(str string) float64 {

	match := leadingFloat.FindString(strings.TrimSpace(str))
	if match == "" {
		return 0
	}

	val, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return val
}
