// Package filter mutates a library FilterState, enforcing its selection rules.
//
// In multi-select mode a selection that becomes empty, or grows to cover every
// concrete value, collapses back to All (or to no rating constraint).
package filter

import (
	"slices"

	nt "upnext/entity"
)

// ratingCollapse is the number of selected ratings treated as "any rating".
const ratingCollapse = 4

// ToggleType selects or deselects a type.
func ToggleType(fs *nt.FilterState, typ nt.Type) {

	if typ != nt.TypeAll && !typ.Valid() {
		return
	}
	fs.Types = toggle(fs.Types, typ, nt.TypeAll, fs.MultiSelect, len(nt.Types))
}

// ToggleStatus selects or deselects a status.
// Ratings are cleared since the rating scale reads differently per status.
func ToggleStatus(fs *nt.FilterState, status nt.Status) {

	if status != nt.StatusAll && !status.Valid() {
		return
	}
	fs.Statuses = toggle(fs.Statuses, status, nt.StatusAll, fs.MultiSelect, len(nt.Statuses))
	fs.Ratings = nil
}

// ToggleRating selects or deselects a rating, nt.RatingAny clears the selection.
func ToggleRating(fs *nt.FilterState, rating int) {

	if rating == nt.RatingAny {
		fs.Ratings = nil
		return
	}
	if rating < 1 || rating > nt.MaxRating {
		return
	}

	if fs.MultiSelect {
		ratings := slices.Clone(fs.Ratings)
		idx := slices.Index(ratings, rating)
		if idx >= 0 {
			ratings = slices.Delete(ratings, idx, idx+1)
		} else {
			ratings = append(ratings, rating)
		}

		if len(ratings) == 0 || len(ratings) >= ratingCollapse {
			ratings = nil
		}
		fs.Ratings = ratings
		return
	}

	if len(fs.Ratings) == 1 && fs.Ratings[0] == rating {
		fs.Ratings = nil
		return
	}
	fs.Ratings = []int{rating}
}

// SetMultiSelect switches selection mode.
// Leaving multi-select collapses wider selections to All, any mode change clears ratings.
func SetMultiSelect(fs *nt.FilterState, enabled bool) {

	if fs.MultiSelect == enabled {
		return
	}

	if !enabled {
		if len(fs.Types) > 1 {
			fs.Types = []nt.Type{nt.TypeAll}
		}
		if len(fs.Statuses) > 1 {
			fs.Statuses = []nt.Status{nt.StatusAll}
		}
	}

	fs.Ratings = nil
	fs.MultiSelect = enabled
}

// SetHiddenVisible shows or hides hidden items, hiding also drops hidden-only.
func SetHiddenVisible(fs *nt.FilterState, enabled bool) {

	fs.ShowHidden = enabled
	if !enabled {
		fs.HiddenOnly = false
	}
}

// SetHiddenOnly restricts the view to hidden items.
// It has no effect on matching unless hidden items are shown.
func SetHiddenOnly(fs *nt.FilterState, enabled bool) {
	fs.HiddenOnly = enabled
}

// Normalize repairs a filter state read from outside, such as saved preferences.
func Normalize(fs *nt.FilterState) {

	fs.Types = normalizeSet(fs.Types, nt.TypeAll, nt.Type.Valid, fs.MultiSelect, len(nt.Types))
	fs.Statuses = normalizeSet(fs.Statuses, nt.StatusAll, nt.Status.Valid, fs.MultiSelect, len(nt.Statuses))

	ratings := []int{}
	for _, rating := range fs.Ratings {
		if rating < 1 || rating > nt.MaxRating || slices.Contains(ratings, rating) {
			continue
		}
		ratings = append(ratings, rating)
	}
	if len(ratings) == 0 || len(ratings) >= ratingCollapse || (!fs.MultiSelect && len(ratings) > 1) {
		ratings = nil
	}
	fs.Ratings = ratings

	if !fs.ShowHidden {
		fs.HiddenOnly = false
	}
}

// unexported

func toggle[T ~string](set []T, val, all T, multi bool, total int) []T {

	if !multi || val == all {
		return []T{val}
	}

	set = slices.DeleteFunc(slices.Clone(set), func(have T) bool { return have == all })

	idx := slices.Index(set, val)
	if idx >= 0 {
		set = slices.Delete(set, idx, idx+1)
	} else {
		set = append(set, val)
	}

	if len(set) == 0 || len(set) >= total {
		return []T{all}
	}
	return set
}

func normalizeSet[T ~string](set []T, all T, valid func(T) bool, multi bool, total int) []T {

	out := []T{}
	for _, val := range set {
		if val == all {
			return []T{all}
		}
		if !valid(val) || slices.Contains(out, val) {
			continue
		}
		out = append(out, val)
	}

	if len(out) == 0 || len(out) >= total || (!multi && len(out) > 1) {
		return []T{all}
	}
	return out
}
