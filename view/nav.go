package view

import (
	nt "upnext/entity"
)

// Apply filters and sorts items into a new slice.
func Apply(items []nt.Item, mt Matcher, sorting nt.SortSpec) []nt.Item {

	out := mt.Filter(items)
	Sort(out, sorting)
	return out
}

// PositionOf locates id in items.
func PositionOf(items []nt.Item, id string) nt.Position {

	for idx, item := range items {
		if item.Id == id {
			return nt.Position{
				Index:   idx,
				HasPrev: idx > 0,
				HasNext: idx < len(items)-1,
			}
		}
	}
	return nt.NoPosition
}

// Neighbor returns the id step places away from id, false when there is none.
func Neighbor(items []nt.Item, id string, step int) (string, bool) {

	pos := PositionOf(items, id)
	if pos.Index < 0 {
		return "", false
	}

	idx := pos.Index + step
	if idx < 0 || idx >= len(items) {
		return "", false
	}
	return items[idx].Id, true
}
