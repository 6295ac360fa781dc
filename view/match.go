// Package view derives the filtered, sorted listing of a library and the
// navigation position of items within it.
package view

import (
	"slices"
	"strings"

	nt "upnext/entity"
)

// Matcher decides whether an item belongs in a view.
type Matcher struct {
	settings nt.Settings
	filter   nt.FilterState
	query    nt.Query
	freeText string
}

// NewMatcher combines settings, filter state and a parsed query.
func NewMatcher(settings nt.Settings, filter nt.FilterState, qry nt.Query) Matcher {

	if settings.UnratedStatuses == nil {
		settings.UnratedStatuses = nt.DefaultUnratedStatuses
	}

	return Matcher{
		settings: settings,
		filter:   filter,
		query:    qry,
		freeText: strings.ToLower(qry.FreeText),
	}
}

// Accept reports whether item passes every rule of the view.
func (mt Matcher) Accept(item nt.Item) bool {

	if slices.Contains(mt.settings.DisabledTypes, item.Type) ||
		slices.Contains(mt.settings.DisabledStatuses, item.Status) {
		return false
	}

	if !slices.Contains(mt.filter.Types, nt.TypeAll) && !slices.Contains(mt.filter.Types, item.Type) {
		return false
	}
	if !slices.Contains(mt.filter.Statuses, nt.StatusAll) && !slices.Contains(mt.filter.Statuses, item.Status) {
		return false
	}

	if len(mt.filter.Ratings) > 0 &&
		!slices.Contains(mt.settings.UnratedStatuses, item.Status) &&
		!slices.Contains(mt.filter.Ratings, item.Rating) {
		return false
	}

	if !mt.visible(item) {
		return false
	}

	if mt.query.Empty() {
		return true
	}
	return mt.clauses(item) && mt.text(item)
}

// Filter returns the accepted items in their original order.
func (mt Matcher) Filter(items []nt.Item) []nt.Item {

	out := []nt.Item{}
	for _, item := range items {
		if mt.Accept(item) {
			out = append(out, item)
		}
	}
	return out
}

// unexported

func (mt Matcher) visible(item nt.Item) bool {

	if !mt.filter.ShowHidden {
		return !item.IsHidden
	}
	if mt.filter.HiddenOnly {
		return item.IsHidden
	}
	return true
}

func (mt Matcher) clauses(item nt.Item) bool {

	for key, value := range mt.query.Clauses {
		switch key {
		case nt.KeyType:
			if strings.ToLower(string(item.Type)) != value {
				return false
			}
		case nt.KeyUniverse:
			if !contains(item.Universe, value) {
				return false
			}
		case nt.KeySeries:
			if !contains(item.Series, value) {
				return false
			}
		case nt.KeyAuthor:
			if !containsAny(item.Authors, value) {
				return false
			}
		case nt.KeyTag:
			if !containsAny(item.Tags, value) {
				return false
			}
		}
	}
	return true
}

func (mt Matcher) text(item nt.Item) bool {

	if mt.freeText == "" {
		return true
	}

	return contains(item.Title, mt.freeText) ||
		containsAny(item.AlternateTitles, mt.freeText) ||
		contains(item.Universe, mt.freeText) ||
		containsAny(item.Abbreviations, mt.freeText) ||
		containsAny(item.Tags, mt.freeText)
}

// contains reports whether lowered is a substring of str, ignoring case.
func contains(str, lowered string) bool {
	return strings.Contains(strings.ToLower(str), lowered)
}

func containsAny(strs []string, lowered string) bool {

	for _, str := range strs {
		if contains(str, lowered) {
			return true
		}
	}
	return false
}
