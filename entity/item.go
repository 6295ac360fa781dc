package entity

import (
	"strconv"
	"strings"
)

// All is the sentinel selecting every type or every status.
const All = "All"

// Type is the kind of media an item tracks.
type Type string

const (
	TypeAll    Type = All
	TypeAnime  Type = "Anime"
	TypeManga  Type = "Manga"
	TypeBook   Type = "Book"
	TypeMovie  Type = "Movie"
	TypeSeries Type = "Series"
)

// Types lists the concrete types in display order.
var Types = []Type{TypeAnime, TypeManga, TypeBook, TypeMovie, TypeSeries}

// Status is where an item stands in the owner's queue.
type Status string

const (
	StatusAll          Status = All
	StatusPlanning     Status = "Planning"
	StatusInProgress   Status = "Reading/Watching"
	StatusDropped      Status = "Dropped"
	StatusOnHold       Status = "On Hold"
	StatusAnticipating Status = "Anticipating"
	StatusCompleted    Status = "Completed"
)

// Statuses lists the concrete statuses in display order.
var Statuses = []Status{
	StatusPlanning,
	StatusInProgress,
	StatusDropped,
	StatusOnHold,
	StatusAnticipating,
	StatusCompleted,
}

const (
	// RatingAny clears the rating selection.
	RatingAny = 0
	// MaxRating is the top of the rating scale.
	MaxRating = 5
)

// RatingLabels name the ratings the library has used historically.
var RatingLabels = map[int]string{1: "BAD", 2: "OK", 3: "GOOD", 4: "MASTERPIECE"}

// Valid reports whether t is a concrete type.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Valid reports whether s is a concrete status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Item is one library entry in its canonical shape.
// Zero values stand in for absent fields; Rating 0 means unrated.
type Item struct {
	Id              string   `json:"id"`
	Type            Type     `json:"type"`
	Status          Status   `json:"status"`
	Rating          int      `json:"rating"`
	Title           string   `json:"title"`
	AlternateTitles []string `json:"alternateTitles"`
	Universe        string   `json:"universe"`
	Series          string   `json:"series"`
	SeriesNumber    string   `json:"seriesNumber"`
	Authors         []string `json:"authors"`
	Tags            []string `json:"tags"`
	Abbreviations   []string `json:"abbreviations"`
	IsHidden        bool     `json:"isHidden"`

	Progress    string `json:"progress"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	Review      string `json:"review"`
	CoverUrl    string `json:"coverUrl"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Field returns the string form of the named field, "" when unknown or absent.
// Names follow the library's json keys.
func (item Item) Field(name string) string {

	switch name {
	case "id":
		return item.Id
	case "type":
		return string(item.Type)
	case "status":
		return string(item.Status)
	case "rating":
		if item.Rating == 0 {
			return ""
		}
		return strconv.Itoa(item.Rating)
	case "title":
		return item.Title
	case "alternateTitles":
		return strings.Join(item.AlternateTitles, ",")
	case "universe":
		return item.Universe
	case "series":
		return item.Series
	case "seriesNumber":
		return item.SeriesNumber
	case "authors", "author":
		return strings.Join(item.Authors, ",")
	case "tags":
		return strings.Join(item.Tags, ",")
	case "abbreviations":
		return strings.Join(item.Abbreviations, ",")
	case "isHidden":
		return strconv.FormatBool(item.IsHidden)
	case "progress":
		return item.Progress
	case "description":
		return item.Description
	case "notes":
		return item.Notes
	case "review":
		return item.Review
	case "coverUrl":
		return item.CoverUrl
	case "createdAt":
		return item.CreatedAt
	case "updatedAt":
		return item.UpdatedAt
	}
	return ""
}
