package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is an item as stored in a library export, before normalization.
// Older exports carry a single author string and numbers where strings are
// expected, so scalar fields are decoded loosely.
type Record struct {
	Id              string   `json:"id"`
	Type            string   `json:"type"`
	Status          string   `json:"status"`
	Rating          Loose    `json:"rating"`
	Title           string   `json:"title"`
	AlternateTitles []string `json:"alternateTitles"`
	Universe        string   `json:"universe"`
	Series          string   `json:"series"`
	SeriesNumber    Loose    `json:"seriesNumber"`
	Authors         []string `json:"authors"`
	Author          string   `json:"author"`
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

// Item normalizes a record into the canonical item shape.
func (rec Record) Item() Item {

	authors := clean(rec.Authors)
	if len(authors) == 0 && strings.TrimSpace(rec.Author) != "" {
		authors = []string{strings.TrimSpace(rec.Author)}
	}

	status := Status(rec.Status)
	if status == "" {
		status = StatusPlanning
	}

	return Item{
		Id:              rec.Id,
		Type:            Type(rec.Type),
		Status:          status,
		Rating:          rec.Rating.rating(),
		Title:           rec.Title,
		AlternateTitles: clean(rec.AlternateTitles),
		Universe:        rec.Universe,
		Series:          rec.Series,
		SeriesNumber:    string(rec.SeriesNumber),
		Authors:         authors,
		Tags:            clean(rec.Tags),
		Abbreviations:   clean(rec.Abbreviations),
		IsHidden:        rec.IsHidden,
		Progress:        rec.Progress,
		Description:     rec.Description,
		Notes:           rec.Notes,
		Review:          rec.Review,
		CoverUrl:        rec.CoverUrl,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

// Loose is a scalar decoded from a json string, number, bool or null.
type Loose string

func (ls *Loose) UnmarshalJSON(data []byte) error {

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*ls = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		err := json.Unmarshal(data, &str)
		if err != nil {
			return err
		}
		*ls = Loose(str)
		return nil
	}

	*ls = Loose(data)
	return nil
}

// unexported

// rating reads a 1..MaxRating rating, anything else is unrated.
func (ls Loose) rating() int {

	val, err := strconv.ParseFloat(strings.TrimSpace(string(ls)), 64)
	if err != nil || math.IsNaN(val) {
		return 0
	}

	rating := int(val)
	if rating < 1 || rating > MaxRating {
		return 0
	}
	return rating
}

func clean(in []string) []string {

	var out []string
	for _, str := range in {
		str = strings.TrimSpace(str)
		if str == "" {
			continue
		}
		out = append(out, str)
	}
	return out
}
