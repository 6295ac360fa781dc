package entity

// Column configures one table column of the library view.
type Column struct {
	Field  string `yaml:"field"`
	Width  int    `yaml:"width"`
	Format string `yaml:"format,omitempty"` // "stars" renders a rating as ★
	Hidden bool   `yaml:"hidden,omitempty"`
}

// DefaultColumns are shown when no preferences have been saved yet.
var DefaultColumns = []Column{
	{Field: "title", Width: 36},
	{Field: "type", Width: 7},
	{Field: "status", Width: 16},
	{Field: "rating", Width: 5, Format: "stars"},
	{Field: "series", Width: 20},
	{Field: "seriesNumber", Width: 4},
	{Field: "universe", Width: 16},
}
