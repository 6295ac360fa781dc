package entity

// FilterState holds the active selections of the library filter bar.
// Types and Statuses are never empty, All stands for no constraint.
// An empty Ratings is likewise no constraint.
type FilterState struct {
	Types       []Type   `yaml:"types"`
	Statuses    []Status `yaml:"statuses"`
	Ratings     []int    `yaml:"ratings,omitempty"`
	MultiSelect bool     `yaml:"multi_select,omitempty"`
	ShowHidden  bool     `yaml:"show_hidden,omitempty"`
	HiddenOnly  bool     `yaml:"hidden_only,omitempty"`
}

// NewFilterState returns a filter state selecting everything visible.
func NewFilterState() FilterState {
	return FilterState{
		Types:    []Type{TypeAll},
		Statuses: []Status{StatusAll},
	}
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// SortSpec names the field and direction the view is sorted by.
type SortSpec struct {
	By    string    `yaml:"by"`
	Order SortOrder `yaml:"order"`
}

// DefaultSort matches the library's historical listing, most recently updated first.
var DefaultSort = SortSpec{By: "updatedAt", Order: Desc}

// SortFields are the fields offered for sorting, in cycling order.
var SortFields = []string{"updatedAt", "title", "series", "rating", "universe", "type", "status", "createdAt"}

// View is the configuration of one library view.
type View struct {
	Filter FilterState
	Sort   SortSpec
	Search string
}

// NewView returns a view with default filters and sort.
func NewView() View {
	return View{
		Filter: NewFilterState(),
		Sort:   DefaultSort,
	}
}

// Clause keys recognized in a search string.
const (
	KeyType     = "type"
	KeyUniverse = "universe"
	KeySeries   = "series"
	KeyAuthor   = "author"
	KeyTag      = "tag"
)

// Query is a parsed search string.
// Clauses map a clause key to its lower-cased value.
type Query struct {
	FreeText string
	Clauses  map[string]string
}

// Empty reports whether the query constrains nothing.
func (qry Query) Empty() bool {
	return qry.FreeText == "" && len(qry.Clauses) == 0
}

// Settings are process-wide library settings the view reads but never writes.
type Settings struct {
	DisabledTypes    []Type   `yaml:"disabled_types,omitempty"`
	DisabledStatuses []Status `yaml:"disabled_statuses,omitempty"`
	UnratedStatuses  []Status `yaml:"unrated_statuses,omitempty"`
}

// DefaultUnratedStatuses are exempt from rating filters unless configured otherwise.
var DefaultUnratedStatuses = []Status{StatusPlanning, StatusInProgress}

// Position locates an item within a view.
type Position struct {
	Index   int
	HasPrev bool
	HasNext bool
}

// NoPosition is returned for ids absent from a view.
var NoPosition = Position{Index: -1}
