package upnext

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/pkg/errors"

	nt "upnext/entity"
	"upnext/filter"
	"upnext/query"
	"upnext/view"
)

// Todo: reload the library file when it changes on disk, swapping via Replace

// Store specifies a backing item store.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Load a library file
	Load(ctx context.Context, path string) (err error)
	// Items returns the normalized items in file order
	Items(ctx context.Context) (items []nt.Item, err error)
	// Close releases the store
	Close() error
}

// Library is the controller for one view over an item snapshot.
// It is not safe for concurrent mutation, but the snapshot may be replaced
// from another goroutine while a listing is computed.
type Library struct {
	items    atomic.Pointer[[]nt.Item]
	view     nt.View
	settings nt.Settings
	parser   *query.Parser
	logger   nt.Logger
}

// New creates a library with an empty snapshot and the default view.
func (cfg *Config) New(lgr nt.Logger) (lib *Library, err error) {

	parser, err := query.NewParser(cfg.cacheSize())
	if err != nil {
		return
	}

	if lgr == nil {
		lgr = nt.NopLogger{}
	}

	lib = &Library{
		view:     nt.NewView(),
		settings: cfg.Settings,
		parser:   parser,
		logger:   lgr,
	}

	empty := []nt.Item{}
	lib.items.Store(&empty)
	return
}

// Replace swaps in a new snapshot of items.
func (lib *Library) Replace(ctx context.Context, items []nt.Item) {

	if items == nil {
		items = []nt.Item{}
	}
	lib.items.Store(&items)

	lib.logger.Info(ctx, "replaced library snapshot", "count", len(items))
}

// Load reads items from store and swaps them in.
func (lib *Library) Load(ctx context.Context, store Store) (err error) {

	items, err := store.Items(ctx)
	if err != nil {
		err = errors.Wrapf(err, "failed to get items from %s", store.Name())
		return
	}

	lib.Replace(ctx, items)
	return
}

// Items returns the current snapshot, which must not be modified.
func (lib *Library) Items() []nt.Item {
	return *lib.items.Load()
}

// Item returns the item with id from the snapshot.
func (lib *Library) Item(id string) (item nt.Item, ok bool) {

	for _, item = range lib.Items() {
		if item.Id == id {
			ok = true
			return
		}
	}
	item = nt.Item{}
	return
}

// FilteredSortedItems returns the snapshot filtered and sorted by the view.
func (lib *Library) FilteredSortedItems() []nt.Item {

	qry := lib.parser.Parse(lib.view.Search)
	mt := view.NewMatcher(lib.settings, lib.view.Filter, qry)

	return view.Apply(lib.Items(), mt, lib.view.Sort)
}

// PositionOf locates id in the current listing.
func (lib *Library) PositionOf(id string) nt.Position {
	return view.PositionOf(lib.FilteredSortedItems(), id)
}

// Neighbor returns the id step places from id in the current listing.
func (lib *Library) Neighbor(id string, step int) (string, bool) {
	return view.Neighbor(lib.FilteredSortedItems(), id, step)
}

// View returns a copy of the view configuration.
func (lib *Library) View() nt.View {

	vw := lib.view
	vw.Filter.Types = append([]nt.Type{}, vw.Filter.Types...)
	vw.Filter.Statuses = append([]nt.Status{}, vw.Filter.Statuses...)
	if vw.Filter.Ratings != nil {
		vw.Filter.Ratings = append([]int{}, vw.Filter.Ratings...)
	}
	return vw
}

// SetView replaces the view configuration, normalizing its filter and sort.
func (lib *Library) SetView(vw nt.View) {

	filter.Normalize(&vw.Filter)
	if !validSort(vw.Sort.By) {
		vw.Sort.By = nt.DefaultSort.By
	}
	if vw.Sort.Order != nt.Asc && vw.Sort.Order != nt.Desc {
		vw.Sort.Order = nt.DefaultSort.Order
	}
	lib.view = vw
}

// Settings returns the settings in effect.
func (lib *Library) Settings() nt.Settings {
	return lib.settings
}

// SetSettings replaces the settings, as when reloaded by the host.
func (lib *Library) SetSettings(settings nt.Settings) {
	lib.settings = settings
}

// SetFilterType toggles a type selection.
func (lib *Library) SetFilterType(typ nt.Type) {
	filter.ToggleType(&lib.view.Filter, typ)
}

// SetFilterStatus toggles a status selection.
func (lib *Library) SetFilterStatus(status nt.Status) {
	filter.ToggleStatus(&lib.view.Filter, status)
}

// SetFilterRating toggles a rating selection.
func (lib *Library) SetFilterRating(rating int) {
	filter.ToggleRating(&lib.view.Filter, rating)
}

// SetMultiSelect switches multi-select mode.
func (lib *Library) SetMultiSelect(enabled bool) {
	filter.SetMultiSelect(&lib.view.Filter, enabled)
}

// SetHiddenVisible shows or hides hidden items.
func (lib *Library) SetHiddenVisible(enabled bool) {
	filter.SetHiddenVisible(&lib.view.Filter, enabled)
}

// SetHiddenOnly restricts the listing to hidden items.
func (lib *Library) SetHiddenOnly(enabled bool) {
	filter.SetHiddenOnly(&lib.view.Filter, enabled)
}

// SetSortBy sorts by field, unknown fields are ignored.
func (lib *Library) SetSortBy(field string) {

	if !validSort(field) {
		return
	}
	lib.view.Sort.By = field
}

// SetSortOrder sets the sort direction, unknown orders are ignored.
func (lib *Library) SetSortOrder(order nt.SortOrder) {

	if order != nt.Asc && order != nt.Desc {
		return
	}
	lib.view.Sort.Order = order
}

// SetSearch sets the raw search string.
func (lib *Library) SetSearch(raw string) {
	lib.view.Search = raw
}

// Query returns the parsed search string.
func (lib *Library) Query() nt.Query {
	return lib.parser.Parse(lib.view.Search)
}

// SmartFilter appends key=value to the search string.
// Values the search grammar cannot express are skipped, reporting false.
func (lib *Library) SmartFilter(key, value string) (ok bool) {

	search, ok := query.AppendClause(lib.view.Search, key, value)
	if ok {
		lib.view.Search = search
	}
	return
}

// unexported

func validSort(field string) bool {
	return slices.Contains(nt.SortFields, field)
}
