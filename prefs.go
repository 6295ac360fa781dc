package upnext

import (
	"bytes"
	"os"

	"github.com/gofrs/flock"
	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "upnext/entity"
	"upnext/filter"
)

// Prefs are the view preferences kept between runs.
type Prefs struct {
	Columns []nt.Column    `yaml:"columns"`
	Sort    nt.SortSpec    `yaml:"sort"`
	Filter  nt.FilterState `yaml:"filter"`
}

// DefaultPrefs returns the preferences of a first run.
func DefaultPrefs() *Prefs {

	return &Prefs{
		Columns: append([]nt.Column{}, nt.DefaultColumns...),
		Sort:    nt.DefaultSort,
		Filter:  nt.NewFilterState(),
	}
}

// LoadPrefs reads preferences from path, defaults when it does not exist.
func LoadPrefs(path string) (prefs *Prefs, err error) {

	prefs = DefaultPrefs()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		err = nil
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read prefs from %s", path)
		return
	}

	err = yaml.Unmarshal(data, prefs)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal prefs from %s", path)
		return
	}

	if len(prefs.Columns) == 0 {
		prefs.Columns = append([]nt.Column{}, nt.DefaultColumns...)
	}
	filter.Normalize(&prefs.Filter)
	return
}

// Save writes preferences to path, holding a lock beside it while writing.
func (prefs *Prefs) Save(path string) (err error) {

	data, err := yaml.Marshal(prefs)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal prefs")
		return
	}

	lock := flock.New(path + ".lock")
	err = lock.Lock()
	if err != nil {
		err = errors.Wrapf(err, "failed to lock %s", path)
		return
	}
	defer lock.Unlock()

	err = atomic.WriteFile(path, bytes.NewReader(data))
	err = errors.Wrapf(err, "failed to write prefs to %s", path)
	return
}

// View returns the view configuration held by prefs.
func (prefs *Prefs) View() nt.View {

	vw := nt.NewView()
	vw.Filter = prefs.Filter
	vw.Sort = prefs.Sort
	return vw
}

// Capture copies the sort and filter of lib into prefs.
func (prefs *Prefs) Capture(lib *Library) {

	vw := lib.View()
	prefs.Sort = vw.Sort
	prefs.Filter = vw.Filter
}
