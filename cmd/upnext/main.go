package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"upnext"
	nt "upnext/entity"
	"upnext/export"
	"upnext/store/duck"
	"upnext/store/memo"
	"upnext/util"
)

func main() {

	cfgPath := pflag.StringP("config", "c", "upnext.yaml", "config file, a sample is written when missing")
	library := pflag.StringP("library", "l", "", "library export to load, overrides config")
	storeName := pflag.StringP("store", "s", "", "item store, duck or memo, overrides config")
	search := pflag.String("search", "", "initial search, such as 'type=Book author=asimov'")
	exportPath := pflag.StringP("export", "e", "", "write the view to a .json, .csv or .xml file and exit")
	fields := pflag.StringSlice("fields", nil, "fields to export, comma separated")
	pflag.Parse()

	ctx := context.Background()

	err := util.SampleConfig(upnext.SampleConfig, *cfgPath)
	check(err)

	cfg := &upnext.Config{}
	err = util.LoadConfig(cfg, *cfgPath)
	check(err)

	if *library != "" {
		cfg.Library = *library
	}
	if *storeName != "" {
		cfg.Store = *storeName
	}

	logFile := util.OpenLog(cfg.Log, 0644)
	defer util.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile}

	store, err := newStore(cfg.Store, lgr)
	check(err)
	defer store.Close()

	err = store.Load(ctx, cfg.Library)
	check(err)

	lib, err := cfg.New(lgr)
	check(err)

	err = lib.Load(ctx, store)
	check(err)

	prefs, err := upnext.LoadPrefs(cfg.Prefs)
	check(err)

	lib.SetView(prefs.View())
	if *search != "" {
		lib.SetSearch(*search)
	}

	if *exportPath != "" {
		items := lib.FilteredSortedItems()
		err = export.WriteFile(*exportPath, items, export.FormatOf(*exportPath), *fields)
		check(err)

		lgr.Info(ctx, "exported library view", "path", *exportPath, "count", len(items))
		return
	}

	model := upnext.NewModel(ctx, lib, prefs, lgr)
	model.PrefsPath = cfg.Prefs
	model.Source = store.Name()

	_, err = tea.NewProgram(model).Run()
	if err != nil {
		lgr.Error(ctx, "tui exited with error", err)
	}
	check(err)
}

func newStore(name string, lgr nt.Logger) (store upnext.Store, err error) {

	switch name {
	case "", "duck":
		store, err = duck.New(lgr)
	case "memo":
		store = memo.New(lgr)
	default:
		err = errors.Errorf("unknown store %q, want duck or memo", name)
	}
	return
}

func check(err error) {

	if err != nil {
		fmt.Fprintf(os.Stderr, "upnext: %v\n", err)
		os.Exit(1)
	}
}
