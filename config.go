package upnext

import (
	nt "upnext/entity"
)

const defaultCacheSize = 64

// Config is the upnext configuration file.
type Config struct {
	// Library is the path of the library export
	Library string `yaml:"library"`
	// Store is the item store, duck or memo
	Store string `yaml:"store"`
	// Prefs is the path of the view preference file
	Prefs string `yaml:"prefs"`
	// Log is the path of the log file
	Log string `yaml:"log"`
	// Settings are the library settings
	Settings nt.Settings `yaml:"settings"`
	// CacheSize is the number of parsed searches remembered
	CacheSize int `yaml:"cache_size,omitempty"`
}

// SampleConfig is written when no config file is present.
var SampleConfig = []byte(`# upnext config
library: library.json
store: duck
prefs: upnext-prefs.yaml
log: upnext.log
settings:
  disabled_types: []
  disabled_statuses: []
  # unrated_statuses are exempt from rating filters
  unrated_statuses:
    - Planning
    - Reading/Watching
cache_size: 64
`)

// unexported

func (cfg *Config) cacheSize() int {

	if cfg.CacheSize < 1 {
		return defaultCacheSize
	}
	return cfg.CacheSize
}
