package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Feed is one upstream source publishing job batches as JSON.
type Feed struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Sync struct {
		IntervalSeconds int `yaml:"interval_seconds" json:"interval_seconds"`
		CleanupDays     int `yaml:"cleanup_days" json:"cleanup_days"`
		EnrichBatch     int `yaml:"enrich_batch" json:"enrich_batch"`
	} `yaml:"sync" json:"sync"`

	Sources struct {
		// Export names the sources served to the front end.
		Export []string `yaml:"export" json:"export"`
		Feeds  []Feed   `yaml:"feeds" json:"feeds"`
	} `yaml:"sources" json:"sources"`

	Filters Filters `yaml:"filters" json:"filters"`

	Email struct {
		Enabled     bool   `yaml:"enabled" json:"enabled"`
		IMAPHost    string `yaml:"imap_host" json:"imap_host"`
		IMAPPort    int    `yaml:"imap_port" json:"imap_port"`
		Username    string `yaml:"username" json:"username"`
		Mailbox     string `yaml:"mailbox" json:"mailbox"`
		AlertFrom   string `yaml:"alert_from" json:"alert_from"`
		SourceName  string `yaml:"source_name" json:"source_name"`
		MaxMessages int    `yaml:"max_messages" json:"max_messages"`
	} `yaml:"email" json:"email"`

	Geo struct {
		StationCSV string `yaml:"station_csv" json:"station_csv"`
	} `yaml:"geo" json:"geo"`
}

// Filters is the ingest quality gate. Jobs from a strict source must
// contain one of RequiredAny and none of BlockedAny in title+summary.
type Filters struct {
	StrictSources []string `yaml:"strict_sources" json:"strict_sources"`
	RequiredAny   []string `yaml:"required_any" json:"required_any"`
	BlockedAny    []string `yaml:"blocked_any" json:"blocked_any"`
}

// StationCSVPath resolves geo.station_csv for loading. The file ships
// in the data dir next to the database, so a relative path is joined
// onto dataDir; absolute paths pass through.
func (c Config) StationCSVPath(dataDir string) string {
	p := c.Geo.StationCSV
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dataDir, p)
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
