package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	var cfg Config
	cfg.App.Port = 38571
	cfg.Sync.IntervalSeconds = 1800
	cfg.Sync.CleanupDays = 30
	cfg.Sources.Export = []string{"Infra", "ZeroOne"}
	cfg.Sources.Feeds = []Feed{{Name: "infra", URL: "http://feeds.local/infra.json"}}
	cfg.Filters.StrictSources = []string{"Indeed"}
	cfg.Filters.RequiredAny = []string{"未経験"}
	cfg.Filters.BlockedAny = []string{"経験者限定"}
	return cfg
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.App.Port = 0 },
			wantErr: "app.port",
		},
		{
			name:    "interval must be positive",
			mutate:  func(c *Config) { c.Sync.IntervalSeconds = 0 },
			wantErr: "interval_seconds",
		},
		{
			name:    "export must not be empty",
			mutate:  func(c *Config) { c.Sources.Export = nil },
			wantErr: "sources.export",
		},
		{
			name:    "feed needs a url",
			mutate:  func(c *Config) { c.Sources.Feeds[0].URL = " " },
			wantErr: "sources.feeds[0].url",
		},
		{
			name:    "empty required keyword",
			mutate:  func(c *Config) { c.Filters.RequiredAny = []string{""} },
			wantErr: "required_any[0]",
		},
		{
			name: "email enabled needs host",
			mutate: func(c *Config) {
				c.Email.Enabled = true
				c.Email.IMAPPort = 993
				c.Email.Username = "u"
				c.Email.Mailbox = "INBOX"
			},
			wantErr: "email.imap_host",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStationCSVPath(t *testing.T) {
	var cfg Config

	cfg.Geo.StationCSV = ""
	assert.Empty(t, cfg.StationCSVPath("/data"))

	// relative paths live in the data dir, next to the database
	cfg.Geo.StationCSV = "station20251211free.csv"
	assert.Equal(t, filepath.Join("/data", "station20251211free.csv"), cfg.StationCSVPath("/data"))

	abs := filepath.Join(t.TempDir(), "stations.csv")
	cfg.Geo.StationCSV = abs
	assert.Equal(t, abs, cfg.StationCSVPath("/data"))
}

func TestSaveAtomicAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := validConfig()
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	// second save keeps the previous file as .bak
	cfg.App.Port = 40000
	require.NoError(t, SaveAtomic(path, cfg))
	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err)

	got, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40000, got.App.Port)
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := validConfig()
	cfg.App.Port = -1
	assert.Error(t, SaveAtomic(path, cfg))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "invalid config must not be written")
}

func TestEnsureUserConfig(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "default.yml")
	require.NoError(t, os.WriteFile(defaultPath, []byte("app:\n  port: 1234\n"), 0o644))

	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), userPath)

	cfg, err := Load(userPath)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.App.Port)

	// user edits are not overwritten on the next run
	require.NoError(t, os.WriteFile(userPath, []byte("app:\n  port: 9999\n"), 0o644))
	again, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, userPath, again)

	cfg, err = Load(userPath)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.App.Port)
}
