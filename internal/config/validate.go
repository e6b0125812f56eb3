package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.Sync.IntervalSeconds <= 0 {
		errs = append(errs, "sync.interval_seconds must be > 0")
	}
	if cfg.Sync.CleanupDays < 0 {
		errs = append(errs, "sync.cleanup_days must be >= 0")
	}

	if len(cfg.Sources.Export) == 0 {
		errs = append(errs, "sources.export must name at least one source")
	}
	for i, f := range cfg.Sources.Feeds {
		if strings.TrimSpace(f.Name) == "" {
			errs = append(errs, fmt.Sprintf("sources.feeds[%d].name is required", i))
		}
		if strings.TrimSpace(f.URL) == "" {
			errs = append(errs, fmt.Sprintf("sources.feeds[%d].url is required", i))
		}
	}

	for i, kw := range cfg.Filters.RequiredAny {
		if kw == "" {
			errs = append(errs, fmt.Sprintf("filters.required_any[%d] cannot be empty", i))
		}
	}
	for i, kw := range cfg.Filters.BlockedAny {
		if kw == "" {
			errs = append(errs, fmt.Sprintf("filters.blocked_any[%d] cannot be empty", i))
		}
	}

	if cfg.Email.Enabled {
		if strings.TrimSpace(cfg.Email.IMAPHost) == "" {
			errs = append(errs, "email.imap_host is required when email.enabled=true")
		}
		if cfg.Email.IMAPPort == 0 {
			errs = append(errs, "email.imap_port is required when email.enabled=true")
		}
		if strings.TrimSpace(cfg.Email.Username) == "" {
			errs = append(errs, "email.username is required when email.enabled=true")
		}
		if strings.TrimSpace(cfg.Email.Mailbox) == "" {
			errs = append(errs, "email.mailbox is required when email.enabled=true")
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// SaveAtomic validates, then writes via tmp+rename, keeping the
// previous file as .bak. A file lock serializes concurrent savers
// (the HTTP PUT handler and the poller can race otherwise).
func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
