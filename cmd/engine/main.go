package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"reboot-engine/internal/config"
	"reboot-engine/internal/events"
	"reboot-engine/internal/geo"
	"reboot-engine/internal/httpapi"
	"reboot-engine/internal/ingest"
	"reboot-engine/internal/poll"
	"reboot-engine/internal/store"
)

func main() {
	// Engine data dir: use env if provided (the desktop shell passes one),
	// else local folder.
	dataDir := os.Getenv("REBOOT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir. A second instance would race the sqlite
	// file and double-fetch the feeds.
	instanceLock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := instanceLock.TryLock()
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine is already running for %s", dataDir)
	}
	defer instanceLock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config invalid (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "reboot.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	// Station index is optional. Without it prefecture detection falls
	// back to plain location text matching.
	var stations *geo.StationIndex
	if csvPath := cfg.StationCSVPath(dataDir); csvPath != "" {
		stations, err = geo.LoadStationIndex(csvPath)
		if err != nil {
			log.Printf("[geo] station csv unavailable (%s): %v", csvPath, err)
			stations = nil
		} else {
			log.Printf("[geo] station index loaded (%d stations)", stations.Len())
		}
	}

	hub := events.NewHub()

	var syncStatus atomic.Value
	syncStatus.Store(ingest.SyncStatus{})
	var syncBusy atomic.Bool

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poll.StartPoller(ctx, db.Pool, &cfgVal, &syncStatus, &syncBusy, stations, hub)

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		CfgVal:      &cfgVal,
		SyncStatus:  &syncStatus,
		SyncBusy:    &syncBusy,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Stations:    stations,
		RunSyncOnce: func(c config.Config, onNewJob func()) (int, error) {
			return poll.SyncOnce(db.Pool, c, stations, onNewJob)
		},
	})

	// Bind to a predictable local port (simpler for the UI).
	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.RequestID,
			httpapi.Recover,
			httpapi.AccessLog,
			httpapi.Cors,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
