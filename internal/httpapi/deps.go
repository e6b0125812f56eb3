package httpapi

import (
	"database/sql"
	"sync/atomic"

	"reboot-engine/internal/config"
	"reboot-engine/internal/events"
	"reboot-engine/internal/geo"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	// Atomic stores
	CfgVal     *atomic.Value // stores config.Config
	SyncStatus *atomic.Value // stores ingest.SyncStatus
	SyncBusy   *atomic.Bool  // guards overlapping sync runs

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	Stations *geo.StationIndex

	// Sync entrypoint (inject for testability)
	RunSyncOnce func(cfg config.Config, onNewJob func()) (added int, err error)
}
