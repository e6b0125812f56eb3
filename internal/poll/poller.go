package poll

import (
	"context"
	"database/sql"
	"log"
	"sync/atomic"
	"time"

	"reboot-engine/internal/config"
	"reboot-engine/internal/events"
	"reboot-engine/internal/geo"
	"reboot-engine/internal/ingest"
	"reboot-engine/internal/scheduler"
)

// StartPoller runs SyncOnce on the configured interval and keeps the
// shared status snapshot current. busy is shared with the manual-run
// endpoint; a tick that finds it held is skipped.
func StartPoller(ctx context.Context, db *sql.DB, cfgVal *atomic.Value, syncStatus *atomic.Value, busy *atomic.Bool, stations *geo.StationIndex, hub *events.Hub) {
	go func() {
		interval := 30 * time.Minute
		if cfgAny := cfgVal.Load(); cfgAny != nil {
			if secs := cfgAny.(config.Config).Sync.IntervalSeconds; secs > 0 {
				interval = time.Duration(secs) * time.Second
			}
		}

		scheduler.Every(ctx, interval, "sync", func(ctx context.Context) error {
			cfgAny := cfgVal.Load()
			if cfgAny == nil {
				return nil
			}
			cfg := cfgAny.(config.Config)

			if len(cfg.Sources.Feeds) == 0 && !cfg.Email.Enabled {
				return nil
			}

			if !busy.CompareAndSwap(false, true) {
				log.Printf("[sync] tick skipped, run in progress")
				return nil
			}
			defer busy.Store(false)

			setStatus(syncStatus, func(st *ingest.SyncStatus) {
				st.Running = true
				st.LastRunAt = time.Now().Format(time.RFC3339)
			})

			added, err := SyncOnce(db, cfg, stations, func() {
				hub.Publish(events.MakeEvent("", events.TypeJobCreated, 1, nil))
			})

			setStatus(syncStatus, func(st *ingest.SyncStatus) {
				st.Running = false
				st.LastAdded = added
				if err != nil {
					st.LastError = err.Error()
				} else {
					st.LastError = ""
					st.LastOkAt = time.Now().Format(time.RFC3339)
				}
			})

			if err != nil {
				log.Printf("[sync] error: %v", err)
			} else {
				log.Printf("[sync] ok added=%d", added)
				hub.Publish(events.MakeEvent("", events.TypeSyncFinished, 1, map[string]any{"added": added}))
			}
			return nil
		})
	}()
}

func setStatus(v *atomic.Value, mut func(*ingest.SyncStatus)) {
	st := ingest.SyncStatus{}
	if stAny := v.Load(); stAny != nil {
		st = stAny.(ingest.SyncStatus)
	}
	mut(&st)
	v.Store(st)
}
