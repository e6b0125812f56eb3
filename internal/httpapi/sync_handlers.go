package httpapi

import (
	"net/http"
	"sync/atomic"
	"time"

	"reboot-engine/internal/config"
	"reboot-engine/internal/events"
	"reboot-engine/internal/ingest"
)

type SyncHandler struct {
	CfgVal      *atomic.Value // config.Config
	SyncStatus  *atomic.Value // ingest.SyncStatus
	Busy        *atomic.Bool  // shared with the poller
	Hub         *events.Hub
	RunSyncOnce func(cfg config.Config, onNewJob func()) (added int, err error)
}

func (h SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.SyncStatus.Load().(ingest.SyncStatus)
	writeJSON(w, st)
}

func (h SyncHandler) Run(w http.ResponseWriter, r *http.Request) {
	// CAS so two concurrent POSTs (or a poller tick) cannot both start
	if !h.Busy.CompareAndSwap(false, true) {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	st := h.SyncStatus.Load().(ingest.SyncStatus)
	h.SyncStatus.Store(ingest.SyncStatus{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastOkAt:  st.LastOkAt,
	})

	go func() {
		defer h.Busy.Store(false)

		cfg := h.CfgVal.Load().(config.Config)
		added, err := h.RunSyncOnce(cfg, func() {
			h.Hub.Publish(events.MakeEvent("", events.TypeJobCreated, 1, nil))
		})

		now := time.Now().Format(time.RFC3339)
		next := h.SyncStatus.Load().(ingest.SyncStatus)
		next.Running = false
		next.LastRunAt = now
		next.LastAdded = added
		if err != nil {
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
		}
		h.SyncStatus.Store(next)
	}()

	writeJSON(w, map[string]any{"ok": true})
}
