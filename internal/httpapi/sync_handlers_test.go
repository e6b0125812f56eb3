package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reboot-engine/internal/config"
	"reboot-engine/internal/events"
	"reboot-engine/internal/ingest"
)

func newSyncHandler(run func() (int, error)) SyncHandler {
	var cfgVal atomic.Value
	cfgVal.Store(config.Config{})
	var status atomic.Value
	status.Store(ingest.SyncStatus{})

	return SyncHandler{
		CfgVal:     &cfgVal,
		SyncStatus: &status,
		Busy:       &atomic.Bool{},
		Hub:        events.NewHub(),
		RunSyncOnce: func(cfg config.Config, onNewJob func()) (int, error) {
			return run()
		},
	}
}

func runResponse(t *testing.T, h SyncHandler) (ok bool) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Run(rec, httptest.NewRequest(http.MethodPost, "/sync/run", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.OK
}

// Only one run may be in flight: a second trigger while the first is
// still working gets rejected instead of starting an overlapping sync.
func TestSyncRunRejectsOverlap(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls atomic.Int32
	h := newSyncHandler(func() (int, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return 1, nil
	})

	assert.True(t, runResponse(t, h))
	<-started

	// first run is blocked inside RunSyncOnce
	assert.False(t, runResponse(t, h))

	close(release)
	waitNotBusy(t, h.Busy)

	// flag released, a new run is accepted again
	assert.True(t, runResponse(t, h))
	waitNotBusy(t, h.Busy)
}

func TestSyncRunUpdatesStatus(t *testing.T) {
	h := newSyncHandler(func() (int, error) { return 3, nil })

	assert.True(t, runResponse(t, h))
	waitNotBusy(t, h.Busy)

	st := h.SyncStatus.Load().(ingest.SyncStatus)
	assert.False(t, st.Running)
	assert.Equal(t, 3, st.LastAdded)
	assert.Empty(t, st.LastError)
	assert.NotEmpty(t, st.LastOkAt)
}

func waitNotBusy(t *testing.T, b *atomic.Bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for b.Load() {
		if time.Now().After(deadline) {
			t.Fatal("sync never released the busy flag")
		}
		time.Sleep(time.Millisecond)
	}
}
