package ingest

import "context"

// Fetcher pulls one source's raw job batch.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (Batch, error)
}

// SyncStatus is the last-run snapshot exposed over the API.
type SyncStatus struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastAdded int    `json:"last_added"`
	Running   bool   `json:"running"`
}
