package poll

import (
	"context"
	"database/sql"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"reboot-engine/internal/config"
	"reboot-engine/internal/enrich"
	"reboot-engine/internal/fetch"
	"reboot-engine/internal/geo"
	"reboot-engine/internal/ingest"
	email_ingest "reboot-engine/internal/ingest/email"
	"reboot-engine/internal/ingest/feed"
	"reboot-engine/internal/store"
)

// SyncOnce runs one full ingest cycle: fan out over every enabled
// source, gate each batch, merge/dedup, insert new records, drop
// expired ones, then enrich a bounded slice of jobs still missing a
// summary.
func SyncOnce(db *sql.DB, cfg config.Config, stations *geo.StationIndex, onNewJob func()) (added int, err error) {
	parent := context.Background()

	limiter := fetch.NewHostLimiter(1.0, 2)

	var fetchers []ingest.Fetcher
	for _, f := range cfg.Sources.Feeds {
		fetchers = append(fetchers, feed.New(f, limiter))
	}
	if cfg.Email.Enabled {
		fetchers = append(fetchers, &email_ingest.Fetcher{Cfg: cfg})
	}

	var g errgroup.Group
	results := make(chan ingest.Batch, len(fetchers))

	for _, f := range fetchers {
		f := f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(parent, 2*time.Minute)
			defer cancel()

			log.Printf("[%s] Running...", f.Name())
			batch, err := f.Fetch(fctx)
			if err != nil {
				log.Printf("[source:%s] error: %v", f.Name(), err)
				return nil
			}
			results <- batch
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	// The gate runs per source, before dedup: a strict-source duplicate
	// must not displace a curated copy of the same link.
	var batches []ingest.Batch
	for b := range results {
		got := len(b.Jobs)
		b = ingest.FilterBatch(cfg.Filters, b)
		log.Printf("[sync] got source=%s jobs=%d kept=%d", b.Source, got, len(b.Jobs))
		batches = append(batches, b)
	}
	merged := ingest.Merge(batches)

	insertCtx, cancel := context.WithTimeout(parent, 2*time.Minute)
	defer cancel()

	normalizer := ingest.Normalizer{Stations: stations}

	for _, r := range merged {
		// station-aware prefecture enrichment happens at ingest so the
		// stored location already carries the prefecture prefix
		j := normalizer.Normalize(r)
		r.Location = j.Location
		r.Prefecture = j.Prefecture

		ok, ierr := store.InsertJobIgnore(insertCtx, db, r)
		if ierr != nil {
			log.Printf("[sync:%s] insert error: %v title=%q", r.Source, ierr, r.Title)
			continue
		}
		if !ok {
			continue
		}

		added++
		if onNewJob != nil {
			onNewJob()
		}
	}

	if cfg.Sync.CleanupDays > 0 {
		if n, cerr := store.CleanupOldJobs(db, cfg.Sync.CleanupDays); cerr != nil {
			log.Printf("[sync] cleanup error: %v", cerr)
		} else if n > 0 {
			log.Printf("[sync] cleanup deleted=%d", n)
		}
	}

	enrichMissing(parent, db, cfg, limiter)

	return added, nil
}

// enrichMissing fills summaries/images for a bounded batch of exported
// jobs that only have a listing row so far. Failures are logged and
// skipped; the next cycle retries.
func enrichMissing(parent context.Context, db *sql.DB, cfg config.Config, limiter *fetch.HostLimiter) {
	batchSize := cfg.Sync.EnrichBatch
	if batchSize <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(parent, 5*time.Minute)
	defer cancel()

	targets, err := store.ListMissingSummary(ctx, db, cfg.Sources.Export, batchSize)
	if err != nil {
		log.Printf("[enrich] list error: %v", err)
		return
	}
	if len(targets) == 0 {
		return
	}

	e := enrich.New(limiter)
	updated := 0
	for _, r := range targets {
		d, err := e.FetchDetails(ctx, r.Link)
		if err != nil {
			log.Printf("[enrich] %s: %v", r.Link, err)
			continue
		}
		if d.Summary == "" && d.ImageURL == "" {
			continue
		}
		if err := store.UpdateDetails(ctx, db, r.ID, d.Summary, d.ImageURL); err != nil {
			log.Printf("[enrich] update %s: %v", r.ID, err)
			continue
		}
		updated++
	}
	log.Printf("[enrich] targets=%d updated=%d", len(targets), updated)
}
