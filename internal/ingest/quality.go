package ingest

import (
	"log"
	"strings"

	"reboot-engine/internal/config"
	"reboot-engine/internal/domain"
)

// ShouldKeep is the ingest quality gate. Sources on the strict list
// (generic search-engine feeds) must mention one of the required
// keywords and none of the blocked ones in title+summary; curated
// sources pass unconditionally.
func ShouldKeep(f config.Filters, r domain.RawJob) (keep bool, reason string) {
	source := r.SiteName
	if source == "" {
		source = r.Source
	}

	strict := false
	for _, s := range f.StrictSources {
		if s == source {
			strict = true
			break
		}
	}
	if !strict {
		return true, ""
	}

	text := r.Title + r.Summary
	text = strings.ReplaceAll(text, "\n", "")
	text = strings.ReplaceAll(text, " ", "")

	if len(f.RequiredAny) > 0 {
		hit := false
		for _, kw := range f.RequiredAny {
			if strings.Contains(text, kw) {
				hit = true
				break
			}
		}
		if !hit {
			return false, "no_required_keyword"
		}
	}

	for _, kw := range f.BlockedAny {
		if strings.Contains(text, kw) {
			return false, "blocked_keyword"
		}
	}

	return true, ""
}

// FilterBatch applies the gate to one source's batch before merging.
// Filtering must happen per source: dedup is last-wins on the link, so
// a strict-source duplicate dropped here leaves an earlier curated copy
// of the same job intact.
func FilterBatch(f config.Filters, b Batch) Batch {
	kept := make([]domain.RawJob, 0, len(b.Jobs))
	for _, r := range b.Jobs {
		if r.Source == "" {
			r.Source = b.Source
		}
		keep, why := ShouldKeep(f, r)
		if !keep {
			log.Printf("[%s] skipped (%s) title=%q", r.Source, why, r.Title)
			continue
		}
		kept = append(kept, r)
	}
	b.Jobs = kept
	return b
}
