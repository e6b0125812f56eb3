package ingest

import (
	"crypto/md5"
	"encoding/hex"

	"reboot-engine/internal/domain"
)

// Batch is one source's fetched records.
type Batch struct {
	Source string
	Jobs   []domain.RawJob
}

// SourceID derives the stable job id from the outbound link.
func SourceID(link string) string {
	sum := md5.Sum([]byte(link))
	return hex.EncodeToString(sum[:])
}

// Merge combines per-source batches: the batch's source label fills a
// missing source field, records without a link are dropped, duplicate
// links keep the position of the first occurrence with the value of the
// last, and each survivor gets id = md5(link).
func Merge(batches []Batch) []domain.RawJob {
	var order []string
	byLink := make(map[string]domain.RawJob)

	for _, b := range batches {
		for _, r := range b.Jobs {
			if r.Source == "" {
				r.Source = b.Source
			}
			link := r.Link
			if link == "" {
				link = r.URL
			}
			if link == "" {
				continue
			}
			if _, seen := byLink[link]; !seen {
				order = append(order, link)
			}
			byLink[link] = r
		}
	}

	out := make([]domain.RawJob, 0, len(order))
	for _, link := range order {
		r := byLink[link]
		r.ID = SourceID(link)
		out = append(out, r)
	}
	return out
}
