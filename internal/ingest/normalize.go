package ingest

import (
	"strings"

	"reboot-engine/internal/domain"
	"reboot-engine/internal/geo"
)

// Normalizer reconciles inconsistent source fields into a canonical
// Job. With a StationIndex attached it additionally resolves locations
// that only mention a station name. Normalizing is idempotent.
type Normalizer struct {
	Stations *geo.StationIndex
}

func (n Normalizer) Normalize(r domain.RawJob) domain.Job {
	source := r.SiteName
	if source == "" {
		source = r.Source
	}

	link := r.Link
	if link == "" {
		link = r.URL
	}

	j := domain.Job{
		ID:         r.ID,
		Title:      r.Title,
		Company:    r.Company,
		Location:   r.Location,
		Prefecture: r.Prefecture,
		Salary:     r.Salary,
		Summary:    r.Summary,
		Link:       link,
		Source:     source,
		ImageURL:   r.ImageURL,
	}

	pref := geo.DetectPrefecture(j.Location)
	if pref == "" && n.Stations != nil {
		pref = n.Stations.Detect(j.Location)
	}
	if pref != "" {
		j.Prefecture = pref
		if !strings.Contains(j.Location, pref) {
			j.Location = pref + " " + j.Location
		}
	}

	return j
}

// NormalizeAll maps a batch, preserving order.
func (n Normalizer) NormalizeAll(raws []domain.RawJob) []domain.Job {
	out := make([]domain.Job, 0, len(raws))
	for _, r := range raws {
		out = append(out, n.Normalize(r))
	}
	return out
}
