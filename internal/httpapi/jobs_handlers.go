package httpapi

import (
	"database/sql"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"reboot-engine/internal/classify"
	"reboot-engine/internal/config"
	"reboot-engine/internal/domain"
	"reboot-engine/internal/filter"
	"reboot-engine/internal/geo"
	"reboot-engine/internal/ingest"
	"reboot-engine/internal/store"
)

const serveLimit = 2000

type JobsHandler struct {
	DB       *sql.DB
	CfgVal   *atomic.Value
	Stations *geo.StationIndex
}

// JobView is a job plus its derived category.
type JobView struct {
	domain.Job
	Category classify.Category `json:"category"`
}

// GroupView buckets JobViews by category for the listing page.
type GroupView struct {
	Category classify.Category `json:"category"`
	Count    int               `json:"count"`
	Jobs     []JobView         `json:"jobs"`
}

type listResponse struct {
	Total  int         `json:"total"`
	Jobs   []JobView   `json:"jobs"`
	Groups []GroupView `json:"groups"`
}

// List serves the filtered job list. A failed bulk read surfaces as an
// empty result set, never a 5xx: the core must not crash the page.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)

	raws, err := store.ListServable(r.Context(), h.DB, cfg.Sources.Export, serveLimit)
	if err != nil {
		log.Printf("[jobs] list error: %v", err)
		writeJSON(w, listResponse{Jobs: []JobView{}, Groups: []GroupView{}})
		return
	}

	normalizer := ingest.Normalizer{Stations: h.Stations}
	jobs := normalizer.NormalizeAll(raws)

	crit := criteriaFromQuery(r.URL.Query())
	filtered := filter.Apply(jobs, crit)

	resp := listResponse{
		Total: len(filtered),
		Jobs:  make([]JobView, 0, len(filtered)),
	}
	for _, j := range filtered {
		resp.Jobs = append(resp.Jobs, JobView{Job: j, Category: classify.Categorize(j.Title)})
	}
	for _, g := range filter.GroupByCategory(filtered) {
		gv := GroupView{Category: g.Category, Count: g.Count, Jobs: make([]JobView, 0, g.Count)}
		for _, j := range g.Jobs {
			gv.Jobs = append(gv.Jobs, JobView{Job: j, Category: g.Category})
		}
		resp.Groups = append(resp.Groups, gv)
	}
	if resp.Groups == nil {
		resp.Groups = []GroupView{}
	}

	writeJSON(w, resp)
}

// GetByPath serves one job with its category and the canned
// recommendation. Expects /jobs/{id}.
func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	raw, found, err := store.GetJob(r.Context(), h.DB, id)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if !found {
		WriteError(w, r, http.StatusNotFound, "not_found", "job not found")
		return
	}

	normalizer := ingest.Normalizer{Stations: h.Stations}
	j := normalizer.Normalize(raw)
	cat := classify.Categorize(j.Title)

	writeJSON(w, struct {
		JobView
		Recommendation string `json:"recommendation"`
	}{
		JobView:        JobView{Job: j, Category: cat},
		Recommendation: classify.Recommendation(cat),
	})
}

// criteriaFromQuery maps ?q=&category=&area=&features=a,b&industry= to
// filter criteria. Missing params select everything.
func criteriaFromQuery(q url.Values) filter.Criteria {
	crit := filter.Criteria{
		Query:    q.Get("q"),
		Category: classify.Category(q.Get("category")),
		AreaID:   q.Get("area"),
		Industry: classify.Industry(q.Get("industry")),
	}
	if raw := q.Get("features"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				crit.Features = append(crit.Features, classify.Feature(f))
			}
		}
	}
	return crit
}
