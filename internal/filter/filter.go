// Package filter composes the classification predicates into the final
// accept/reject decision over a job list.
package filter

import (
	"strings"

	"reboot-engine/internal/area"
	"reboot-engine/internal/classify"
	"reboot-engine/internal/domain"
)

// Criteria is one five-dimensional selection. Zero values select
// everything: empty Query, CategoryAll, area "all", no features,
// IndustryAll.
type Criteria struct {
	Query    string
	Category classify.Category
	AreaID   string
	Features []classify.Feature
	Industry classify.Industry
}

// normalized fills the "match all" defaults for zero-value fields.
func (c Criteria) normalized() Criteria {
	if c.Category == "" {
		c.Category = classify.CategoryAll
	}
	if c.AreaID == "" {
		c.AreaID = "all"
	}
	if c.Industry == "" {
		c.Industry = classify.IndustryAll
	}
	return c
}

// Matches evaluates the full conjunction for a single job.
func Matches(j domain.Job, c Criteria) bool {
	c = c.normalized()

	if !strings.Contains(strings.ToLower(j.Title), strings.ToLower(c.Query)) {
		return false
	}
	if c.Category != classify.CategoryAll && classify.Categorize(j.Title) != c.Category {
		return false
	}
	if !area.Match(j, c.AreaID) {
		return false
	}
	if !classify.MatchFeatures(j, c.Features) {
		return false
	}
	return classify.MatchIndustry(j, c.Industry)
}

// Apply returns the jobs accepted by the criteria, order preserved.
// Jobs are never mutated; classification is recomputed per call.
func Apply(jobs []domain.Job, c Criteria) []domain.Job {
	c = c.normalized()
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, c) {
			out = append(out, j)
		}
	}
	return out
}

// Group is one category bucket for display.
type Group struct {
	Category classify.Category `json:"category"`
	Count    int               `json:"count"`
	Jobs     []domain.Job      `json:"jobs"`
}

// GroupByCategory buckets jobs by their derived category, in category
// display order. Empty buckets are dropped; order within a bucket is
// the input order.
func GroupByCategory(jobs []domain.Job) []Group {
	byCat := make(map[classify.Category][]domain.Job)
	for _, j := range jobs {
		cat := classify.Categorize(j.Title)
		byCat[cat] = append(byCat[cat], j)
	}

	var out []Group
	for _, cat := range classify.Categories {
		if js := byCat[cat]; len(js) > 0 {
			out = append(out, Group{Category: cat, Count: len(js), Jobs: js})
		}
	}
	return out
}
