// Package domain holds the job records shared across the engine.
package domain

// RawJob is a record as a source delivers it. Feeds disagree on field
// names (link vs url, source vs site_name), so both variants are kept
// and reconciled during normalization.
type RawJob struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Company    string `json:"company,omitempty"`
	Location   string `json:"location,omitempty"`
	Salary     string `json:"salary,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Link       string `json:"link,omitempty"`
	URL        string `json:"url,omitempty"`
	Prefecture string `json:"prefecture,omitempty"`
	Source     string `json:"source,omitempty"`
	SiteName   string `json:"site_name,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
}

// Job is the canonical record served to clients: one link, one source
// label, location reconciled with its prefecture.
type Job struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Prefecture string `json:"prefecture"`
	Salary     string `json:"salary"`
	Summary    string `json:"summary"`
	Link       string `json:"link"`
	Source     string `json:"source"`
	ImageURL   string `json:"image_url"`
}
