package httpapi

import (
	"net/http"

	"reboot-engine/internal/area"
	"reboot-engine/internal/classify"
)

// Meta serves the closed selection tables so the front end never
// hardcodes them.
func Meta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, struct {
		Categories []classify.Category `json:"categories"`
		Areas      []area.Node         `json:"areas"`
		Features   []classify.Feature  `json:"features"`
		Industries []classify.Industry `json:"industries"`
	}{
		Categories: classify.Categories,
		Areas:      area.Tree,
		Features:   classify.Features,
		Industries: classify.Industries,
	})
}
