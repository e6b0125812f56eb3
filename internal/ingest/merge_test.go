package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reboot-engine/internal/domain"
)

func TestSourceID(t *testing.T) {
	got := SourceID("https://example.com/jobs/1")
	assert.Len(t, got, 32)
	assert.Equal(t, got, SourceID("https://example.com/jobs/1"))
	assert.NotEqual(t, got, SourceID("https://example.com/jobs/2"))
}

func TestMerge(t *testing.T) {
	batches := []Batch{
		{Source: "Indeed", Jobs: []domain.RawJob{
			{Title: "A", Link: "https://x/1"},
			{Title: "no link, dropped"},
			{Title: "B", URL: "https://x/2"}, // link falls back to URL
		}},
		{Source: "Kyujinbox", Jobs: []domain.RawJob{
			{Title: "A v2", Link: "https://x/1", Source: "Wantedly"},
			{Title: "C", Link: "https://x/3"},
		}},
	}

	out := Merge(batches)
	assert.Len(t, out, 3)

	// duplicate keeps the first position with the last value
	assert.Equal(t, "A v2", out[0].Title)
	assert.Equal(t, "Wantedly", out[0].Source) // explicit source wins over batch label
	assert.Equal(t, "B", out[1].Title)
	assert.Equal(t, "Indeed", out[1].Source)
	assert.Equal(t, "C", out[2].Title)
	assert.Equal(t, "Kyujinbox", out[2].Source)

	for _, r := range out {
		link := r.Link
		if link == "" {
			link = r.URL
		}
		assert.Equal(t, SourceID(link), r.ID)
	}
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge(nil))
	assert.Empty(t, Merge([]Batch{{Source: "x"}}))
}
