// Package enrich fills in summaries and images for jobs whose feed only
// carried the listing row, by parsing the job page itself.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"reboot-engine/internal/fetch"
)

const (
	summaryMaxChars = 600
	userAgent       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Details is what a job page can contribute.
type Details struct {
	Summary  string
	ImageURL string
}

type Enricher struct {
	hc      *http.Client
	limiter *fetch.HostLimiter
}

func New(limiter *fetch.HostLimiter) *Enricher {
	return &Enricher{
		hc:      &http.Client{Timeout: 30 * time.Second},
		limiter: limiter,
	}
}

// FetchDetails downloads and parses one job page.
func (e *Enricher) FetchDetails(ctx context.Context, link string) (Details, error) {
	if err := e.limiter.WaitURL(ctx, link); err != nil {
		return Details{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return Details{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := e.hc.Do(req)
	if err != nil {
		return Details{}, fmt.Errorf("enrich get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return Details{}, fmt.Errorf("enrich status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return Details{}, fmt.Errorf("enrich parse: %w", err)
	}
	return ParseDetails(doc), nil
}

// ParseDetails prefers the JSON-LD job posting description, falling
// back to known description containers. og:image supplies the image.
func ParseDetails(doc *goquery.Document) Details {
	var d Details

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if desc := descriptionFromJSONLD(s.Text()); desc != "" {
			d.Summary = desc
			return false
		}
		return true
	})

	if img, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok && img != "" {
		d.ImageURL = img
	}

	if d.Summary == "" {
		sel := doc.Find(".job-description").First()
		if sel.Length() == 0 {
			sel = doc.Find(".post-content").First()
		}
		if sel.Length() > 0 {
			d.Summary = clipRunes(strings.TrimSpace(sel.Text()), summaryMaxChars)
		}
	}

	return d
}

func descriptionFromJSONLD(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	var node map[string]any
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		var list []map[string]any
		if err := json.Unmarshal([]byte(raw), &list); err != nil || len(list) == 0 {
			return ""
		}
		node = list[0]
	}

	desc, _ := node["description"].(string)
	if desc == "" {
		return ""
	}
	return htmlToLines(desc)
}

// htmlToLines normalizes <br> variants to newlines, strips the
// remaining tags and collapses blank lines, mirroring how the job
// boards encode descriptions.
func htmlToLines(s string) string {
	for _, br := range []string{"<br>", "<br />", "<br/>"} {
		s = strings.ReplaceAll(s, br, "\n")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func clipRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
