package email

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"reboot-engine/internal/domain"
)

// htmlBody extracts the largest text/html part of an RFC822 message,
// walking nested multiparts and decoding base64/quoted-printable.
func htmlBody(raw []byte) string {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	body, _ := io.ReadAll(io.LimitReader(msg.Body, 6<<20))
	return htmlPart(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), body)
}

func htmlPart(contentType, cte string, body []byte) string {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	mediaType = strings.ToLower(mediaType)

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return ""
		}
		mr := multipart.NewReader(bytes.NewReader(body), boundary)
		var best string
		for {
			p, err := mr.NextPart()
			if err != nil {
				break
			}
			b, _ := io.ReadAll(io.LimitReader(p, 6<<20))
			if h := htmlPart(p.Header.Get("Content-Type"), p.Header.Get("Content-Transfer-Encoding"), b); len(h) > len(best) {
				best = h
			}
		}
		return best
	}

	if !strings.HasPrefix(mediaType, "text/html") {
		return ""
	}
	return string(decodeTransferEncoding(body, strings.ToLower(strings.TrimSpace(cte))))
}

func decodeTransferEncoding(b []byte, cte string) []byte {
	switch cte {
	case "base64":
		dec := base64.NewDecoder(base64.StdEncoding, bytes.NewReader(b))
		out, _ := io.ReadAll(io.LimitReader(dec, 6<<20))
		return out
	case "quoted-printable":
		out, _ := io.ReadAll(io.LimitReader(quotedprintable.NewReader(bytes.NewReader(b)), 6<<20))
		return out
	default:
		return b
	}
}

// ParseAlertHTML extracts raw job rows from an alert email body. Each
// posting is an anchor back to the board; title is the anchor text, and
// the enclosing table cell's remaining lines carry company / location /
// salary in that order when present.
func ParseAlertHTML(body string, boardHost string) []domain.RawJob {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}

	seen := map[string]bool{}
	var jobs []domain.RawJob

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || !strings.Contains(href, boardHost) {
			return
		}
		title := cleanText(a.Text())
		if title == "" || len([]rune(title)) < 4 {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true

		r := domain.RawJob{Title: title, Link: href}

		// surrounding cell carries company/location/salary lines
		if cell := a.Closest("td"); cell.Length() > 0 {
			var extras []string
			for _, line := range strings.Split(cell.Text(), "\n") {
				line = cleanText(line)
				if line == "" || line == title {
					continue
				}
				extras = append(extras, line)
			}
			if len(extras) > 0 {
				r.Company = extras[0]
			}
			if len(extras) > 1 {
				r.Location = extras[1]
			}
			if len(extras) > 2 {
				r.Salary = extras[2]
			}
		}

		jobs = append(jobs, r)
	})

	return jobs
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
