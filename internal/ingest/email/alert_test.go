package email

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alertHTML = `<html><body>
<table>
<tr><td>
  <a href="https://kyujinbox.com/jobs/1234">未経験歓迎のWebエンジニア</a><br>
  株式会社サンプル<br>
  東京都渋谷区<br>
  時給1,200円
</td></tr>
<tr><td>
  <a href="https://kyujinbox.com/jobs/5678">営業アシスタント募集</a><br>
  サンプル商事
</td></tr>
<tr><td>
  <a href="https://kyujinbox.com/jobs/1234">未経験歓迎のWebエンジニア</a>
</td></tr>
<tr><td>
  <a href="https://tracking.example.com/click">配信停止はこちら</a>
  <a href="https://kyujinbox.com/search">検索</a>
</td></tr>
</table>
</body></html>`

func TestParseAlertHTML(t *testing.T) {
	jobs := ParseAlertHTML(alertHTML, "kyujinbox.com")
	require.Len(t, jobs, 2)

	assert.Equal(t, "未経験歓迎のWebエンジニア", jobs[0].Title)
	assert.Equal(t, "https://kyujinbox.com/jobs/1234", jobs[0].Link)
	assert.Equal(t, "株式会社サンプル", jobs[0].Company)
	assert.Equal(t, "東京都渋谷区", jobs[0].Location)
	assert.Equal(t, "時給1,200円", jobs[0].Salary)

	assert.Equal(t, "営業アシスタント募集", jobs[1].Title)
	assert.Equal(t, "サンプル商事", jobs[1].Company)
	assert.Empty(t, jobs[1].Location)
}

func TestParseAlertHTMLFiltersOffBoardAndShortAnchors(t *testing.T) {
	jobs := ParseAlertHTML(alertHTML, "kyujinbox.com")
	for _, j := range jobs {
		assert.Contains(t, j.Link, "kyujinbox.com")
		assert.GreaterOrEqual(t, len([]rune(j.Title)), 4)
	}
}

func TestParseAlertHTMLEmpty(t *testing.T) {
	assert.Empty(t, ParseAlertHTML("", "kyujinbox.com"))
	assert.Empty(t, ParseAlertHTML("<html><body>no links</body></html>", "kyujinbox.com"))
}

func TestHTMLBodyPlain(t *testing.T) {
	raw := []byte("From: alert@example.com\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" +
		"<html><body><p>hello</p></body></html>\r\n")

	got := htmlBody(raw)
	assert.Contains(t, got, "<p>hello</p>")
}

func TestHTMLBodyMultipartBase64(t *testing.T) {
	html := `<html><body><a href="https://kyujinbox.com/jobs/1">未経験から始めるお仕事</a></body></html>`
	enc := base64.StdEncoding.EncodeToString([]byte(html))

	raw := []byte("From: alert@example.com\r\n" +
		"Content-Type: multipart/alternative; boundary=BOUNDARY\r\n" +
		"\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"plain fallback\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"Content-Transfer-Encoding: base64\r\n" +
		"\r\n" +
		enc + "\r\n" +
		"--BOUNDARY--\r\n")

	got := htmlBody(raw)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "kyujinbox.com/jobs/1")

	jobs := ParseAlertHTML(got, "kyujinbox.com")
	require.Len(t, jobs, 1)
	assert.Equal(t, "未経験から始めるお仕事", jobs[0].Title)
}

func TestHTMLBodyQuotedPrintable(t *testing.T) {
	raw := []byte("From: a@b\r\n" +
		"Content-Type: text/html\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		"<p>line one=\r\nline two</p>\r\n")

	got := htmlBody(raw)
	assert.True(t, strings.Contains(got, "line oneline two"), "soft break must join lines: %q", got)
}
