package area

import (
	"strings"

	"reboot-engine/internal/domain"
)

// structuredRules match the canonical prefecture field, before any
// free-text matching. Evaluated in order.
var structuredRules = []struct {
	id    string
	prefs []string
}{
	{"tokyo", []string{"東京都"}},
	{"kanagawa", []string{"神奈川県"}},
	{"osaka", []string{"大阪府"}},
	{"kyoto", []string{"京都府"}},
	{"kansai", kansaiPrefectures},
}

// textRules match keyword lists against the raw location string, only
// reached when the structured pass did not resolve. Evaluated in order.
var textRules = []struct {
	id    string
	match func(loc string) bool
}{
	{"tokyo", func(loc string) bool { return hasAny(loc, tokyoKeywords) }},
	{"shibuya", func(loc string) bool { return strings.Contains(loc, "渋谷") }},
	{"shinjuku", func(loc string) bool { return strings.Contains(loc, "新宿") }},
	{"roppongi_minato", func(loc string) bool {
		return strings.Contains(loc, "港区") || strings.Contains(loc, "六本木")
	}},
	{"tokyo_marunouchi", func(loc string) bool {
		return strings.Contains(loc, "千代田区") || strings.Contains(loc, "丸の内") ||
			strings.Contains(loc, "東京") || strings.Contains(loc, "大手町") ||
			strings.Contains(loc, "日比谷")
	}},
	{"shinagawa", func(loc string) bool {
		return strings.Contains(loc, "品川") || strings.Contains(loc, "五反田") ||
			strings.Contains(loc, "大崎")
	}},
	{"kanagawa", func(loc string) bool { return hasAny(loc, kanagawaKeywords) }},
}

// Match reports whether the job belongs to the given area id. "all"
// always matches; an id outside the tree never does (fail closed).
// Sub-areas match independently of their parent region.
func Match(j domain.Job, areaID string) bool {
	if areaID == "all" {
		return true
	}

	for _, r := range structuredRules {
		if r.id != areaID {
			continue
		}
		for _, p := range r.prefs {
			if j.Prefecture == p {
				return true
			}
		}
	}

	loc := j.Location
	if loc == "" {
		return false
	}

	for _, r := range textRules {
		if r.id == areaID {
			return r.match(loc)
		}
	}

	// Kansai composites are derived from the member keyword lists.
	// "京都" inside a 東京都 address must not count as Kyoto.
	isKyoto := !strings.Contains(loc, "東京都") && hasAny(loc, kyotoKeywords)
	isKansai := hasAny(loc, osakaKeywords) || isKyoto ||
		strings.Contains(loc, "兵庫") || strings.Contains(loc, "神戸") ||
		strings.Contains(loc, "滋賀") || strings.Contains(loc, "奈良") ||
		strings.Contains(loc, "和歌山")

	switch areaID {
	case "kansai":
		return isKansai
	case "osaka":
		return hasAny(loc, osakaKeywords)
	case "kyoto":
		return isKyoto
	case "other_jp":
		if j.Prefecture != "" && !containsStr(enumeratedPrefectures, j.Prefecture) {
			return true
		}
		return !hasAny(loc, tokyoKeywords) && !hasAny(loc, kanagawaKeywords) &&
			!hasAny(loc, osakaKeywords) && !hasAny(loc, kyotoKeywords) &&
			!strings.Contains(loc, "兵庫") && !strings.Contains(loc, "神戸")
	}

	return false
}

func hasAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func containsStr(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
