package classify

import (
	"strings"

	"reboot-engine/internal/domain"
)

// Feature is a boolean job attribute inferred from title+summary text:
// schedule flexibility, remote-work level, grade-year eligibility.
type Feature string

const (
	FeatureThreeDaysOrLess Feature = "週3日以下でもOK"
	FeatureFourDaysOrMore  Feature = "週4日以上歓迎"
	FeatureShortTerm       Feature = "1ヶ月からOK"
	FeatureFullRemote      Feature = "フルリモート可"
	FeaturePartialRemote   Feature = "一部リモート可"
	FeatureFirstSecondYear Feature = "1・2年生歓迎"
	FeatureThirdYear       Feature = "3年生歓迎"
	FeatureFourthYear      Feature = "4年生歓迎"
)

// Features is the fixed selectable set, in display order.
var Features = []Feature{
	FeatureThreeDaysOrLess, FeatureFourDaysOrMore, FeatureShortTerm,
	FeatureFullRemote, FeaturePartialRemote,
	FeatureFirstSecondYear, FeatureThirdYear, FeatureFourthYear,
}

// MatchFeatures reports whether the job satisfies every selected
// feature. An empty selection matches all jobs. Unknown labels never
// match.
func MatchFeatures(j domain.Job, selected []Feature) bool {
	if len(selected) == 0 {
		return true
	}
	text := strings.ToLower(j.Title + j.Summary)
	for _, f := range selected {
		if !matchFeature(text, f) {
			return false
		}
	}
	return true
}

func matchFeature(text string, f Feature) bool {
	has := func(kw string) bool { return strings.Contains(text, kw) }

	switch f {
	case FeatureThreeDaysOrLess:
		return has("週1") || has("週2") || has("週3")
	case FeatureFourDaysOrMore:
		return has("週4") || has("週5") || has("フルタイム")
	case FeatureShortTerm:
		return has("短期") || has("1ヶ月") || has("単発")
	case FeatureFullRemote:
		return has("フルリモート") || has("完全在宅")
	case FeaturePartialRemote:
		// full-remote text is deliberately excluded so a job can never
		// satisfy both remote features at once
		return (has("リモート") || has("在宅")) && !has("完全在宅") && !has("フルリモート")
	case FeatureFirstSecondYear:
		return has("1年") || has("2年") || has("低学年")
	case FeatureThirdYear:
		return has("3年")
	case FeatureFourthYear:
		return has("4年")
	}
	return false
}
