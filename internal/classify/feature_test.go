package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reboot-engine/internal/domain"
)

func TestMatchFeatures(t *testing.T) {
	job := func(title, summary string) domain.Job {
		return domain.Job{Title: title, Summary: summary}
	}

	tests := []struct {
		name     string
		job      domain.Job
		selected []Feature
		want     bool
	}{
		{
			name:     "empty selection matches anything",
			job:      job("", ""),
			selected: nil,
			want:     true,
		},
		{
			name:     "three days or less",
			job:      job("週2日からOKの長期インターン", ""),
			selected: []Feature{FeatureThreeDaysOrLess},
			want:     true,
		},
		{
			name:     "four days or more via fulltime",
			job:      job("", "フルタイム勤務歓迎"),
			selected: []Feature{FeatureFourDaysOrMore},
			want:     true,
		},
		{
			name:     "short term",
			job:      job("単発ライティング案件", ""),
			selected: []Feature{FeatureShortTerm},
			want:     true,
		},
		{
			name:     "full remote",
			job:      job("フルリモートOK", ""),
			selected: []Feature{FeatureFullRemote},
			want:     true,
		},
		{
			name:     "partial remote from plain remote mention",
			job:      job("週1リモート可", ""),
			selected: []Feature{FeaturePartialRemote},
			want:     true,
		},
		{
			name:     "grade year",
			job:      job("", "大学3年生歓迎"),
			selected: []Feature{FeatureThirdYear},
			want:     true,
		},
		{
			name:     "conjunction fails when one feature misses",
			job:      job("週2日リモート可", ""),
			selected: []Feature{FeatureThreeDaysOrLess, FeatureFullRemote},
			want:     false,
		},
		{
			name:     "conjunction holds when all match",
			job:      job("週2日リモート可", ""),
			selected: []Feature{FeatureThreeDaysOrLess, FeaturePartialRemote},
			want:     true,
		},
		{
			name:     "three days plus full remote together",
			job:      job("", "週3日からOK、フルリモート可"),
			selected: []Feature{FeatureThreeDaysOrLess, FeatureFullRemote},
			want:     true,
		},
		{
			name:     "full remote text blocks the partial predicate",
			job:      job("", "週3日からOK、フルリモート可"),
			selected: []Feature{FeaturePartialRemote},
			want:     false,
		},
		{
			name:     "unknown label never matches",
			job:      job("週2日リモート可", ""),
			selected: []Feature{Feature("存在しない条件")},
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchFeatures(tt.job, tt.selected))
		})
	}
}

// A full-remote job must satisfy the full-remote feature and must not
// satisfy the partial-remote one; the two are mutually exclusive.
func TestRemoteFeaturesExclusive(t *testing.T) {
	full := domain.Job{Title: "フルリモートで働けるエンジニア"}
	assert.True(t, MatchFeatures(full, []Feature{FeatureFullRemote}))
	assert.False(t, MatchFeatures(full, []Feature{FeaturePartialRemote}))

	partial := domain.Job{Title: "一部在宅勤務あり"}
	assert.False(t, MatchFeatures(partial, []Feature{FeatureFullRemote}))
	assert.True(t, MatchFeatures(partial, []Feature{FeaturePartialRemote}))

	kanzen := domain.Job{Summary: "完全在宅のお仕事です"}
	assert.True(t, MatchFeatures(kanzen, []Feature{FeatureFullRemote}))
	assert.False(t, MatchFeatures(kanzen, []Feature{FeaturePartialRemote}))
}
