package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reboot-engine/internal/domain"
)

func TestMatchIndustry(t *testing.T) {
	tests := []struct {
		name     string
		job      domain.Job
		industry Industry
		want     bool
	}{
		{
			name:     "all matches everything",
			job:      domain.Job{},
			industry: IndustryAll,
			want:     true,
		},
		{
			name:     "company name carries the keyword",
			job:      domain.Job{Company: "株式会社フードテック"},
			industry: IndustryFood,
			want:     true,
		},
		{
			name:     "same company also matches IT via テック",
			job:      domain.Job{Company: "株式会社フードテック"},
			industry: IndustryIT,
			want:     true,
		},
		{
			name:     "summary keyword",
			job:      domain.Job{Summary: "不動産仲介の営業サポート"},
			industry: IndustryRealEstate,
			want:     true,
		},
		{
			name:     "no keyword anywhere",
			job:      domain.Job{Title: "一般事務", Company: "山田商店"},
			industry: IndustryGame,
			want:     false,
		},
		{
			name:     "unknown label matches nothing",
			job:      domain.Job{Title: "ゲームプランナー"},
			industry: Industry("宇宙"),
			want:     false,
		},
		{
			name:     "latin keyword is case-insensitive",
			job:      domain.Job{Title: "Game Tester Wanted"},
			industry: IndustryGame,
			want:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchIndustry(tt.job, tt.industry))
		})
	}
}

func TestIndustriesListShape(t *testing.T) {
	assert.Equal(t, IndustryAll, Industries[0])
	assert.Len(t, Industries, 23)

	seen := map[Industry]bool{}
	for _, ind := range Industries {
		assert.False(t, seen[ind], "duplicate label %q", ind)
		seen[ind] = true
	}
}
