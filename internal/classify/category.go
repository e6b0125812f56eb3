package classify

import "strings"

// Category is an inferred occupational role. The set is closed; every
// title maps to exactly one of these.
type Category string

const (
	CategoryAll       Category = "すべて"
	CategoryEngineer  Category = "エンジニア"
	CategoryDesigner  Category = "デザイナー"
	CategorySales     Category = "営業"
	CategoryPlanning  Category = "企画"
	CategoryMarketing Category = "マーケティング"
	CategoryWriter    Category = "編集/ライター"
	CategoryOther     Category = "その他"
)

// Categories is the display order used for tabs and grouping.
var Categories = []Category{
	CategoryEngineer, CategoryDesigner, CategorySales, CategoryPlanning,
	CategoryMarketing, CategoryWriter, CategoryOther,
}

type categoryDef struct {
	name     Category
	keywords []string
}

// categoryDefs is the scoring order. Ties keep the first-seen category,
// so this order is behaviorally significant; do not reorder.
var categoryDefs = []categoryDef{
	{CategoryEngineer, []string{
		"エンジニア", "engineer", "python", "java", "ruby", "php", "go", "react", "next", "vue", "aws",
		"開発", "技術", "プログラマ", "技術", "テック", "tech", "ai", "機械学習",
	}},
	{CategoryDesigner, []string{
		"デザイン", "デザイナー", "design", "ui", "ux", "figma", "adobe", "photoshop", "illustrator",
		"クリエイティブ", "アート", "制作",
	}},
	{CategoryMarketing, []string{
		"マーケ", "広報", "sns", "seo", "ads", "広告", "リサーチ", "分析", "ブランディング", "pr", "marketing",
	}},
	{CategoryWriter, []string{
		"編集", "ライター", "writer", "editor", "記事", "執筆", "メディア", "コンテンツ", "書籍",
	}},
	{CategoryPlanning, []string{
		"企画", "プランナー", "ディレクター", "pm", "プロダクトマネージャー", "planning", "direction",
		"ディレクション", "事業開発", "プロデュース",
	}},
	{CategorySales, []string{
		"営業", "セールス", "sales", "business", "ビジネス", "商談", "アポ", "インサイドセールス",
		"コンサルティング", "提案",
	}},
}

// Categorize scores the lower-cased title against every category's
// keyword list (one point per keyword occurring as a substring) and
// returns the highest scorer. The two top-priority marketing keywords
// carry a +2 bonus on top of their normal point. A zero maximum falls
// through to CategoryOther.
func Categorize(title string) Category {
	t := strings.ToLower(title)

	best := CategoryOther
	maxScore := 0

	for _, def := range categoryDefs {
		score := 0
		for _, k := range def.keywords {
			if !strings.Contains(t, k) {
				continue
			}
			score++
			if def.name == CategoryMarketing && (k == "マーケ" || k == "マーケティング") {
				score += 2
			}
		}
		if score > maxScore {
			maxScore = score
			best = def.name
		}
	}

	if maxScore == 0 {
		return CategoryOther
	}
	return best
}
