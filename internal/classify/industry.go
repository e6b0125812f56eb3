package classify

import (
	"strings"

	"reboot-engine/internal/domain"
)

// Industry is an inferred business sector. Selection is single-select,
// so the keyword sets are allowed to overlap.
type Industry string

const (
	IndustryAll           Industry = "すべて"
	IndustryIT            Industry = "IT"
	IndustryVC            Industry = "VC/起業支援"
	IndustryGame          Industry = "ゲーム"
	IndustryConsulting    Industry = "コンサルティング"
	IndustrySports        Industry = "スポーツ"
	IndustryFashion       Industry = "ファッション/アパレル"
	IndustryBridal        Industry = "ブライダル"
	IndustryManufacturing Industry = "メーカー"
	IndustryMedia         Industry = "メディア"
	IndustryEducation     Industry = "教育"
	IndustryFinance       Industry = "金融"
	IndustryAdvertising   Industry = "広告"
	IndustryTrading       Industry = "商社"
	IndustryHR            Industry = "人材"
	IndustryMedical       Industry = "医療"
	IndustryAgriculture   Industry = "農業"
	IndustryRealEstate    Industry = "不動産"
	IndustryProfessional  Industry = "士業"
	IndustryLeisure       Industry = "旅行/レジャー/エンタメ"
	IndustryFood          Industry = "食"
	IndustryGovernment    Industry = "官公庁"
	IndustryOther         Industry = "その他"
)

type industryDef struct {
	name     Industry
	keywords []string
}

// industryDefs is the selectable set in display order (IndustryAll is
// prepended by Industries).
var industryDefs = []industryDef{
	{IndustryIT, []string{"it", "web", "アプリ", "システム", "テック", "テクノロジー"}},
	{IndustryVC, []string{"vc", "ベンチャーキャピタル", "起業", "インキュベーション", "ファンド"}},
	{IndustryGame, []string{"ゲーム", "game"}},
	{IndustryConsulting, []string{"コンサル"}},
	{IndustrySports, []string{"スポーツ", "sports"}},
	{IndustryFashion, []string{"ファッション", "アパレル", "服", "fashion"}},
	{IndustryBridal, []string{"ブライダル", "ウエディング", "結婚"}},
	{IndustryManufacturing, []string{"メーカー", "製造"}},
	{IndustryMedia, []string{"メディア", "出版", "放送", "新聞", "テレビ"}},
	{IndustryEducation, []string{"教育", "スクール", "塾", "学習"}},
	{IndustryFinance, []string{"金融", "銀行", "証券", "保険", "フィンテック"}},
	{IndustryAdvertising, []string{"広告", "アド", "pr", "プロモーション"}},
	{IndustryTrading, []string{"商社"}},
	{IndustryHR, []string{"人材", "hr", "採用", "キャリア"}},
	{IndustryMedical, []string{"医療", "メディカル", "看護", "ヘルスケア"}},
	{IndustryAgriculture, []string{"農業", "アグリ"}},
	{IndustryRealEstate, []string{"不動産", "住宅", "建設", "建築"}},
	{IndustryProfessional, []string{"税理士", "会計士", "弁護士", "司法書士", "労務"}},
	{IndustryLeisure, []string{"旅行", "観光", "エンタメ", "レジャー", "イベント"}},
	{IndustryFood, []string{"食", "飲食", "フード"}},
	{IndustryGovernment, []string{"官公庁", "自治体", "公務員", "市役所"}},
	{IndustryOther, []string{"その他"}},
}

// Industries lists the 23 selectable labels in display order.
var Industries = func() []Industry {
	out := []Industry{IndustryAll}
	for _, d := range industryDefs {
		out = append(out, d.name)
	}
	return out
}()

// MatchIndustry reports whether the job's combined title+summary+company
// text contains any of the selected industry's keywords. IndustryAll
// matches everything; an unknown label matches nothing.
func MatchIndustry(j domain.Job, industry Industry) bool {
	if industry == IndustryAll {
		return true
	}
	text := strings.ToLower(j.Title + j.Summary + j.Company)
	for _, d := range industryDefs {
		if d.name != industry {
			continue
		}
		for _, k := range d.keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
	return false
}
