package classify

var recommendations = map[Category]string{
	CategoryEngineer:  "エンジニアとしてのキャリアは、未経験からの挑戦が最も価値を生む分野の一つです。実践的な開発経験を積むことで、将来の市場価値を大きく高めることができます。",
	CategoryDesigner:  "デザインのスキルは、座学よりも実際のプロジェクトで磨かれます。クリエイティブな現場での経験は、あなたのポートフォリオをより魅力的なものにするでしょう。",
	CategoryMarketing: "マーケティングは、ビジネスの根幹を支える重要なスキルです。数字に基づいた分析や施策の実行経験は、どのような業界でも通用する強力な武器になります。",
	CategorySales:     "営業力は、すべてのビジネスパーソンにとって不可欠なスキルです。顧客との対話を通じて得られる折衝能力や提案力は、一生モノの財産になります。",
	CategoryPlanning:  "アイデアを形にする企画職は、ゼロからイチを生み出す楽しさを実感できる仕事です。プロジェクトを推進する力は、将来のリーダーシップにつながります。",
	CategoryWriter:    "言葉で情報を伝える力は、AI時代においても決して色褪せないスキルです。読者の心を動かすコンテンツ作りを通して、発信力を磨きましょう。",
}

const defaultRecommendation = "未経験から新しい分野に挑戦することは、大きな自己成長のチャンスです。まずは現場に飛び込み、実務を通してスキルを身につけていきましょう。"

// Recommendation returns the canned encouragement for a category.
// Unclassified (and unknown) categories get the default message.
func Recommendation(cat Category) string {
	if msg, ok := recommendations[cat]; ok {
		return msg
	}
	return defaultRecommendation
}
