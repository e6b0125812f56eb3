// Package area resolves jobs into a two-level region hierarchy:
// country ("all"), then top-level region, then sub-area.
package area

// Node is one entry in the selectable region tree (depth <= 2).
// Every id is globally unique; sub-area ids are disjoint from
// top-level ids.
type Node struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Children []Node `json:"children,omitempty"`
}

// Tree is the selectable hierarchy, in display order.
var Tree = []Node{
	{Name: "すべて", ID: "all"},
	{Name: "東京都", ID: "tokyo", Children: []Node{
		{Name: "渋谷", ID: "shibuya"},
		{Name: "新宿", ID: "shinjuku"},
		{Name: "六本木・港区", ID: "roppongi_minato"},
		{Name: "東京・丸の内", ID: "tokyo_marunouchi"},
		{Name: "品川", ID: "shinagawa"},
	}},
	{Name: "神奈川県", ID: "kanagawa"},
	{Name: "関西", ID: "kansai", Children: []Node{
		{Name: "大阪府", ID: "osaka"},
		{Name: "京都府", ID: "kyoto"},
	}},
	{Name: "その他（国内）", ID: "other_jp"},
}

// kansaiPrefectures are the structured members of the kansai region.
var kansaiPrefectures = []string{"大阪府", "京都府", "兵庫県", "奈良県", "滋賀県", "和歌山県"}

// enumeratedPrefectures are the prefectures claimed by an explicit
// region; other_jp matches structured jobs outside this set.
var enumeratedPrefectures = []string{"東京都", "神奈川県", "大阪府", "京都府", "兵庫県"}

// Free-text keyword lists per region: ward, city, neighborhood and
// station names observed in source location strings.
var tokyoKeywords = []string{
	"東京都", "東京", "千代田区", "中央区", "港区", "新宿", "文京区", "台東区", "墨田区", "江東区",
	"品川", "目黒", "大田区", "世田谷", "渋谷", "中野", "杉並区", "豊島区", "北区", "荒川区",
	"板橋区", "練馬区", "足立区", "葛飾区", "江戸川区",
	"八王子", "立川", "武蔵野", "三鷹", "青梅", "府中", "昭島", "調布", "町田", "小金井",
	"小平", "日野", "東村山", "国分寺", "国立", "福生", "狛江", "東大和", "清瀬", "東久留米",
	"武蔵村山", "多摩", "稲城", "羽村", "あきる野", "西東京",
	"銀座", "六本木", "赤坂", "青山", "原宿", "表参道", "代官山", "恵比寿", "五反田", "大崎",
	"上野", "秋葉原", "神田", "御茶ノ水", "水道橋", "飯田橋", "神楽坂", "高田馬場", "池袋",
	"新橋", "浜松町", "田町", "有楽町", "日比谷", "日本橋", "大手町", "丸の内",
}

var kanagawaKeywords = []string{
	"神奈川", "横浜", "川崎", "相模原", "横須賀", "平塚", "鎌倉", "藤沢", "小田原", "茅ヶ崎",
	"逗子", "三浦", "秦野", "厚木", "大和", "伊勢原", "海老名", "座間", "南足柄", "綾瀬",
	"みなとみらい", "桜木町", "関内",
}

var osakaKeywords = []string{
	"大阪", "梅田", "難波", "心斎橋", "天王寺", "京橋", "淀屋橋", "本町", "新大阪", "北新地",
	"堺", "豊中", "池田", "吹田", "高槻", "守口", "枚方", "茨木", "八尾", "寝屋川",
	"大東", "箕面", "門真", "摂津", "高石", "藤井寺", "東大阪", "泉南", "四條畷", "交野",
}

var kyotoKeywords = []string{
	"京都", "四条", "烏丸", "河原町", "祇園", "嵐山", "伏見", "宇治", "亀岡", "舞鶴",
	"宮津", "城陽", "向日", "長岡京", "八幡", "京田辺", "木津川",
}
