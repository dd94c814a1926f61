// Package region maps free-text posting locations onto China's 34
// provincial-level divisions.
package region

// shortNames is the membership filter for division names as they
// appear in post location text. Anything outside this set (foreign
// locations, cities, noise) is dropped.
var shortNames = map[string]struct{}{
	"北京": {}, "天津": {}, "上海": {}, "重庆": {},
	"河北": {}, "山西": {}, "辽宁": {}, "吉林": {}, "黑龙江": {},
	"江苏": {}, "浙江": {}, "安徽": {}, "福建": {}, "江西": {}, "山东": {},
	"河南": {}, "湖北": {}, "湖南": {}, "广东": {}, "海南": {},
	"四川": {}, "贵州": {}, "云南": {}, "陕西": {}, "甘肃": {}, "青海": {},
	"内蒙古": {}, "广西": {}, "西藏": {}, "宁夏": {}, "新疆": {},
	"中国香港": {}, "中国澳门": {}, "中国台湾": {},
}

// canonicalNames maps a short division name to the display name the
// map renderer expects.
var canonicalNames = map[string]string{
	"北京":   "北京市",
	"天津":   "天津市",
	"上海":   "上海市",
	"重庆":   "重庆市",
	"河北":   "河北省",
	"山西":   "山西省",
	"辽宁":   "辽宁省",
	"吉林":   "吉林省",
	"黑龙江":  "黑龙江省",
	"江苏":   "江苏省",
	"浙江":   "浙江省",
	"安徽":   "安徽省",
	"福建":   "福建省",
	"江西":   "江西省",
	"山东":   "山东省",
	"河南":   "河南",
	"湖北":   "湖北省",
	"湖南":   "湖南省",
	"广东":   "广东省",
	"海南":   "海南省",
	"四川":   "四川省",
	"贵州":   "贵州省",
	"云南":   "云南省",
	"陕西":   "陕西省",
	"甘肃":   "甘肃省",
	"青海":   "青海省",
	"内蒙古":  "内蒙古自治区",
	"广西":   "广西壮族自治区",
	"西藏":   "西藏自治区",
	"宁夏":   "宁夏回族自治区",
	"新疆":   "新疆维吾尔自治区",
	"中国香港": "香港特别行政区",
	"中国澳门": "澳门特别行政区",
	"中国台湾": "台湾省",
}

// Canonical resolves a short division name to its display name.
// ok is false for names outside the recognized set.
func Canonical(short string) (string, bool) {
	if _, ok := shortNames[short]; !ok {
		return "", false
	}
	return canonicalNames[short], true
}
