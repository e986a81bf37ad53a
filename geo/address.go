package geo

import (
	"regexp"
	"strings"
)

var (
	reCountry  = regexp.MustCompile(`^中国`)
	reProvince = regexp.MustCompile(`^(?:.*?(?:省|自治区|特别行政区|市))`)
	reCity     = regexp.MustCompile(`^(?:.*?(?:市|地区|盟|自治州))`)
)

// StripProvinceCity 规范化地址显示：去掉省份和城市信息，仅保留区/县及之后的详细地址
// 处理示例：
//   - "浙江省杭州市西湖区文三路xxx" => "西湖区文三路xxx"
//   - "北京市海淀区中关村大街xxx" => "海淀区中关村大街xxx"
//   - "内蒙古自治区呼和浩特市赛罕区xxx" => "赛罕区xxx"
//   - "中国上海市浦东新区世纪大道xxx" => "浦东新区世纪大道xxx"
func StripProvinceCity(address string) string {
	s := strings.TrimSpace(address)
	if s == "" {
		return ""
	}
	// 去掉前缀"中国"
	s = reCountry.ReplaceAllString(s, "")
	// 第一次：去掉省级（省/自治区/特别行政区/直辖市）
	s = reProvince.ReplaceAllString(s, "")
	// 第二次：去掉地市级（市/地区/盟/自治州）
	s = reCity.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
