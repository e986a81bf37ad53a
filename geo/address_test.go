package geo_test

import (
	"testing"

	"freight_service/geo"

	"github.com/stretchr/testify/assert"
)

func TestStripProvinceCity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"浙江省杭州市西湖区文三路100号", "西湖区文三路100号"},
		{"北京市海淀区中关村大街1号", "海淀区中关村大街1号"},
		{"内蒙古自治区呼和浩特市赛罕区某某路", "赛罕区某某路"},
		{"中国上海市浦东新区世纪大道88号", "浦东新区世纪大道88号"},
		{"河北省石家庄市长安区中山东路", "长安区中山东路"},
		{"", ""},
		{"  ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, geo.StripProvinceCity(c.in), "input: %s", c.in)
	}
}
