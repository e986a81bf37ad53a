package geo_test

import (
	"testing"

	"freight_service/geo"

	"github.com/stretchr/testify/assert"
)

func TestHaversineBeijingShanghai(t *testing.T) {
	// 北京 <-> 上海
	d := geo.Haversine(39.9042, 116.4074, 31.2304, 121.4737)
	assert.InDelta(t, 1067.6, d, 1.0)
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{39.9042, 116.4074, 31.2304, 121.4737},
		{38.010232, 114.484472, 39.9042, 116.4074},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{0, 0, 0, 180},
	}
	for _, p := range pairs {
		ab := geo.Haversine(p[0], p[1], p[2], p[3])
		ba := geo.Haversine(p[2], p[3], p[0], p[1])
		assert.Equal(t, ab, ba)
	}
}

func TestHaversineZero(t *testing.T) {
	assert.Equal(t, 0.0, geo.Haversine(39.9042, 116.4074, 39.9042, 116.4074))
	assert.Equal(t, 0.0, geo.Haversine(0, 0, 0, 0))
}

func TestHaversineShortDistance(t *testing.T) {
	// 相距约1.1公里的两个点（石家庄市区）
	d := geo.Haversine(38.010232, 114.484472, 38.020232, 114.484472)
	assert.InDelta(t, 1.1, d, 0.2)
}
