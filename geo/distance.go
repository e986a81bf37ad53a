package geo

import "math"

// earthRadiusKm 地球半径（公里）
const earthRadiusKm = 6371

// Haversine 计算两点间大圆距离，返回公里数，保留1位小数
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*10) / 10
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
