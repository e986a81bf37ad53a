package amap

import (
	"strconv"
	"strings"

	"freight_service/errno"
)

// Coordinate 经纬度（高德侧约定经度在前）
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

// Valid 经纬度范围校验
func (c Coordinate) Valid() bool {
	return c.Longitude >= -180 && c.Longitude <= 180 &&
		c.Latitude >= -90 && c.Latitude <= 90
}

// String 格式化为 "lng,lat"，保留6位小数
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Longitude, 'f', 6, 64) + "," +
		strconv.FormatFloat(c.Latitude, 'f', 6, 64)
}

// ParseCoordinate 解析 "lng,lat" 形式的坐标串
func ParseCoordinate(s string) (Coordinate, error) {
	lngStr, latStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Coordinate{}, errno.ErrInvalidCoordinate
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return Coordinate{}, errno.ErrInvalidCoordinate
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Coordinate{}, errno.ErrInvalidCoordinate
	}
	c := Coordinate{Longitude: lng, Latitude: lat}
	if !c.Valid() {
		return Coordinate{}, errno.ErrInvalidCoordinate
	}
	return c, nil
}
