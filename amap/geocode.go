package amap

import (
	"context"
	"encoding/json"
)

// GeocodeResult 正向地理编码结果
type GeocodeResult struct {
	FormattedAddress string
	Province         string
	City             string
	District         string
	Location         Coordinate
	Level            string
}

type geocodeResp struct {
	Geocodes []struct {
		FormattedAddress string          `json:"formatted_address"`
		Province         json.RawMessage `json:"province"`
		City             json.RawMessage `json:"city"`
		District         json.RawMessage `json:"district"`
		Location         string          `json:"location"`
		Level            string          `json:"level"`
	} `json:"geocodes"`
}

// Geocode 地址转坐标，city可为空（默认全国）
func (c *Client) Geocode(ctx context.Context, address, city string) ([]GeocodeResult, error) {
	params := map[string]string{
		"address": address,
		"city":    city,
		"output":  "json",
	}
	var resp geocodeResp
	if err := c.get(ctx, "/v3/geocode/geo", params, &resp); err != nil {
		return nil, err
	}

	results := make([]GeocodeResult, 0, len(resp.Geocodes))
	for _, g := range resp.Geocodes {
		loc, err := ParseCoordinate(g.Location)
		if err != nil {
			continue
		}
		results = append(results, GeocodeResult{
			FormattedAddress: g.FormattedAddress,
			Province:         flexString(g.Province),
			City:             flexString(g.City),
			District:         flexString(g.District),
			Location:         loc,
			Level:            g.Level,
		})
	}
	return results, nil
}

type regeoResp struct {
	Regeocode struct {
		FormattedAddress json.RawMessage `json:"formatted_address"`
		AddressComponent struct {
			Province json.RawMessage `json:"province"`
			City     json.RawMessage `json:"city"`
			District json.RawMessage `json:"district"`
		} `json:"addressComponent"`
	} `json:"regeocode"`
}

// RegeoResult 逆向地理编码结果
type RegeoResult struct {
	FormattedAddress string
	Province         string
	City             string
	District         string
}

// ReverseGeocode 坐标转地址
func (c *Client) ReverseGeocode(ctx context.Context, location Coordinate) (*RegeoResult, error) {
	params := map[string]string{
		"location":   location.String(),
		"radius":     "1000",
		"extensions": "base",
		"output":     "json",
	}
	var resp regeoResp
	if err := c.get(ctx, "/v3/geocode/regeo", params, &resp); err != nil {
		return nil, err
	}
	return &RegeoResult{
		FormattedAddress: flexString(resp.Regeocode.FormattedAddress),
		Province:         flexString(resp.Regeocode.AddressComponent.Province),
		City:             flexString(resp.Regeocode.AddressComponent.City),
		District:         flexString(resp.Regeocode.AddressComponent.District),
	}, nil
}

// flexString 高德部分字段在无值时下发空数组而不是空串，这里统一压平成字符串
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
