package amap

import (
	"context"
	"fmt"
	"strconv"

	"freight_service/errno"
)

// 出行方式
const (
	ModeDriving   = "driving"
	ModeWalking   = "walking"
	ModeBicycling = "bicycling"
)

// 驾车路径规划默认策略（多策略）
const defaultDrivingStrategy = 10

// RoutePlan 一条规划结果，取自 route.paths[0]
type RoutePlan struct {
	Origin      string // "lng,lat"
	Destination string
	DistanceM   int64 // 米
	DurationS   int64 // 秒
	TollsYuan   int64 // 过路费（元），仅驾车有值
	Strategy    string
}

// DistanceKm 公里数，保留1位小数
func (p RoutePlan) DistanceKm() float64 {
	return float64(p.DistanceM/100) / 10
}

// 高德路径规划响应，数值字段以字符串下发
type directionResp struct {
	Route struct {
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
		Paths       []struct {
			Distance string `json:"distance"`
			Duration string `json:"duration"`
			Tolls    string `json:"tolls"`
			Strategy string `json:"strategy"`
		} `json:"paths"`
	} `json:"route"`
}

// DrivingRoute 驾车路径规划
func (c *Client) DrivingRoute(ctx context.Context, origin, destination Coordinate) (*RoutePlan, error) {
	return c.route(ctx, ModeDriving, origin, destination, map[string]string{
		"strategy":    strconv.Itoa(defaultDrivingStrategy),
		"show_fields": "cost",
	})
}

// WalkingRoute 步行路径规划
func (c *Client) WalkingRoute(ctx context.Context, origin, destination Coordinate) (*RoutePlan, error) {
	return c.route(ctx, ModeWalking, origin, destination, nil)
}

// BicyclingRoute 骑行路径规划
func (c *Client) BicyclingRoute(ctx context.Context, origin, destination Coordinate) (*RoutePlan, error) {
	return c.route(ctx, ModeBicycling, origin, destination, nil)
}

func (c *Client) route(ctx context.Context, mode string, origin, destination Coordinate, extra map[string]string) (*RoutePlan, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: 起点 %s", errno.ErrInvalidCoordinate, origin)
	}
	if !destination.Valid() {
		return nil, fmt.Errorf("%w: 终点 %s", errno.ErrInvalidCoordinate, destination)
	}

	params := map[string]string{
		"origin":      origin.String(),
		"destination": destination.String(),
		"output":      "json",
	}
	for k, v := range extra {
		params[k] = v
	}

	var resp directionResp
	if err := c.get(ctx, "/v5/direction/"+mode, params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Route.Paths) == 0 {
		return nil, errno.ErrNoRoute
	}

	// 只取首条路径，与端上的消费方式一致
	p := resp.Route.Paths[0]
	return &RoutePlan{
		Origin:      resp.Route.Origin,
		Destination: resp.Route.Destination,
		DistanceM:   parseAmapInt(p.Distance),
		DurationS:   parseAmapInt(p.Duration),
		TollsYuan:   parseAmapInt(p.Tolls),
		Strategy:    p.Strategy,
	}, nil
}

// parseAmapInt 字符串数值解析，解析失败按0处理
func parseAmapInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
