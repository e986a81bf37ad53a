package mock

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"freight_service/api"
	"freight_service/geo"
	"freight_service/model"
)

// 车型对应每公里价格区间（元/公里）
var rateTable = map[string][2]float64{
	"mini": {2.1, 2.8},
	"4.2":  {2.8, 3.9},
	"6.8":  {3.5, 5.0},
	"9.6":  {4.4, 6.0},
	"13":   {6.5, 7.5},
	"17.5": {8.5, 11.5},
}

const (
	defaultVehicleType = "4.2"
	defaultDistanceKm  = 50
	minQuotePrice      = 150
	maxQuotePrice      = 50000
)

// handleQuote AI运价推荐
// 里程：优先用请求里的distanceKm，其次由起终点坐标算球面距离，最后兜底默认值；
// 单价：在车型区间中值附近做±10%区间宽度的扰动，石家庄→河北线路固定取中值；
// 重量/体积各有封顶的轻微加成，最终价格取整并收敛到保护区间内
func (r *Registry) handleQuote(ctx context.Context, opts *api.Options) (interface{}, error) {
	var req model.QuoteReq
	if err := decodeBody(opts.Body, &req); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}

	var distanceKm float64
	if req.DistanceKm != nil {
		distanceKm = *req.DistanceKm
	}
	if distanceKm == 0 &&
		req.OriginLatitude != nil && req.OriginLongitude != nil &&
		req.DestinationLatitude != nil && req.DestinationLongitude != nil {
		distanceKm = geo.Haversine(
			*req.OriginLatitude, *req.OriginLongitude,
			*req.DestinationLatitude, *req.DestinationLongitude,
		)
	}
	if distanceKm == 0 || math.IsNaN(distanceKm) {
		distanceKm = defaultDistanceKm
	}

	vt := req.VehicleType
	if vt == "" {
		vt = defaultVehicleType
	}
	rng, ok := rateTable[vt]
	if !ok {
		rng = rateTable[defaultVehicleType]
	}
	minRate, maxRate := rng[0], rng[1]

	// 取区间内较合理值（靠近中位），添加轻微随机扰动
	mid := (minRate + maxRate) / 2
	jitter := (rand.Float64() - 0.5) * (maxRate - minRate) * 0.2
	ratePerKm := round2(mid + jitter)

	// 区域规则：石家庄→河北，固定使用区间中值，避免离谱
	if strings.Contains(req.OriginName, "石家庄") && strings.Contains(req.DestinationName, "河北") {
		ratePerKm = round2(mid)
	}

	// 重量/体积轻微加成（保持不离谱）
	factor := 1.0
	if req.Weight != nil && *req.Weight > 0 {
		w := math.Min(50, *req.Weight)
		factor *= 1 + math.Min(0.15, w/200)
	}
	if req.Volume != nil && *req.Volume > 0 {
		v := math.Min(200, *req.Volume)
		factor *= 1 + math.Min(0.10, v/500)
	}

	price := int64(math.Round(distanceKm * ratePerKm * factor))
	if price < minQuotePrice {
		price = minQuotePrice
	}
	if price > maxQuotePrice {
		price = maxQuotePrice
	}

	return model.OkEnvelope(model.Quote{
		Price:      price,
		Unit:       "元/趟",
		RatePerKm:  ratePerKm,
		DistanceKm: distanceKm,
		Note: "AI 推荐价（" + vt + "车、约" + formatNum(distanceKm) +
			"km、单价约¥" + formatNum(ratePerKm) + "/km）",
	}), nil
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
