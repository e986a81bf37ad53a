package mock

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"freight_service/api"
	"freight_service/model"
)

// 车源与货源ID使用不相交的数值段，合并进同一份地图标记列表时不会冲突
const (
	vehicleIDBase = 10000
	cargoIDBase   = 20000

	vehicleBatchSize = 8
	cargoBatchSize   = 10

	// 基础搜索半径（公里），按缩放级别收缩，最小1公里
	baseRadiusKm = 50
)

var (
	vehicleModels = []string{"小面", "中面", "大面", "单排", "4.2", "6.8", "9.6", "13", "17.5"}
	vehicleBrands = []string{"解放", "东风", "重汽", "陕汽", "福田"}
	companies     = []string{"华运物流", "北辰货运", "天行运输", "安达物流"}
	driverNames   = []string{"张师傅", "李师傅", "王师傅", "赵师傅"}

	goodsTypes    = []string{"普货", "冷链", "危化", "大件", "建材", "钢材", "食品", "电子产品"}
	cargoStatuses = []string{"pending", "in_transit", "completed"}
)

// handleFreight 根据地图中心与缩放级别生成附近的车源与货源
// 每次查询都是现生成的，不落存储
func (r *Registry) handleFreight(ctx context.Context, opts *api.Options) (interface{}, error) {
	centerLat := queryFloat(opts, "lat", 38.010232)
	centerLng := queryFloat(opts, "lng", 114.484472)
	scale := queryFloat(opts, "scale", 14)

	// 缩放级别越大，范围越小（简化模型）
	radiusKm := math.Max(1, baseRadiusKm/math.Max(5, scale))

	vehicles := make([]model.Vehicle, 0, vehicleBatchSize)
	for i := 0; i < vehicleBatchSize; i++ {
		m := vehicleModels[rand.Intn(len(vehicleModels))]
		length, load := vehicleSpec(m)
		v := model.Vehicle{
			ID:           vehicleIDBase + int64(i) + 1,
			Model:        m,
			Brand:        vehicleBrands[rand.Intn(len(vehicleBrands))],
			LicensePlate: randomPlate(),
			Location:     randomNearby(centerLat, centerLng, radiusKm, fmt.Sprintf("石家庄市区域%d", i+1)),
			Availability: rand.Float64() > 0.3,
			Length:       length,
			LoadCapacity: load,
			Driver: model.Driver{
				Name:  driverNames[rand.Intn(len(driverNames))],
				Phone: randomPhone(),
			},
		}
		if rand.Float64() > 0.5 {
			v.Driver.Company = companies[rand.Intn(len(companies))]
		}
		vehicles = append(vehicles, v)
	}

	now := time.Now()
	cargos := make([]model.Cargo, 0, cargoBatchSize)
	for i := 0; i < cargoBatchSize; i++ {
		cargoType := model.CargoTypeFullTruck
		if rand.Intn(2) == 1 {
			cargoType = model.CargoTypeLTL
		}
		goodsType := goodsTypes[rand.Intn(len(goodsTypes))]

		transportDesc := "整车运输"
		if cargoType == model.CargoTypeLTL {
			transportDesc = "零担拼车"
		}

		// 整车按趟计价，零单按公斤计价
		var freightRate float64
		if cargoType == model.CargoTypeFullTruck {
			freightRate = math.Round(2000 + rand.Float64()*8000)
		} else {
			freightRate = round1(3 + rand.Float64()*7)
		}

		cargos = append(cargos, model.Cargo{
			ID:            cargoIDBase + int64(i) + 1,
			Type:          cargoType,
			Origin:        randomNearby(centerLat, centerLng, radiusKm, fmt.Sprintf("起点地址%d", i+1)),
			Destination:   randomNearby(centerLat, centerLng, radiusKm, fmt.Sprintf("终点地址%d", i+1)),
			LoadingTime:   isoTime(now.Add(time.Duration(rand.Intn(24)) * time.Hour)),
			UnloadingTime: isoTime(now.Add(time.Duration(24+rand.Intn(48)) * time.Hour)),
			CargoInfo: model.CargoInfo{
				Type:        goodsType,
				Weight:      round1(1 + rand.Float64()*29),
				Volume:      round1(5 + rand.Float64()*95),
				Description: fmt.Sprintf("%s货物，需要%s", goodsType, transportDesc),
			},
			FreightRate: freightRate,
			Status:      cargoStatuses[rand.Intn(len(cargoStatuses))],
			Location:    randomNearby(centerLat, centerLng, radiusKm, fmt.Sprintf("当前位置%d", i+1)),
		})
	}

	return model.FreightData{Vehicles: vehicles, Cargos: cargos}, nil
}

// randomNearby 在中心点附近按半径撒点
// 经纬度粗略换算：1度纬度约111公里，经度按纬度余弦修正
func randomNearby(lat, lng, radiusKm float64, address string) model.Location {
	latOffset := (rand.Float64() - 0.5) * (radiusKm / 111)
	lngOffset := (rand.Float64() - 0.5) * (radiusKm / (111 * math.Cos(lat*math.Pi/180)))
	return model.Location{
		Latitude:  round6(lat + latOffset),
		Longitude: round6(lng + lngOffset),
		Address:   address,
	}
}

// vehicleSpec 按车型给出合理的车长（米）与载重（吨）
func vehicleSpec(m string) (length, load float64) {
	switch m {
	case "小面":
		return round1(2.5 + rand.Float64()), round1(0.5 + rand.Float64())
	case "中面":
		return round1(3.5 + rand.Float64()), round1(1.5 + rand.Float64()*1.5)
	case "大面":
		return round1(4.5 + rand.Float64()*1.5), round1(3 + rand.Float64()*2)
	case "单排":
		return round1(3 + rand.Float64()), round1(1 + rand.Float64()*1.5)
	case "4.2":
		return 4.2, round1(2 + rand.Float64())
	case "6.8":
		return 6.8, round1(5 + rand.Float64()*3)
	case "9.6":
		return 9.6, round1(8 + rand.Float64()*4)
	case "13":
		return 13, round1(15 + rand.Float64()*10)
	case "17.5":
		return 17.5, round1(25 + rand.Float64()*15)
	default:
		return round1(6 + rand.Float64()*10), round1(5 + rand.Float64()*25)
	}
}

func randomPlate() string {
	return fmt.Sprintf("冀A%d", 1000+rand.Intn(8999))
}

func randomPhone() string {
	return fmt.Sprintf("138%d", 10000000+rand.Intn(89999999))
}

func isoTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
