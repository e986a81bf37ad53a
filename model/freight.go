package model

// 货源类型
const (
	CargoTypeFullTruck = "整车"
	CargoTypeLTL       = "零单"
)

// Location 地图点位
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Driver 司机/承运方信息
type Driver struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
}

// Vehicle 车源
// 地图组件要求数值型 ID，车源与货源使用不相交的数值段以便合并成一份标记点列表
type Vehicle struct {
	ID           int64    `json:"id"`
	Model        string   `json:"model"` // 小面|中面|大面|单排|4.2|6.8|9.6|13|17.5
	Brand        string   `json:"brand"`
	LicensePlate string   `json:"licensePlate"`
	Location     Location `json:"location"`
	Availability bool     `json:"availability"`
	Length       float64  `json:"length"`       // 车长（米）
	LoadCapacity float64  `json:"loadCapacity"` // 载重（吨）
	Driver       Driver   `json:"driver"`
}

// CargoInfo 货物明细
type CargoInfo struct {
	Type        string  `json:"type"`
	Weight      float64 `json:"weight"` // 吨
	Volume      float64 `json:"volume"` // 立方米
	Description string  `json:"description"`
}

// Cargo 货源
type Cargo struct {
	ID            int64     `json:"id"`
	Type          string    `json:"type"` // 整车 | 零单
	Origin        Location  `json:"origin"`
	Destination   Location  `json:"destination"`
	LoadingTime   string    `json:"loadingTime"`
	UnloadingTime string    `json:"unloadingTime"`
	CargoInfo     CargoInfo `json:"cargoInfo"`
	FreightRate   float64   `json:"freightRate"`
	Status        string    `json:"status"` // pending | in_transit | completed
	Location      Location  `json:"location"`
}

// FreightData GET /freight 的响应体
type FreightData struct {
	Vehicles []Vehicle `json:"vehicles"`
	Cargos   []Cargo   `json:"cargos"`
}
