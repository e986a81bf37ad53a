package model

// QuoteReq AI运价推荐请求
// 里程优先级：DistanceKm > 起终点坐标球面距离 > 默认值
type QuoteReq struct {
	DistanceKm           *float64 `json:"distanceKm,omitempty"`
	OriginName           string   `json:"originName,omitempty"`
	OriginLatitude       *float64 `json:"originLatitude,omitempty"`
	OriginLongitude      *float64 `json:"originLongitude,omitempty"`
	DestinationName      string   `json:"destinationName,omitempty"`
	DestinationLatitude  *float64 `json:"destinationLatitude,omitempty"`
	DestinationLongitude *float64 `json:"destinationLongitude,omitempty"`
	VehicleType          string   `json:"vehicleType,omitempty"` // mini|4.2|6.8|9.6|13|17.5
	CargoName            string   `json:"cargoName,omitempty"`
	Weight               *float64 `json:"weight,omitempty"`
	Volume               *float64 `json:"volume,omitempty"`
}

// Quote AI运价推荐结果
type Quote struct {
	Price      int64   `json:"price"`
	Unit       string  `json:"unit"`
	RatePerKm  float64 `json:"ratePerKm"`
	DistanceKm float64 `json:"distanceKm"`
	Note       string  `json:"note"`
}
