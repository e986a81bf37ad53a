package model

// 运单状态
// 本端只建模 待支付 -> {待接单(支付), 已取消(取消)} 两个迁移，
// 运输中/已完成等后续状态由真实后端写入，这里仅作展示值
const (
	OrderStatusPendingPayment = "待支付"
	OrderStatusPendingAccept  = "待接单"
	OrderStatusCancelled      = "已取消"
)

// ShippingOrder 发货运单
// ID 由提交时刻的毫秒时间戳生成，协作式调度下同一会话内不会碰撞
type ShippingOrder struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"createdAt"`
	PaidAt    int64  `json:"paidAt,omitempty"`
	Plan      string `json:"plan,omitempty"`

	// 以下为调用方在提交时填入的发货信息
	Origin               string   `json:"origin,omitempty"`
	OriginLatitude       *float64 `json:"originLatitude,omitempty"`
	OriginLongitude      *float64 `json:"originLongitude,omitempty"`
	Destination          string   `json:"destination,omitempty"`
	DestinationLatitude  *float64 `json:"destinationLatitude,omitempty"`
	DestinationLongitude *float64 `json:"destinationLongitude,omitempty"`
	CargoName            string   `json:"cargoName,omitempty"`
	Description          string   `json:"description,omitempty"`
	Weight               float64  `json:"weight,omitempty"`
	Volume               float64  `json:"volume,omitempty"`
	VehicleType          string   `json:"vehicleType,omitempty"`
	PriceUnit            string   `json:"priceUnit,omitempty"`
	Price                float64  `json:"price,omitempty"`
	LoadingTime          string   `json:"loadingTime,omitempty"`
	UnloadingTime        string   `json:"unloadingTime,omitempty"`
}

// PayOrderReq 支付请求体
type PayOrderReq struct {
	ID   int64  `json:"id"`
	Plan string `json:"plan,omitempty"`
}

// CancelOrderReq 取消请求体
type CancelOrderReq struct {
	ID int64 `json:"id"`
}
