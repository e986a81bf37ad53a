package model

// Envelope 业务层统一响应体
// 与传输层状态码无关：mock在模拟一个会用JSON body表达4xx类失败的后端，
// 所以业务失败体现在 ok=false + error 文案上，而不是抛错
type Envelope struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data"`
	Error string      `json:"error,omitempty"`
}

// OrderPage 运单列表响应：total 为分页前的命中总数
type OrderPage struct {
	OK       bool            `json:"ok"`
	Data     []ShippingOrder `json:"data"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

func OkEnvelope(data interface{}) Envelope {
	return Envelope{OK: true, Data: data}
}

func FailEnvelope(msg string) Envelope {
	return Envelope{OK: false, Error: msg}
}
