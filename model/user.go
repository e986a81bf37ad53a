package model

// 会员级别
const (
	MembershipNone    = "none"
	MembershipMonthly = "monthly"
	MembershipAnnual  = "annual"
)

// UserProfile 用户资料，单机唯一一份，首次读取时懒创建
type UserProfile struct {
	AvatarURL       string  `json:"avatarUrl"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	WechatID        string  `json:"wechatId"`
	Verified        bool    `json:"verified"`
	MembershipLevel string  `json:"membershipLevel"` // none | monthly | annual
	MonthlyPrice    float64 `json:"monthlyPrice"`
	AnnualPrice     float64 `json:"annualPrice"`
}

// DefaultProfile 首次访问时写入的默认资料
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:            "游客",
		Phone:           "138********",
		MembershipLevel: MembershipNone,
		MonthlyPrice:    99,
		AnnualPrice:     899,
	}
}

// CooperationRecord 合作记录，"我的"页面下方与列表页展示
type CooperationRecord struct {
	ID           int64   `json:"id"`
	Partner      string  `json:"partner"`
	Project      string  `json:"project"`
	Date         int64   `json:"date"`
	Amount       float64 `json:"amount"`
	Summary      string  `json:"summary"`
	DriverName   string  `json:"driverName"`
	DriverPhone  string  `json:"driverPhone"`
	VehicleType  string  `json:"vehicleType"`
	VehicleBrand string  `json:"vehicleBrand"`
	LicensePlate string  `json:"licensePlate"`
	VehicleInfo  string  `json:"vehicleInfo"`
	CoopCount    int     `json:"coopCount"`
	LastCoopAt   int64   `json:"lastCoopAt"`
}

// BindWechatReq 绑定微信号请求体
type BindWechatReq struct {
	WechatID string `json:"wechatId"`
}

// PurchaseMembershipReq 购买会员请求体
type PurchaseMembershipReq struct {
	Level string `json:"level"` // monthly | annual
}
