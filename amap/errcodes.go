package amap

// 高德开放平台错误码（常见子集）
var errorCodes = map[string]string{
	"10000": "请求正常",
	"10001": "key不正确或过期",
	"10002": "没有权限使用相应的服务或者请求接口的路径拼写错误",
	"10003": "访问已超出日访问量",
	"10004": "单位时间内访问过于频繁",
	"10005": "IP白名单出错，发送请求的服务器IP不在IP白名单内",
	"10006": "绑定域名出错，发送请求的域名不在安全域名内",
	"10009": "请求key与绑定平台不符",
	"10010": "IP访问超限",
	"20000": "请求参数非法",
	"20001": "缺少必填参数",
	"20002": "请求协议非法",
	"20003": "其他未知错误",
	"20800": "规划点（包括起点、终点、途经点）不在中国陆地范围内",
	"20801": "规划点（包括起点、终点、途经点）附近搜不到路",
	"20802": "路线计算失败，通常是由于道路连通关系导致",
	"20803": "起点终点距离过长",
	"30000": "引擎返回数据异常",
	"30001": "服务响应失败",
	"30002": "请求服务响应超时",
	"30003": "读取服务结果超时",
}

func errorMessage(code string) string {
	if msg, ok := errorCodes[code]; ok {
		return msg
	}
	return "未知错误码: " + code
}
