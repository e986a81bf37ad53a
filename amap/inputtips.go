package amap

import (
	"context"
	"encoding/json"
)

// Tip 一条输入提示
type Tip struct {
	ID       string
	Name     string
	District string
	Address  string
	Location Coordinate
	HasCoord bool // 部分提示（如行政区）不带坐标
}

type inputTipsResp struct {
	Tips []struct {
		ID       json.RawMessage `json:"id"`
		Name     string          `json:"name"`
		District string          `json:"district"`
		Address  json.RawMessage `json:"address"`
		Location json.RawMessage `json:"location"`
	} `json:"tips"`
}

// InputTips 关键词输入提示（地点联想）
func (c *Client) InputTips(ctx context.Context, keywords, city string) ([]Tip, error) {
	params := map[string]string{
		"keywords": keywords,
		"city":     city,
		"datatype": "all",
		"output":   "json",
	}
	var resp inputTipsResp
	if err := c.get(ctx, "/v3/assistant/inputtips", params, &resp); err != nil {
		return nil, err
	}

	tips := make([]Tip, 0, len(resp.Tips))
	for _, t := range resp.Tips {
		tip := Tip{
			ID:       flexString(t.ID),
			Name:     t.Name,
			District: t.District,
			Address:  flexString(t.Address),
		}
		if locStr := flexString(t.Location); locStr != "" {
			if loc, err := ParseCoordinate(locStr); err == nil {
				tip.Location = loc
				tip.HasCoord = true
			}
		}
		tips = append(tips, tip)
	}
	return tips, nil
}
