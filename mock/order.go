package mock

import (
	"context"
	"strings"
	"time"

	"freight_service/api"
	"freight_service/dao/storage"
	"freight_service/model"
)

// loadOrders 读取整份运单集合，缺失或损坏时落空列表
func (r *Registry) loadOrders(ctx context.Context) ([]model.ShippingOrder, error) {
	var list []model.ShippingOrder
	found, err := r.store.Get(ctx, storage.KeyShippingOrders, &list)
	if err != nil {
		return nil, err
	}
	if !found || list == nil {
		list = []model.ShippingOrder{}
	}
	return list, nil
}

// handleSubmitOrder 提交发货：分配时间戳ID，初始状态为待支付，追加入存储
func (r *Registry) handleSubmitOrder(ctx context.Context, opts *api.Options) (interface{}, error) {
	var order model.ShippingOrder
	if err := decodeBody(opts.Body, &order); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}

	now := time.Now().UnixMilli()
	order.ID = now
	order.Status = model.OrderStatusPendingPayment
	order.CreatedAt = now

	list, err := r.loadOrders(ctx)
	if err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	list = append(list, order)
	if err := r.store.Set(ctx, storage.KeyShippingOrders, list); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	return model.OkEnvelope(order), nil
}

// handlePayOrder 支付：无论选择哪种方案，都将该运单置为待接单
// 未知ID返回业务失败，存储保持原样
func (r *Registry) handlePayOrder(ctx context.Context, opts *api.Options) (interface{}, error) {
	var req model.PayOrderReq
	if err := decodeBody(opts.Body, &req); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	if req.ID == 0 {
		return model.FailEnvelope("missing id"), nil
	}

	list, err := r.loadOrders(ctx)
	if err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	for i := range list {
		if list[i].ID == req.ID {
			list[i].Status = model.OrderStatusPendingAccept
			list[i].PaidAt = time.Now().UnixMilli()
			list[i].Plan = req.Plan
			if err := r.store.Set(ctx, storage.KeyShippingOrders, list); err != nil {
				return model.FailEnvelope(err.Error()), nil
			}
			return model.OkEnvelope(list[i]), nil
		}
	}
	return model.FailEnvelope("order not found"), nil
}

// handleCancelOrder 取消：将运单置为已取消，未知ID返回业务失败
func (r *Registry) handleCancelOrder(ctx context.Context, opts *api.Options) (interface{}, error) {
	var req model.CancelOrderReq
	if err := decodeBody(opts.Body, &req); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	if req.ID == 0 {
		return model.FailEnvelope("missing id"), nil
	}

	list, err := r.loadOrders(ctx)
	if err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	for i := range list {
		if list[i].ID == req.ID {
			list[i].Status = model.OrderStatusCancelled
			if err := r.store.Set(ctx, storage.KeyShippingOrders, list); err != nil {
				return model.FailEnvelope(err.Error()), nil
			}
			return model.OkEnvelope(list[i]), nil
		}
	}
	return model.FailEnvelope("order not found"), nil
}

// handleListOrders 运单列表
// 传入id时精确查询单条（短路其余过滤）；否则依次做关键词模糊匹配、
// 状态筛选与分页，total为分页前的命中总数
func (r *Registry) handleListOrders(ctx context.Context, opts *api.Options) (interface{}, error) {
	keyword := queryString(opts, "keyword")
	status := queryString(opts, "status")
	page := queryInt(opts, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(opts, "pageSize", 10)
	if pageSize < 1 {
		pageSize = 1
	}
	id := queryInt64(opts, "id", 0)

	list, err := r.loadOrders(ctx)
	if err != nil {
		return model.FailEnvelope(err.Error()), nil
	}

	// 按ID精确查询
	if id != 0 {
		for i := range list {
			if list[i].ID == id {
				return model.OkEnvelope(list[i]), nil
			}
		}
		return model.OkEnvelope(nil), nil
	}

	// 关键词模糊匹配：货名、起终点、描述
	if keyword != "" {
		kw := strings.ToLower(keyword)
		filtered := list[:0:0]
		for _, o := range list {
			text := strings.ToLower(strings.Join([]string{
				o.CargoName, o.Origin, o.Destination, o.Description,
			}, " "))
			if strings.Contains(text, kw) {
				filtered = append(filtered, o)
			}
		}
		list = filtered
	}

	// 状态筛选
	if status != "" {
		filtered := list[:0:0]
		for _, o := range list {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		list = filtered
	}

	total := len(list)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	pageList := list[start:end]
	if pageList == nil {
		pageList = []model.ShippingOrder{}
	}

	return model.OrderPage{
		OK:       true,
		Data:     pageList,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
