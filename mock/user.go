package mock

import (
	"context"
	"math"
	"math/rand"
	"time"

	"freight_service/api"
	"freight_service/dao/storage"
	"freight_service/model"

	"go.uber.org/zap"
)

// handleGetProfile 读取用户资料，首次访问时写入默认值
// 返回裸的资料对象（不带envelope），与列表页的消费方式一致
func (r *Registry) handleGetProfile(ctx context.Context, opts *api.Options) (interface{}, error) {
	var profile model.UserProfile
	found, err := r.store.Get(ctx, storage.KeyUserProfile, &profile)
	if err == nil && found {
		return profile, nil
	}

	profile = model.DefaultProfile()
	if err := r.store.Set(ctx, storage.KeyUserProfile, profile); err != nil {
		// 写入失败不影响本次返回，下次读取会再补
		zap.L().Warn("写入默认用户资料失败", zap.Error(err))
	}
	return profile, nil
}

// handleBindWechat 绑定微信号
func (r *Registry) handleBindWechat(ctx context.Context, opts *api.Options) (interface{}, error) {
	var req model.BindWechatReq
	if err := decodeBody(opts.Body, &req); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	if req.WechatID == "" {
		req.WechatID = "wxid_demo_user"
	}

	var profile model.UserProfile
	if _, err := r.store.Get(ctx, storage.KeyUserProfile, &profile); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	profile.WechatID = req.WechatID
	if err := r.store.Set(ctx, storage.KeyUserProfile, profile); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	return model.OkEnvelope(profile), nil
}

// handleVerify 实名认证（mock下直接置位）
func (r *Registry) handleVerify(ctx context.Context, opts *api.Options) (interface{}, error) {
	var profile model.UserProfile
	if _, err := r.store.Get(ctx, storage.KeyUserProfile, &profile); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	profile.Verified = true
	if err := r.store.Set(ctx, storage.KeyUserProfile, profile); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	return model.OkEnvelope(profile), nil
}

// handlePurchaseMembership 购买会员
func (r *Registry) handlePurchaseMembership(ctx context.Context, opts *api.Options) (interface{}, error) {
	var req model.PurchaseMembershipReq
	if err := decodeBody(opts.Body, &req); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	if req.Level == "" {
		return model.FailEnvelope("missing level"), nil
	}

	var profile model.UserProfile
	if _, err := r.store.Get(ctx, storage.KeyUserProfile, &profile); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	profile.MembershipLevel = req.Level
	if err := r.store.Set(ctx, storage.KeyUserProfile, profile); err != nil {
		return model.FailEnvelope(err.Error()), nil
	}
	return model.OkEnvelope(profile), nil
}

var (
	coopPartners = []string{"华运物流", "北辰货运", "天行运输", "安达物流", "盛达供应链", "龙腾运输", "星辰物流"}
	coopProjects = []string{"城市配送", "冷链运输", "危化品运输", "大件运输", "建材运输"}
	coopDrivers  = []string{"张师傅", "李师傅", "王师傅", "赵师傅", "刘师傅", "陈师傅"}
	coopModels   = []string{"小面", "中面", "大面", "单排", "4.2", "6.8", "9.6", "13", "17.5"}
	coopBrands   = []string{"解放", "东风", "重汽", "陕汽", "福田", "金杯"}
)

// handleCooperations 合作记录：首次读取时生成一批样例数据并落库，之后原样返回
func (r *Registry) handleCooperations(ctx context.Context, opts *api.Options) (interface{}, error) {
	var saved []model.CooperationRecord
	found, err := r.store.Get(ctx, storage.KeyUserCooperations, &saved)
	if err == nil && found && len(saved) > 0 {
		return saved, nil
	}

	list := make([]model.CooperationRecord, 0, 8)
	for i := 1; i <= 8; i++ {
		ts := time.Now().UnixMilli() - int64(i)*86400_000
		partner := coopPartners[i%len(coopPartners)]
		project := coopProjects[i%len(coopProjects)]
		vModel := coopModels[i%len(coopModels)]
		brand := coopBrands[i%len(coopBrands)]
		plate := randomPlate()
		list = append(list, model.CooperationRecord{
			ID:           30000 + int64(i),
			Partner:      partner,
			Project:      project,
			Date:         ts,
			Amount:       math.Round(500 + rand.Float64()*9500),
			Summary:      partner + " · " + project,
			DriverName:   coopDrivers[i%len(coopDrivers)],
			DriverPhone:  randomPhone(),
			VehicleType:  vModel,
			VehicleBrand: brand,
			LicensePlate: plate,
			VehicleInfo:  brand + " " + vModel + " · " + plate,
			CoopCount:    1 + rand.Intn(20),
			LastCoopAt:   ts, // 最近一次合作时间使用该条记录时间
		})
	}

	if err := r.store.Set(ctx, storage.KeyUserCooperations, list); err != nil {
		zap.L().Warn("写入合作记录失败", zap.Error(err))
	}
	return list, nil
}
