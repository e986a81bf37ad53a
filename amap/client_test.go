package amap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"freight_service/amap"
	"freight_service/config"
	"freight_service/errno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *amap.Client {
	return amap.New(&config.AmapConfig{
		Key:         "test-key",
		BaseURL:     baseURL,
		MaxAttempts: 3,
		RetryDelay:  1, // 测试里不等真实的重试间隔
	})
}

func TestRetryThenSuccess(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"status":"1","info":"OK","infocode":"10000",
			"route":{"origin":"116.481028,39.989643","destination":"116.434446,39.90816",
			"paths":[{"distance":"10920","duration":"1260","tolls":"0","strategy":"速度最快"}]}}`))
	}))
	defer ts.Close()

	plan, err := newTestClient(ts.URL).DrivingRoute(context.Background(),
		amap.Coordinate{Longitude: 116.481028, Latitude: 39.989643},
		amap.Coordinate{Longitude: 116.434446, Latitude: 39.90816})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, int64(10920), plan.DistanceM)
	assert.Equal(t, int64(1260), plan.DurationS)
	assert.Equal(t, "速度最快", plan.Strategy)
	assert.Equal(t, 10.9, plan.DistanceKm())
}

func TestRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).InputTips(context.Background(), "石家庄", "河北")
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrAmapRequest)
	assert.Equal(t, int32(3), calls.Load())
}

func TestBusinessErrorCarriesInfocode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","info":"INVALID_USER_KEY","infocode":"10001"}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Geocode(context.Background(), "中山东路", "石家庄")
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrAmapRequest)
	assert.Contains(t, err.Error(), "10001")
}

func TestNoRouteFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"1","route":{"origin":"","destination":"","paths":[]}}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).WalkingRoute(context.Background(),
		amap.Coordinate{Longitude: 116.48, Latitude: 39.98},
		amap.Coordinate{Longitude: 116.43, Latitude: 39.90})
	assert.ErrorIs(t, err, errno.ErrNoRoute)
}

func TestInvalidCoordinateRejectedBeforeRequest(t *testing.T) {
	// baseURL随便填：非法坐标在发请求前就被拦下
	_, err := newTestClient("http://127.0.0.1:0").DrivingRoute(context.Background(),
		amap.Coordinate{Longitude: 200, Latitude: 39.98},
		amap.Coordinate{Longitude: 116.43, Latitude: 39.90})
	assert.ErrorIs(t, err, errno.ErrInvalidCoordinate)
}

func TestInputTipsFlexFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/assistant/inputtips", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("datatype"))
		// 行政区类提示的id/address/location下发空数组
		w.Write([]byte(`{"status":"1","tips":[
			{"id":"B0FFFAB1J2","name":"北国商城","district":"河北省石家庄市长安区","address":"中山东路188号","location":"114.516562,38.046183"},
			{"id":[],"name":"石家庄市","district":"河北省","address":[],"location":[]}
		]}`))
	}))
	defer ts.Close()

	tips, err := newTestClient(ts.URL).InputTips(context.Background(), "石家庄", "河北")
	require.NoError(t, err)
	require.Len(t, tips, 2)

	assert.Equal(t, "B0FFFAB1J2", tips[0].ID)
	assert.Equal(t, "北国商城", tips[0].Name)
	assert.True(t, tips[0].HasCoord)
	assert.InDelta(t, 114.516562, tips[0].Location.Longitude, 1e-9)

	assert.Equal(t, "", tips[1].ID)
	assert.Equal(t, "", tips[1].Address)
	assert.False(t, tips[1].HasCoord)
}

func TestReverseGeocodeFlexFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/geocode/regeo", r.URL.Path)
		assert.Equal(t, "114.484472,38.010232", r.URL.Query().Get("location"))
		// 直辖市的city字段下发空数组
		w.Write([]byte(`{"status":"1","regeocode":{
			"formatted_address":"河北省石家庄市桥西区中山西路",
			"addressComponent":{"province":"河北省","city":"石家庄市","district":"桥西区"}}}`))
	}))
	defer ts.Close()

	got, err := newTestClient(ts.URL).ReverseGeocode(context.Background(),
		amap.Coordinate{Longitude: 114.484472, Latitude: 38.010232})
	require.NoError(t, err)
	assert.Equal(t, "河北省石家庄市桥西区中山西路", got.FormattedAddress)
	assert.Equal(t, "石家庄市", got.City)
}

func TestParseCoordinate(t *testing.T) {
	c, err := amap.ParseCoordinate("114.516562,38.046183")
	require.NoError(t, err)
	assert.Equal(t, amap.Coordinate{Longitude: 114.516562, Latitude: 38.046183}, c)
	assert.Equal(t, "114.516562,38.046183", c.String())

	for _, s := range []string{"", "abc", "114.5", "114.5,abc", "200,38", "114.5,95"} {
		_, err := amap.ParseCoordinate(s)
		assert.ErrorIs(t, err, errno.ErrInvalidCoordinate, "input: %q", s)
	}
}
