package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight_service/api"
	"freight_service/dao/storage"
	"freight_service/errno"
	"freight_service/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*api.Client, *mock.Registry) {
	t.Helper()
	reg := mock.NewRegistry(storage.NewMemStore())
	return api.New("http://localhost:3000", true, reg), reg
}

func TestMockIdentityPassThrough(t *testing.T) {
	client, reg := newMockClient(t)

	want := map[string]interface{}{"hello": "world"}
	reg.Register(http.MethodGet, "/custom", func(ctx context.Context, opts *api.Options) (interface{}, error) {
		return want, nil
	})

	got, err := client.Get(context.Background(), "/custom", nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMockHandlerErrorPassThrough(t *testing.T) {
	client, reg := newMockClient(t)

	wantErr := errors.New("boom")
	reg.Register(http.MethodPost, "/explode", func(ctx context.Context, opts *api.Options) (interface{}, error) {
		return nil, wantErr
	})

	_, err := client.Post(context.Background(), "/explode", nil)
	assert.ErrorIs(t, err, wantErr)
}

func TestMockNotFoundNamesKey(t *testing.T) {
	client, _ := newMockClient(t)

	_, err := client.Get(context.Background(), "/no/such/route", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrMockNotFound)
	assert.Contains(t, err.Error(), "GET /no/such/route")

	_, err = client.Delete(context.Background(), "/no/such/route", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DELETE /no/such/route")
}

func TestMockOverridePrecedence(t *testing.T) {
	// 默认关mock，覆盖开启后生效
	reg := mock.NewRegistry(storage.NewMemStore())
	client := api.New("http://localhost:3000", false, reg)
	assert.False(t, client.MockEnabled())

	client.SetMockOverride(true)
	assert.True(t, client.MockEnabled())

	client.ClearMockOverride()
	assert.False(t, client.MockEnabled())

	// 默认开mock，覆盖关闭后生效
	client2 := api.New("http://localhost:3000", true, reg)
	assert.True(t, client2.MockEnabled())

	client2.SetMockOverride(false)
	assert.False(t, client2.MockEnabled())

	client2.ClearMockOverride()
	assert.True(t, client2.MockEnabled())
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "http://h/p?a=1",
		api.BuildURL("http://h", "/p", map[string]interface{}{"a": 1, "b": nil}))

	// host尾斜杠与path头斜杠只去一个
	assert.Equal(t, "http://h/p", api.BuildURL("http://h/", "/p", nil))
	assert.Equal(t, "http://h/p", api.BuildURL("http://h", "p", nil))

	// 空query不带问号
	assert.Equal(t, "http://h/p", api.BuildURL("http://h", "/p", map[string]interface{}{}))
	assert.Equal(t, "http://h/p", api.BuildURL("http://h", "/p", map[string]interface{}{"x": nil}))

	// 值统一转字符串
	assert.Equal(t, "http://h/p?lat=38.010232&ok=true",
		api.BuildURL("http://h", "/p", map[string]interface{}{"lat": 38.010232, "ok": true}))
}

func TestRealModeSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/things", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"data":[1,2,3]}`))
	}))
	defer ts.Close()

	client := api.New(ts.URL, false, nil)
	got, err := client.Get(context.Background(), "/api/v1/things", &api.Options{
		Query: map[string]interface{}{"page": 1},
	})
	require.NoError(t, err)

	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, m["ok"])
}

func TestRealModeFailureCarriesDetails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream down"}`))
	}))
	defer ts.Close()

	client := api.New(ts.URL, false, nil)
	_, err := client.Post(context.Background(), "/submit", &api.Options{Body: map[string]int{"a": 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrRequestFailed)
	assert.Contains(t, err.Error(), "POST")
	assert.Contains(t, err.Error(), "/submit")
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestDoIntoDecodesMockResult(t *testing.T) {
	client, reg := newMockClient(t)
	reg.Register(http.MethodGet, "/point", func(ctx context.Context, opts *api.Options) (interface{}, error) {
		return map[string]float64{"lat": 38.01, "lng": 114.48}, nil
	})

	var out struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	err := client.DoInto(context.Background(), http.MethodGet, "/point", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 38.01, out.Lat)
	assert.Equal(t, 114.48, out.Lng)
}
