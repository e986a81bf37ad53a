package mock

import (
	"context"
	"testing"

	"freight_service/api"
	"freight_service/dao/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteKeyRoundTrip(t *testing.T) {
	r := Route{Method: "GET", Path: "/shipping/orders"}
	assert.Equal(t, "GET /shipping/orders", r.Key())

	parsed, err := ParseKey("POST /pricing/quote")
	require.NoError(t, err)
	assert.Equal(t, Route{Method: "POST", Path: "/pricing/quote"}, parsed)
}

func TestParseKeyRejectsMalformed(t *testing.T) {
	// 空串、缺空格、path无前导斜杠、method为空
	for _, key := range []string{"", "GET", "GET/freight", "GET freight", " /freight"} {
		_, err := ParseKey(key)
		assert.Error(t, err, "key: %q", key)
	}
}

func TestRegisterOverride(t *testing.T) {
	reg := NewRegistry(storage.NewMemStore())

	reg.Register("GET", "/status", func(ctx context.Context, opts *api.Options) (interface{}, error) {
		return "overridden", nil
	})
	h, ok := reg.Lookup("GET", "/status")
	require.True(t, ok)
	got, err := h(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "overridden", got)
}

func TestRoutesSortedAndComplete(t *testing.T) {
	reg := NewRegistry(storage.NewMemStore())
	routes := reg.Routes()

	keys := make([]string, 0, len(routes))
	for _, rt := range routes {
		keys = append(keys, rt.Key())
	}
	assert.IsNonDecreasing(t, keys)

	for _, want := range []string{
		"GET /freight",
		"GET /shipping/orders",
		"GET /status",
		"GET /user/cooperations",
		"GET /user/profile",
		"POST /pricing/quote",
		"POST /shipping/orders",
		"POST /shipping/orders/cancel",
		"POST /shipping/orders/pay",
		"POST /user/membership/purchase",
		"POST /user/verify",
		"POST /user/wechat/bind",
	} {
		assert.Contains(t, keys, want)
	}
}

func TestQueryFloatSemantics(t *testing.T) {
	opts := &api.Options{Query: map[string]interface{}{
		"f":     1.5,
		"i":     3,
		"s":     "2.5",
		"zero":  0,
		"szero": "0",
		"junk":  "abc",
		"nil":   nil,
	}}

	assert.Equal(t, 1.5, queryFloat(opts, "f", 9))
	assert.Equal(t, 3.0, queryFloat(opts, "i", 9))
	assert.Equal(t, 2.5, queryFloat(opts, "s", 9))
	// 0与缺失、无法解析一样落到默认值
	assert.Equal(t, 9.0, queryFloat(opts, "zero", 9))
	assert.Equal(t, 9.0, queryFloat(opts, "szero", 9))
	assert.Equal(t, 9.0, queryFloat(opts, "junk", 9))
	assert.Equal(t, 9.0, queryFloat(opts, "nil", 9))
	assert.Equal(t, 9.0, queryFloat(opts, "missing", 9))
	assert.Equal(t, 9.0, queryFloat(nil, "f", 9))
}

func TestQueryString(t *testing.T) {
	opts := &api.Options{Query: map[string]interface{}{
		"s":   "  钢材 ",
		"n":   42,
		"nil": nil,
	}}
	assert.Equal(t, "钢材", queryString(opts, "s"))
	assert.Equal(t, "42", queryString(opts, "n"))
	assert.Equal(t, "", queryString(opts, "nil"))
	assert.Equal(t, "", queryString(opts, "missing"))
	assert.Equal(t, "", queryString(nil, "s"))
}
