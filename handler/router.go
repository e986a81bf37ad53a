package handler

import (
	"net/http"

	"freight_service/api"
	"freight_service/mock"
	"freight_service/model"

	"github.com/gin-gonic/gin"
)

// NewRouter 把mock注册表挂载成一个本地HTTP后端
// 客户端关掉mock开关、把api_host指到本服务，就能走真实网络链路联调
func NewRouter(reg *mock.Registry, mode string) *gin.Engine {
	if mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestID(), GinLogger(), GinRecovery())

	for _, rt := range reg.Routes() {
		handler, _ := reg.Lookup(rt.Method, rt.Path)
		r.Handle(rt.Method, rt.Path, wrap(handler))
	}
	return r
}

// wrap 把HTTP请求转成mock处理函数的入参，并把结果按JSON写回
func wrap(h api.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := &api.Options{
			Query:   make(map[string]interface{}),
			Headers: make(map[string]string),
		}
		for k, vs := range c.Request.URL.Query() {
			if len(vs) > 0 {
				opts.Query[k] = vs[0]
			}
		}
		for k := range c.Request.Header {
			opts.Headers[k] = c.GetHeader(k)
		}
		if c.Request.Body != nil && c.Request.ContentLength != 0 {
			var body interface{}
			if err := c.ShouldBindJSON(&body); err != nil {
				c.JSON(http.StatusBadRequest, model.FailEnvelope("invalid json body: "+err.Error()))
				return
			}
			opts.Body = body
		}

		result, err := h(c.Request.Context(), opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, model.FailEnvelope(err.Error()))
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
