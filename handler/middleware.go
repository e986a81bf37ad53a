package handler

import (
	"net/http"
	"strconv"
	"time"

	"freight_service/third_party/snowflake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ctxKeyRequestID = "request_id"

// RequestID 为每个请求分配一个雪花ID，写入响应头便于排查
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := snowflake.GenID()
		c.Set(ctxKeyRequestID, id)
		c.Header("X-Request-Id", strconv.FormatInt(id, 10))
		c.Next()
	}
}

// GinLogger 用zap记录访问日志
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		c.Next()

		zap.L().Info(path,
			zap.Int64("request_id", c.GetInt64(ctxKeyRequestID)),
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("cost", time.Since(start)),
		)
	}
}

// GinRecovery panic兜底，打日志并返回500
func GinRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				zap.L().Error("panic recovered",
					zap.Int64("request_id", c.GetInt64(ctxKeyRequestID)),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", err),
					zap.Stack("stack"),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
