package handler

import (
	"net/http"
	"strings"
	"time"

	"go-gin-checkout/config"
	"go-gin-checkout/internal/model"
	"go-gin-checkout/pkg/auth"
	"go-gin-checkout/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	principalKey    = "principal"
)

// RequestID 產生或沿用 request id，並放入 request 範圍的 logger
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(requestIDHeader, rid)

		l := logger.L.With(zap.String("request_id", rid))
		c.Request = c.Request.WithContext(logger.ContextWithLogger(c.Request.Context(), l))
		c.Next()
	}
}

// AccessLog 請求結束後記錄狀態碼與耗時
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		logger.FromContext(c.Request.Context(), "http").Info("request",
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Auth 驗證 Bearer token，成功時放入 Principal
func Auth(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		token := raw
		if strings.HasPrefix(strings.ToLower(token), "bearer ") {
			token = strings.TrimSpace(token[7:])
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing credentials",
			})
			return
		}

		claims, err := auth.ParseAccessToken(cfg, token)
		if err != nil {
			logger.FromContext(c.Request.Context(), "handler").Info("invalid token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(principalKey, model.Principal{
			UserID: claims.UserID,
			CartID: claims.CartID,
			Role:   claims.Role,
		})
		c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(),
			zap.Int("principal_id", claims.UserID),
			zap.String("role", string(claims.Role)),
		))
		c.Next()
	}
}

// RequireAdmin 必須在 Auth 之後
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalFrom(c)
		if !ok || !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin role required",
			})
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) (model.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return model.Principal{}, false
	}
	p, ok := v.(model.Principal)
	return p, ok
}

// mustPrincipal 路由未掛 Auth 時回應 401
func mustPrincipal(c *gin.Context) (model.Principal, bool) {
	p, ok := principalFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Missing credentials",
		})
	}
	return p, ok
}
