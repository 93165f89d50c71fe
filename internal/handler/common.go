package handler

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "go-gin-checkout/pkg/app_errors"
	"go-gin-checkout/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return err
	}
	return nil
}

// ParamID 解析路徑上的正整數 id，失敗時直接回應 400
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}

// errorStatus 將錯誤對應到 HTTP 狀態碼
func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrInvalidQuantity),
		errors.Is(err, apperrors.ErrProductUnavailable),
		errors.Is(err, apperrors.ErrEmptyCart),
		errors.Is(err, apperrors.ErrInvalidTicketStatus):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrProductNotFound),
		errors.Is(err, apperrors.ErrCartNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrTicketNotFound),
		errors.Is(err, apperrors.ErrProductNotInCart):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInsufficientStock),
		errors.Is(err, apperrors.ErrCheckoutInProgress),
		errors.Is(err, apperrors.ErrDuplicateProduct),
		errors.Is(err, apperrors.ErrDuplicateEmail):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError 記錄並回應錯誤；5xx 不回傳內部訊息
func respondError(c *gin.Context, err error, operation string) {
	log := logger.FromContext(c.Request.Context(), "handler").With(zap.String("operation", operation), zap.Error(err))
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("Unexpected error")
		c.JSON(status, gin.H{
			"error": "Internal server error",
		})
		return
	}
	log.Warn("Request rejected", zap.Int("status", status))
	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

func respondSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
