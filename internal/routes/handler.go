package routes

import (
	"Carteira/internal/domain/investment"
	appErrors "Carteira/internal/errors"
	"Carteira/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	InvestmentService investment.Service
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if requestID := c.GetString("request_id"); requestID != "" {
		event = event.Str("request_id", requestID)
	}
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
