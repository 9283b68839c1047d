package routes

import (
	"fmt"
	"net/http"

	"Carteira/internal/contracts"
	appErrors "Carteira/internal/errors"
	"Carteira/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateInvestment(c *gin.Context) {
	var body contracts.InvestmentCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	inv, err := h.InvestmentService.CreateInvestment(ctx, body.ToInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/investments/%d", inv.Id))
	c.JSON(http.StatusCreated, contracts.NewInvestmentResponse(inv))
}

func (h *Handler) ListInvestments(c *gin.Context) {
	typeFilter := c.Query("type")

	ctx := c.Request.Context()
	investments, err := h.InvestmentService.ListInvestments(ctx, typeFilter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewInvestmentListResponse(investments))
}

func (h *Handler) GetInvestment(c *gin.Context) {
	id, err := pkg.ParseID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	inv, err := h.InvestmentService.GetInvestment(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewInvestmentResponse(inv))
}

func (h *Handler) UpdateInvestment(c *gin.Context) {
	id, err := pkg.ParseID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.InvestmentCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	inv, err := h.InvestmentService.UpdateInvestment(ctx, id, body.ToInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewInvestmentResponse(inv))
}

func (h *Handler) DeleteInvestment(c *gin.Context) {
	id, err := pkg.ParseID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.InvestmentService.DeleteInvestment(ctx, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetPortfolioSummary(c *gin.Context) {
	ctx := c.Request.Context()
	summary, err := h.InvestmentService.PortfolioSummary(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
