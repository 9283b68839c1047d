package contracts

import (
	"Carteira/internal/domain/investment"
	"Carteira/internal/pkg"

	"github.com/shopspring/decimal"
)

type InvestmentCreateRequest struct {
	Type          string          `json:"type" binding:"required"`
	Symbol        string          `json:"symbol" binding:"required"`
	Quantity      int             `json:"quantity" binding:"required,gte=1"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  pkg.Date        `json:"purchaseDate"`
}

func (r InvestmentCreateRequest) ToInput() investment.CreateInput {
	return investment.CreateInput{
		Type:          r.Type,
		Symbol:        r.Symbol,
		Quantity:      r.Quantity,
		PurchasePrice: r.PurchasePrice,
		PurchaseDate:  r.PurchaseDate,
	}
}

// InvestmentResponse é a forma de resposta de um ativo, com o valor total
// derivado no momento da leitura.
type InvestmentResponse struct {
	Id            uint            `json:"id"`
	Type          string          `json:"type"`
	Symbol        string          `json:"symbol"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  pkg.Date        `json:"purchaseDate"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

func NewInvestmentResponse(inv *investment.Investment) InvestmentResponse {
	return InvestmentResponse{
		Id:            inv.Id,
		Type:          string(inv.Type),
		Symbol:        inv.Symbol,
		Quantity:      inv.Quantity,
		PurchasePrice: inv.PurchasePrice,
		PurchaseDate:  inv.PurchaseDate,
		TotalValue:    inv.TotalValue(),
	}
}

func NewInvestmentListResponse(investments []*investment.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(investments))
	for _, inv := range investments {
		out = append(out, NewInvestmentResponse(inv))
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}
