package investment

import (
	"context"
	"strings"
	"time"

	appErrors "Carteira/internal/errors"
	"Carteira/internal/pkg"

	"github.com/shopspring/decimal"
)

// CreateInput carrega todos os campos de um ativo; também é usado no update,
// que substitui o registro inteiro (não há update parcial).
type CreateInput struct {
	Type          string
	Symbol        string
	Quantity      int
	PurchasePrice decimal.Decimal
	PurchaseDate  pkg.Date
}

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateInvestment(ctx context.Context, input CreateInput) (*Investment, error) {
	entity, err := s.buildInvestment(input)
	if err != nil {
		return nil, err
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

// ListInvestments retorna todos os ativos ou, com filtro, apenas os do tipo
// informado. O filtro é case-insensitive; um tipo desconhecido resulta em
// lista vazia, sem erro.
func (s *Service) ListInvestments(ctx context.Context, typeFilter string) ([]*Investment, error) {
	if typeFilter == "" {
		return s.Repository.GetAll(ctx)
	}

	investmentType, ok := ParseType(typeFilter)
	if !ok {
		return []*Investment{}, nil
	}

	return s.Repository.GetByType(ctx, investmentType)
}

func (s *Service) GetInvestment(ctx context.Context, id uint) (*Investment, error) {
	return s.Repository.GetById(ctx, id)
}

func (s *Service) UpdateInvestment(ctx context.Context, id uint, input CreateInput) (*Investment, error) {
	existing, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildInvestment(input)
	if err != nil {
		return nil, err
	}

	existing.Type = updated.Type
	existing.Symbol = updated.Symbol
	existing.Quantity = updated.Quantity
	existing.PurchasePrice = updated.PurchasePrice
	existing.PurchaseDate = updated.PurchaseDate
	existing.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return existing, nil
}

func (s *Service) DeleteInvestment(ctx context.Context, id uint) error {
	exists, err := s.Repository.ExistsById(ctx, id)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if !exists {
		return appErrors.ErrInvestmentNotFound
	}

	return s.Repository.Delete(ctx, id)
}

// PortfolioSummary calcula os agregados da carteira em uma única varredura.
// Toda a soma é feita em decimal exato; tipos sem ativos ficam de fora do
// mapa por tipo.
func (s *Service) PortfolioSummary(ctx context.Context) (*PortfolioSummary, error) {
	all, err := s.Repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	totalInvested := decimal.Zero
	totalByType := make(map[string]decimal.Decimal)

	for _, inv := range all {
		value := inv.TotalValue()
		totalInvested = totalInvested.Add(value)
		typeName := string(inv.Type)
		totalByType[typeName] = totalByType[typeName].Add(value)
	}

	return &PortfolioSummary{
		TotalInvested: totalInvested,
		TotalByType:   totalByType,
		AssetCount:    int64(len(all)),
	}, nil
}

func (s *Service) buildInvestment(input CreateInput) (*Investment, error) {
	investmentType, ok := ParseType(input.Type)
	if !ok {
		return nil, appErrors.NewValidationError("type", "tipo de investimento inválido")
	}

	symbol := strings.TrimSpace(input.Symbol)
	if symbol == "" {
		return nil, appErrors.NewValidationError("symbol", "é obrigatório")
	}

	if input.Quantity < 1 {
		return nil, appErrors.NewValidationError("quantity", "deve ser maior ou igual a 1")
	}

	if input.PurchasePrice.IsNegative() {
		return nil, appErrors.NewValidationError("purchase_price", "não pode ser negativo")
	}

	return &Investment{
		Type:          investmentType,
		Symbol:        symbol,
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  input.PurchaseDate,
	}, nil
}
