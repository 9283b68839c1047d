package fx

import (
	"Carteira/internal/domain/investment"
	"Carteira/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newInvestmentService,
	),
)

func newInvestmentService(repo *infrastructure.InvestmentRepository) *investment.Service {
	return investment.NewService(repo)
}
