package fx

import (
	"Carteira/config"
	"Carteira/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newInvestmentRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newInvestmentRepository(db *gorm.DB) *infrastructure.InvestmentRepository {
	return &infrastructure.InvestmentRepository{DB: db}
}
