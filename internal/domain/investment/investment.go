package investment

import (
	"time"

	"Carteira/internal/pkg"

	"github.com/shopspring/decimal"
)

type Investment struct {
	Id            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Type          Type            `gorm:"type:varchar(20);not null;index:idx_investments_type" json:"type"`
	Symbol        string          `gorm:"type:varchar(20);not null" json:"symbol"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"purchasePrice"`
	PurchaseDate  pkg.Date        `gorm:"type:date;not null" json:"purchaseDate"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;not null" json:"-"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime;not null" json:"-"`
}

func (Investment) TableName() string {
	return "investments"
}

// TotalValue é o valor investido neste ativo: preço de compra x quantidade.
func (i *Investment) TotalValue() decimal.Decimal {
	return i.PurchasePrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PortfolioSummary é a visão agregada da carteira, calculada a cada leitura.
// Tipos sem nenhum ativo não aparecem em TotalByType.
type PortfolioSummary struct {
	TotalInvested decimal.Decimal            `json:"totalInvested"`
	TotalByType   map[string]decimal.Decimal `json:"totalByType"`
	AssetCount    int64                      `json:"assetCount"`
}
