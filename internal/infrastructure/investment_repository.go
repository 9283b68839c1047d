package infrastructure

import (
	"context"
	"errors"

	"Carteira/internal/domain/investment"
	appErrors "Carteira/internal/errors"

	"gorm.io/gorm"
)

type InvestmentRepository struct {
	DB *gorm.DB
}

var _ investment.Repository = (*InvestmentRepository)(nil)

func (r *InvestmentRepository) Create(ctx context.Context, inv *investment.Investment) error {
	return r.DB.WithContext(ctx).Create(inv).Error
}

// Update grava o registro completo; campos zerados também sobrescrevem.
func (r *InvestmentRepository) Update(ctx context.Context, inv *investment.Investment) error {
	return r.DB.WithContext(ctx).Save(inv).Error
}

func (r *InvestmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&investment.Investment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrInvestmentNotFound
	}
	return nil
}

func (r *InvestmentRepository) GetById(ctx context.Context, id uint) (*investment.Investment, error) {
	var inv investment.Investment
	err := r.DB.WithContext(ctx).First(&inv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrInvestmentNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return &inv, nil
}

func (r *InvestmentRepository) GetAll(ctx context.Context) ([]*investment.Investment, error) {
	var investments []*investment.Investment
	err := r.DB.WithContext(ctx).Find(&investments).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return investments, nil
}

func (r *InvestmentRepository) GetByType(ctx context.Context, investmentType investment.Type) ([]*investment.Investment, error) {
	var investments []*investment.Investment
	err := r.DB.WithContext(ctx).
		Where("type = ?", string(investmentType)).
		Find(&investments).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return investments, nil
}

func (r *InvestmentRepository) ExistsById(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&investment.Investment{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
