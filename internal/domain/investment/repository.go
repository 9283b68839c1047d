package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	Update(ctx context.Context, inv *Investment) error
	Delete(ctx context.Context, id uint) error
	GetById(ctx context.Context, id uint) (*Investment, error)
	GetAll(ctx context.Context) ([]*Investment, error)
	GetByType(ctx context.Context, investmentType Type) ([]*Investment, error)
	ExistsById(ctx context.Context, id uint) (bool, error)
}
