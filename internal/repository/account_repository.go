package repository

import (
	"context"

	"github.com/immortalfoodie/Ecosphere/internal/model"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) error
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *model.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
