package repository

import (
	"context"

	"github.com/immortalfoodie/Ecosphere/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRepository reads and writes opaque state snapshots by storage key. It
// never interprets the payload.
type StateRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

type stateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var rec model.StateRecord
	if err := r.db.WithContext(ctx).
		Where("storage_key = ?", key).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return rec.Payload, nil
}

func (r *stateRepository) Save(ctx context.Context, key string, payload []byte) error {
	rec := model.StateRecord{StorageKey: key, Payload: payload}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			UpdateAll: true,
		}).
		Create(&rec).Error
}
