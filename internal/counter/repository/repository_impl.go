package repository

import (
	"context"

	"github.com/kelolahq/anggaran/internal/counter/domain"
	dbpkg "github.com/kelolahq/anggaran/pkg/db"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) domain.Repository {
	return &repository{db: tx}
}

func (r *repository) FindForUpdate(ctx context.Context, screenID string) (*domain.CounterNumber, error) {
	var row domain.CounterNumber
	err := dbpkg.ForUpdate(r.db.WithContext(ctx)).
		First(&row, "screen_id = ?", screenID).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Save(ctx context.Context, row *domain.CounterNumber) error {
	return r.db.WithContext(ctx).Save(row).Error
}
