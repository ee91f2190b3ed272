package repository

import (
	"context"

	"vendhub/internal/domain/model"

	"gorm.io/gorm"
)

type RequirementGormRepository struct {
	db *gorm.DB
}

func NewRequirementGormRepository(db *gorm.DB) *RequirementGormRepository {
	return &RequirementGormRepository{db: db}
}

func (r *RequirementGormRepository) Create(ctx context.Context, req model.Requirement) (model.Requirement, error) {
	if err := r.db.WithContext(ctx).Create(&req).Error; err != nil {
		return model.Requirement{}, err
	}
	return req, nil
}

func (r *RequirementGormRepository) ListRecent(ctx context.Context, limit int) ([]model.Requirement, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var items []model.Requirement
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.Requirement{}, err
	}
	return items, nil
}
