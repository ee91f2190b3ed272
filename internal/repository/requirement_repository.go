package repository

import (
	"context"

	"vendhub/internal/domain/model"
)

type RequirementRepository interface {
	Create(ctx context.Context, req model.Requirement) (model.Requirement, error)
	// 新しい順
	ListRecent(ctx context.Context, limit int) ([]model.Requirement, error)
}
