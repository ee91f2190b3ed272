package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"vendhub/internal/domain/model"
	repo "vendhub/internal/repository"
)

type RequirementUsecase struct {
	requirements repo.RequirementRepository
}

func NewRequirementUsecase(requirements repo.RequirementRepository) *RequirementUsecase {
	return &RequirementUsecase{requirements: requirements}
}

type PostRequirementInput struct {
	ProductName string
	Quantity    int64
}

// 要望を投稿
func (u *RequirementUsecase) Post(ctx context.Context, userID int64, in PostRequirementInput) (model.Requirement, error) {
	if userID <= 0 {
		return model.Requirement{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}

	name := strings.TrimSpace(in.ProductName)
	if name == "" || in.Quantity <= 0 {
		return model.Requirement{}, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "All fields are required")
	}

	saved, err := u.requirements.Create(ctx, model.Requirement{
		ProductName: name,
		Quantity:    in.Quantity,
		UserID:      userID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return model.Requirement{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return saved, nil
}

// 新着の要望一覧
func (u *RequirementUsecase) ListRecent(ctx context.Context) ([]model.Requirement, error) {
	items, err := u.requirements.ListRecent(ctx, 50)
	if err != nil {
		return []model.Requirement{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return items, nil
}
