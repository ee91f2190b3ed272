package repository

import (
	"context"
	"time"

	"vendhub/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// ユーザー情報の更新=>承認・有効/無効の切り替えなど
	Update(ctx context.Context, user *model.User) error
	// 全ユーザー（新しい順）
	ListAll(ctx context.Context) ([]model.User, error)

	// ダッシュボード用の集計
	CountAll(ctx context.Context) (int64, error)
	CountActiveApprovedByRole(ctx context.Context, role model.Role) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
