package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"vendhub/internal/domain/model"
	repo "vendhub/internal/repository"
)

// 手数料率（配送完了売上の5%）
const platformCommissionRate = 0.05

type AdminUsecase struct {
	users  repo.UserRepository
	orders repo.OrderRepository
}

func NewAdminUsecase(users repo.UserRepository, orders repo.OrderRepository) *AdminUsecase {
	return &AdminUsecase{users: users, orders: orders}
}

type DashboardStats struct {
	TotalUsers         int64   `json:"totalUsers"`
	ActiveFarmers      int64   `json:"activeFarmers"`
	ActiveVendors      int64   `json:"activeVendors"`
	TotalRevenue       int64   `json:"totalRevenue"`
	DailyActiveUsers   int64   `json:"dailyActiveUsers"`
	OrdersToday        int64   `json:"ordersToday"`
	SuccessRate        float64 `json:"successRate"`
	PlatformCommission int64   `json:"platformCommission"`
	NewRegistrations   int64   `json:"newRegistrations"`
}

// ダッシュボード集計
func (u *AdminUsecase) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var s DashboardStats
	var err error

	if s.TotalUsers, err = u.users.CountAll(ctx); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	if s.ActiveFarmers, err = u.users.CountActiveApprovedByRole(ctx, model.RoleFarmer); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	if s.ActiveVendors, err = u.users.CountActiveApprovedByRole(ctx, model.RoleVendor); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	//売上は配送完了した注文の合計
	if s.TotalRevenue, err = u.orders.SumTotalPriceByStatus(ctx, model.OrderStatusDelivered); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	//今日の注文数（0:00〜23:59:59）
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfToday := startOfToday.Add(24*time.Hour - time.Nanosecond)
	if s.OrdersToday, err = u.orders.CountCreatedBetween(ctx, startOfToday, endOfToday); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	//成功率 = delivered / total（%・小数1桁）
	totalOrders, err := u.orders.CountAll(ctx)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	delivered, err := u.orders.CountByStatus(ctx, model.OrderStatusDelivered)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	if totalOrders > 0 {
		s.SuccessRate = math.Round(float64(delivered)/float64(totalOrders)*1000) / 10
	}

	s.PlatformCommission = int64(math.Round(float64(s.TotalRevenue) * platformCommissionRate))

	//直近7日の新規登録
	if s.NewRegistrations, err = u.users.CountCreatedSince(ctx, now.AddDate(0, 0, -7)); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	//アクティブユーザー数で代用
	if s.DailyActiveUsers, err = u.users.CountActive(ctx); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	return s, nil
}

// 全注文（新しい順）
func (u *AdminUsecase) ListAllTransactions(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return orders, nil
}

// 全ユーザー（新しい順、パスワードはjsonタグで出ない）
func (u *AdminUsecase) ListAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return users, nil
}

type UpdateUserStatusInput struct {
	Action string
}

// ユーザーの承認・有効化・無効化
func (u *AdminUsecase) UpdateUserStatus(ctx context.Context, actorID int64, targetID int64, in UpdateUserStatusInput) (*model.User, error) {
	if actorID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}

	switch in.Action {
	case "approve", "activate", "deactivate":
	default:
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "Invalid action type specified.")
	}

	target, err := u.users.FindByID(ctx, targetID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeNotFound, "User not found.")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	//adminのステータスはこの操作では変えられない（自分も他のadminも）
	if target.Role == model.RoleAdmin {
		return nil, NewHTTPError(http.StatusForbidden, CodeForbidden, "Cannot change status of an admin.")
	}

	switch in.Action {
	case "approve":
		if target.IsApproved {
			return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "User is already approved.")
		}
		target.IsApproved = true
		//承認と同時に有効化
		target.IsActive = true
	case "activate":
		if target.IsActive {
			return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "User is already active.")
		}
		target.IsActive = true
	case "deactivate":
		if !target.IsActive {
			return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "User is already inactive.")
		}
		target.IsActive = false
	}

	target.UpdatedAt = time.Now()
	if err := u.users.Update(ctx, target); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	return target, nil
}
