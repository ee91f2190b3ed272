package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"vendhub/internal/domain/model"
	repo "vendhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called()
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountActiveApprovedByRole(ctx context.Context, role model.Role) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(since)
	return args.Get(0).(int64), args.Error(1)
}

// Test: ダッシュボード集計の計算
func TestGetDashboardStats(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	users.On("CountAll").Return(int64(120), nil)
	users.On("CountActiveApprovedByRole", model.RoleFarmer).Return(int64(30), nil)
	users.On("CountActiveApprovedByRole", model.RoleVendor).Return(int64(45), nil)
	users.On("CountActive").Return(int64(100), nil)
	users.On("CountCreatedSince", mock.Anything).Return(int64(7), nil)

	orders.On("SumTotalPriceByStatus", model.OrderStatusDelivered).Return(int64(10000), nil)
	orders.On("CountCreatedBetween", mock.Anything, mock.Anything).Return(int64(12), nil)
	orders.On("CountAll").Return(int64(40), nil)
	orders.On("CountByStatus", model.OrderStatusDelivered).Return(int64(25), nil)

	uc := NewAdminUsecase(users, orders)

	s, err := uc.GetDashboardStats(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, int64(120), s.TotalUsers)
	assert.Equal(t, int64(30), s.ActiveFarmers)
	assert.Equal(t, int64(45), s.ActiveVendors)
	assert.Equal(t, int64(10000), s.TotalRevenue)
	assert.Equal(t, int64(12), s.OrdersToday)
	//25/40 = 62.5%
	assert.Equal(t, 62.5, s.SuccessRate)
	//10000 * 5% = 500
	assert.Equal(t, int64(500), s.PlatformCommission)
	assert.Equal(t, int64(7), s.NewRegistrations)
	assert.Equal(t, int64(100), s.DailyActiveUsers)
}

// Test: 注文ゼロなら成功率は0（ゼロ除算しない）
func TestGetDashboardStatsNoOrders(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	users.On("CountAll").Return(int64(3), nil)
	users.On("CountActiveApprovedByRole", mock.Anything).Return(int64(0), nil)
	users.On("CountActive").Return(int64(3), nil)
	users.On("CountCreatedSince", mock.Anything).Return(int64(3), nil)

	orders.On("SumTotalPriceByStatus", model.OrderStatusDelivered).Return(int64(0), nil)
	orders.On("CountCreatedBetween", mock.Anything, mock.Anything).Return(int64(0), nil)
	orders.On("CountAll").Return(int64(0), nil)
	orders.On("CountByStatus", model.OrderStatusDelivered).Return(int64(0), nil)

	uc := NewAdminUsecase(users, orders)

	s, err := uc.GetDashboardStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, s.SuccessRate)
	assert.Equal(t, int64(0), s.PlatformCommission)
}

func approvableUser(id int64) *model.User {
	return &model.User{
		ID:         id,
		Name:       "Taro",
		Email:      "taro@example.com",
		Role:       model.RoleFarmer,
		IsApproved: false,
		IsActive:   true,
	}
}

// Test: 承認するとisApprovedとisActiveが立つ
func TestUpdateUserStatusApprove(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	users.On("FindByID", int64(5)).Return(approvableUser(5), nil)
	users.On("Update", mock.Anything).Return(nil)

	uc := NewAdminUsecase(users, orders)

	updated, err := uc.UpdateUserStatus(context.Background(), 1, 5, UpdateUserStatusInput{Action: "approve"})
	assert.NoError(t, err)
	assert.True(t, updated.IsApproved)
	assert.True(t, updated.IsActive)
	users.AssertExpectations(t)
}

// Test: 状態がすでにその通りなら400
func TestUpdateUserStatusNoopGuards(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	uc := NewAdminUsecase(users, orders)

	approved := approvableUser(5)
	approved.IsApproved = true
	users.On("FindByID", int64(5)).Return(approved, nil)

	_, err := uc.UpdateUserStatus(context.Background(), 1, 5, UpdateUserStatusInput{Action: "approve"})
	requireHTTPError(t, err, http.StatusBadRequest, CodeInvalidInput)

	active := approvableUser(6)
	users.On("FindByID", int64(6)).Return(active, nil)

	_, err = uc.UpdateUserStatus(context.Background(), 1, 6, UpdateUserStatusInput{Action: "activate"})
	requireHTTPError(t, err, http.StatusBadRequest, CodeInvalidInput)

	inactive := approvableUser(7)
	inactive.IsActive = false
	users.On("FindByID", int64(7)).Return(inactive, nil)

	_, err = uc.UpdateUserStatus(context.Background(), 1, 7, UpdateUserStatusInput{Action: "deactivate"})
	requireHTTPError(t, err, http.StatusBadRequest, CodeInvalidInput)

	users.AssertNotCalled(t, "Update", mock.Anything)
}

// Test: adminは対象にできない
func TestUpdateUserStatusAdminTarget(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	admin := approvableUser(9)
	admin.Role = model.RoleAdmin
	users.On("FindByID", int64(9)).Return(admin, nil)

	uc := NewAdminUsecase(users, orders)

	_, err := uc.UpdateUserStatus(context.Background(), 1, 9, UpdateUserStatusInput{Action: "deactivate"})
	requireHTTPError(t, err, http.StatusForbidden, CodeForbidden)
	users.AssertNotCalled(t, "Update", mock.Anything)
}

// Test: 不正なactionと存在しないユーザー
func TestUpdateUserStatusBadRequest(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	uc := NewAdminUsecase(users, orders)

	_, err := uc.UpdateUserStatus(context.Background(), 1, 5, UpdateUserStatusInput{Action: "promote"})
	requireHTTPError(t, err, http.StatusBadRequest, CodeInvalidInput)

	users.On("FindByID", int64(404)).Return(nil, repo.ErrNotFound)
	_, err = uc.UpdateUserStatus(context.Background(), 1, 404, UpdateUserStatusInput{Action: "approve"})
	requireHTTPError(t, err, http.StatusNotFound, CodeNotFound)
}
