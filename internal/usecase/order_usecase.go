package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"vendhub/internal/domain/model"
	"vendhub/internal/metrics"
	repo "vendhub/internal/repository"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	m      *metrics.OrderMetrics
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, m *metrics.OrderMetrics) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, m: m}
}

type PlaceOrderInput struct {
	ProductID int64
	Quantity  int64
}

// vendorの注文確定。注文作成と在庫減算は同一トランザクションで、
// 両方成功するか両方なかったことになるかのどちらか。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, vendorID int64, in PlaceOrderInput) (model.Order, error) {
	if vendorID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 || in.Quantity <= 0 {
		u.m.Rejected.WithLabelValues("invalid_input").Inc()
		return model.Order{}, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "productId and quantity are required")
	}

	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//商品取得（存在しない・非公開は404）
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, CodeNotFound, "Product not found or inactive")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
		}
		if !p.IsActive {
			return NewHTTPError(http.StatusNotFound, CodeNotFound, "Product not found or inactive")
		}

		//先に見えている在庫でチェック（エラー報告の順序のため）
		if in.Quantity > p.Stock {
			return NewHTTPError(http.StatusBadRequest, CodeInsufficientStock, "Insufficient stock")
		}

		//在庫減算（条件付きUPDATE）。同時注文で足りなくなっていたらfalse。
		now := time.Now()
		ok, err := r.Inventory().ApplySale(ctx, in.ProductID, in.Quantity, now)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusBadRequest, CodeInsufficientStock, "Insufficient stock")
		}

		//価格スナップショット
		totalPrice := in.Quantity * p.Price

		order := model.Order{
			VendorID:   vendorID,
			FarmerID:   p.OwnerID,
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			TotalPrice: totalPrice,
			Status:     model.OrderStatusPlaced,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
		}

		order.ID = orderID
		out = order
		return nil
	})

	if err != nil {
		if he, ok := AsHTTPError(err); ok && he.Code != CodeUnauthorized {
			u.m.Rejected.WithLabelValues(he.Code).Inc()
		}
		return model.Order{}, err
	}

	u.m.Placed.Inc()
	return out, nil
}

type UpdateOrderStatusInput struct {
	Status string
}

// 注文ステータス更新。更新できるのはその注文のfarmerだけ。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, callerID int64, orderID int64, in UpdateOrderStatusInput) (model.Order, error) {
	if callerID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}

	//遷移先の値チェック（Placedへは戻れない）
	target := model.OrderStatus(strings.TrimSpace(in.Status))
	if !model.IsOrderStatusTarget(target) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "Invalid status update.")
	}
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid order id")
	}

	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, CodeNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
		}

		//所有チェック（vendorや他のfarmerは403）
		if o.FarmerID != callerID {
			return NewHTTPError(http.StatusForbidden, CodeForbidden, "Only farmer can update the status")
		}

		//遷移許可表チェック
		if !model.CanTransitionOrder(o.Status, target) {
			return NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "Invalid status update.")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, target); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, CodeNotFound, "Order not found")
			}
			return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
		}

		o.Status = target
		o.UpdatedAt = time.Now()
		out = o
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}

	u.m.Transitions.WithLabelValues(string(target)).Inc()
	return out, nil
}

// vendor自身の注文一覧
func (u *OrderUsecase) ListVendorOrders(ctx context.Context, vendorID int64) ([]model.Order, error) {
	if vendorID <= 0 {
		return []model.Order{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListByVendor(ctx, vendorID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return orders, nil
}

// farmerの商品に入った注文一覧
func (u *OrderUsecase) ListFarmerOrders(ctx context.Context, farmerID int64) ([]model.Order, error) {
	if farmerID <= 0 {
		return []model.Order{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListByFarmer(ctx, farmerID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return orders, nil
}
