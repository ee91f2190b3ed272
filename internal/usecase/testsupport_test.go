package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"vendhub/internal/domain/model"
	"vendhub/internal/metrics"
	repo "vendhub/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
)

// テスト用のOrderMetrics（レジストリを分けて二重登録を避ける）
func newTestMetrics() *metrics.OrderMetrics {
	return metrics.NewOrderMetrics(prometheus.NewRegistry())
}

// インメモリのProduct/Inventory/Order。条件付き減算は本物のSQLと同じ意味で
// ロックの内側でチェックと更新を行う。
type memStore struct {
	mu       sync.Mutex
	products map[int64]model.Product
	orders   map[int64]model.Order
	orderSeq int64
}

func newMemStore(products ...model.Product) *memStore {
	s := &memStore{
		products: make(map[int64]model.Product),
		orders:   make(map[int64]model.Order),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *memStore) product(id int64) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id]
}

func (s *memStore) order(id int64) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.products {
		if existing.OwnerID == p.OwnerID && existing.Name == p.Name {
			return model.Product{}, repo.ErrConflict
		}
	}
	p.ID = int64(len(r.s.products) + 1)
	r.s.products[p.ID] = p
	return p, nil
}

func (r *memProductRepo) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *memProductRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var items []model.Product
	for _, p := range r.s.products {
		if p.OwnerID == ownerID {
			items = append(items, p)
		}
	}
	return items, nil
}

func (r *memProductRepo) Search(ctx context.Context, q repo.ProductSearchQuery) ([]model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var items []model.Product
	for _, p := range r.s.products {
		if q.OwnerID != nil && p.OwnerID != *q.OwnerID {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.IsActive != nil && p.IsActive != *q.IsActive {
			continue
		}
		items = append(items, p)
	}
	return items, nil
}

type memInventoryRepo struct{ s *memStore }

func (r *memInventoryRepo) ApplySale(ctx context.Context, productID int64, qty int64, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	p.TotalSold += qty
	p.LastStockUpdateAt = now
	r.s.products[productID] = p
	return true, nil
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (r *memOrderRepo) Create(ctx context.Context, order model.Order) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orderSeq++
	order.ID = r.s.orderSeq
	r.s.orders[order.ID] = order
	return order.ID, nil
}

func (r *memOrderRepo) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	o.Status = status
	r.s.orders[orderID] = o
	return nil
}

func (r *memOrderRepo) ListByVendor(ctx context.Context, vendorID int64) ([]model.Order, error) {
	return r.list(func(o model.Order) bool { return o.VendorID == vendorID }), nil
}

func (r *memOrderRepo) ListByFarmer(ctx context.Context, farmerID int64) ([]model.Order, error) {
	return r.list(func(o model.Order) bool { return o.FarmerID == farmerID }), nil
}

func (r *memOrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	return r.list(func(o model.Order) bool { return true }), nil
}

func (r *memOrderRepo) list(match func(model.Order) bool) []model.Order {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items := []model.Order{}
	for _, o := range r.s.orders {
		if match(o) {
			items = append(items, o)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items
}

func (r *memOrderRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(r.s.orderCount()), nil
}

func (r *memOrderRepo) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	return int64(len(r.list(func(o model.Order) bool { return o.Status == status }))), nil
}

func (r *memOrderRepo) CountCreatedBetween(ctx context.Context, from time.Time, to time.Time) (int64, error) {
	return int64(len(r.list(func(o model.Order) bool {
		return !o.CreatedAt.Before(from) && !o.CreatedAt.After(to)
	}))), nil
}

func (r *memOrderRepo) SumTotalPriceByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	var sum int64
	for _, o := range r.list(func(o model.Order) bool { return o.Status == status }) {
		sum += o.TotalPrice
	}
	return sum, nil
}

type memTxRepos struct {
	orders    repo.OrderRepository
	products  repo.ProductRepository
	inventory repo.InventoryRepository
}

func (r *memTxRepos) Orders() repo.OrderRepository        { return r.orders }
func (r *memTxRepos) Products() repo.ProductRepository    { return r.products }
func (r *memTxRepos) Inventory() repo.InventoryRepository { return r.inventory }

type memTxManager struct{ repos repo.TxRepos }

func (m *memTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

// memStoreの上で動くOrderUsecaseを組み立てる
func newMemOrderUsecase(s *memStore) *OrderUsecase {
	orders := &memOrderRepo{s: s}
	tx := &memTxManager{repos: &memTxRepos{
		orders:    orders,
		products:  &memProductRepo{s: s},
		inventory: &memInventoryRepo{s: s},
	}}
	return NewOrderUsecase(tx, orders, newTestMetrics())
}
