package usecase

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestMetrics() *metrics.StoreMetrics {
	return metrics.NewStoreMetrics(prometheus.NewRegistry())
}

func staff(role domain.Role) *domain.Principal {
	return &domain.Principal{UserID: "staff-" + string(role), Role: role}
}

// storeState is the data behind memStore. It is cloned for every checkout
// transaction so that a failed transaction leaves it untouched.
type storeState struct {
	variants map[string]*domain.ProductVariant
	carts    map[string]*domain.Cart
	coupons  map[string]*domain.Coupon
	orders   map[string]*domain.Order
	items    []*domain.OrderItem
}

func (s *storeState) clone() *storeState {
	c := &storeState{
		variants: make(map[string]*domain.ProductVariant, len(s.variants)),
		carts:    make(map[string]*domain.Cart, len(s.carts)),
		coupons:  make(map[string]*domain.Coupon, len(s.coupons)),
		orders:   maps.Clone(s.orders),
		items:    append([]*domain.OrderItem(nil), s.items...),
	}
	for id, v := range s.variants {
		cp := *v
		c.variants[id] = &cp
	}
	for user, cart := range s.carts {
		cp := *cart
		cp.Items = make([]*domain.CartItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			line := *item
			cp.Items = append(cp.Items, &line)
		}
		c.carts[user] = &cp
	}
	for code, coupon := range s.coupons {
		cp := *coupon
		c.coupons[code] = &cp
	}
	return c
}

// memStore implements the catalog, cart, coupon and checkout ports.
type memStore struct {
	mu     sync.Mutex
	state  *storeState
	failOn string
}

func newMemStore() *memStore {
	return &memStore{state: &storeState{
		variants: map[string]*domain.ProductVariant{},
		carts:    map[string]*domain.Cart{},
		coupons:  map[string]*domain.Coupon{},
		orders:   map[string]*domain.Order{},
	}}
}

func (s *memStore) addVariant(id string, price int64, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.variants[id] = &domain.ProductVariant{ID: id, ProductID: "p-" + id, SKU: "SKU-" + id, Price: price, Stock: stock}
}

func (s *memStore) setStock(id string, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.variants[id].Stock = stock
}

func (s *memStore) stock(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.variants[id].Stock
}

func (s *memStore) addCoupon(c *domain.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = "coupon-" + c.Code
	}
	s.state.coupons[c.Code] = c
}

func (s *memStore) coupon(code string) domain.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.coupons[code]
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.orders)
}

// cart repository

func (s *memStore) GetCartByUserID(_ context.Context, userID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.state.carts[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *cart
	out.Items = make([]*domain.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		line := *item
		if v, ok := s.state.variants[item.ProductVariantID]; ok {
			vc := *v
			line.Variant = &vc
		}
		out.Items = append(out.Items, &line)
	}
	return &out, nil
}

func (s *memStore) CreateCart(_ context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.carts[cart.UserID]; !ok {
		cp := *cart
		s.state.carts[cart.UserID] = &cp
	}
	return nil
}

func (s *memStore) CreateCartItem(_ context.Context, item *domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.state.carts {
		if cart.ID == item.CartID {
			cp := *item
			cart.Items = append(cart.Items, &cp)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *memStore) UpdateCartItemQty(_ context.Context, itemID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.state.carts {
		if item := cart.FindItem(itemID); item != nil {
			item.Qty = qty
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *memStore) DeleteCartItem(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.state.carts {
		for i, item := range cart.Items {
			if item.ID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// catalog repository

func (s *memStore) ListProducts(context.Context, domain.ProductFilter) ([]*domain.Product, int64, error) {
	return nil, 0, nil
}

func (s *memStore) GetProductBySlug(context.Context, string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *memStore) GetProductByID(context.Context, string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *memStore) GetVariantByID(_ context.Context, variantID string) (*domain.ProductVariant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.state.variants[variantID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *memStore) UpsertProduct(context.Context, *domain.Product) error { return nil }

func (s *memStore) CountProducts(context.Context) (int64, error) { return 0, nil }

func (s *memStore) ListLowStockVariants(context.Context, int, int) ([]*domain.ProductVariant, error) {
	return nil, nil
}

// coupon repository

func (s *memStore) FindActiveCoupon(_ context.Context, code string, now time.Time) (*domain.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.state.coupons[code]
	if !ok || !c.ActiveAt(now) {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *memStore) ListCoupons(context.Context) ([]*domain.Coupon, error) { return nil, nil }

func (s *memStore) UpsertCoupon(_ context.Context, c *domain.Coupon) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	s.addCoupon(c)
	return nil
}

// checkout repository

var errInjected = errors.New("injected failure")

func (s *memStore) WithinCheckoutTx(ctx context.Context, fn func(tx domain.CheckoutTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	staged := s.state.clone()
	if err := fn(&memTx{state: staged, failOn: s.failOn}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

type memTx struct {
	state  *storeState
	failOn string
}

func (t *memTx) fail(op string) error {
	if t.failOn == op {
		return errInjected
	}
	return nil
}

func (t *memTx) CreateOrder(_ context.Context, order *domain.Order) error {
	if err := t.fail("CreateOrder"); err != nil {
		return err
	}
	t.state.orders[order.ID] = order
	return nil
}

func (t *memTx) DecrementStock(_ context.Context, variantID string, qty int) error {
	if err := t.fail("DecrementStock"); err != nil {
		return err
	}
	v, ok := t.state.variants[variantID]
	if !ok || v.Stock < qty {
		return domain.ErrInsufficientStock
	}
	v.Stock -= qty
	return nil
}

func (t *memTx) CreateOrderItems(_ context.Context, items []*domain.OrderItem) error {
	if err := t.fail("CreateOrderItems"); err != nil {
		return err
	}
	t.state.items = append(t.state.items, items...)
	return nil
}

func (t *memTx) ClearCart(_ context.Context, cartID string) error {
	if err := t.fail("ClearCart"); err != nil {
		return err
	}
	for _, cart := range t.state.carts {
		if cart.ID == cartID {
			cart.Items = nil
		}
	}
	return nil
}

func (t *memTx) IncrementCouponUsage(_ context.Context, couponID string) error {
	if err := t.fail("IncrementCouponUsage"); err != nil {
		return err
	}
	for _, c := range t.state.coupons {
		if c.ID == couponID {
			if c.UsageLimit != nil && *c.UsageLimit > 0 && c.Used >= *c.UsageLimit {
				return domain.ErrCouponLimitReached
			}
			c.Used++
			return nil
		}
	}
	return domain.ErrNotFound
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
}

func (p *recordingPublisher) PublishOrder(event domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) published() []domain.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.OrderEvent(nil), p.events...)
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func (a *recordingAudit) Record(_ context.Context, entry domain.AuditLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func (a *recordingAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

type recordingInvalidator struct {
	mu    sync.Mutex
	paths []string
}

func (i *recordingInvalidator) Invalidate(paths ...string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.paths = append(i.paths, paths...)
}

func (i *recordingInvalidator) all() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string(nil), i.paths...)
}

type stubLimiter struct {
	decision domain.RateLimitDecision
	keys     []string
}

func (l *stubLimiter) Allow(_ context.Context, key string, _ int) (domain.RateLimitDecision, error) {
	l.keys = append(l.keys, key)
	return l.decision, nil
}

type prefixHasher struct{}

func (prefixHasher) Hash(ip string) string {
	if ip == "" {
		return ""
	}
	return "h:" + ip
}
