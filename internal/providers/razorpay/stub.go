package razorpay

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"aidforpaws/internal/domain"
)

// StubKeySecret signs checkouts against the stub gateway when no key secret
// is configured.
const StubKeySecret = "rzp_stub_secret"

// StubGateway is an in-process gateway for development without API keys and
// for tests. Orders are kept in memory.
type StubGateway struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	calls  int
	// Err, when set, is returned by CreateOrder.
	Err error
}

func NewStubGateway() *StubGateway {
	return &StubGateway{orders: make(map[string]domain.Order)}
}

func (g *StubGateway) CreateOrder(_ context.Context, req domain.OrderRequest) (*domain.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.Err != nil {
		return nil, g.Err
	}
	if req.Amount <= 0 {
		return nil, errors.New("razorpay: amount must be positive")
	}
	order := domain.Order{
		ID:        "order_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14],
		Entity:    "order",
		Amount:    req.Amount,
		AmountDue: req.Amount,
		Currency:  req.Currency,
		Receipt:   req.Receipt,
		Status:    "created",
		Notes:     req.Notes,
		CreatedAt: time.Now().Unix(),
	}
	g.orders[order.ID] = order
	return &order, nil
}

// Calls returns how many times CreateOrder ran.
func (g *StubGateway) Calls() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.calls
}

// Order returns a previously created order.
func (g *StubGateway) Order(id string) (domain.Order, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	o, ok := g.orders[id]
	return o, ok
}

var _ Gateway = (*StubGateway)(nil)
