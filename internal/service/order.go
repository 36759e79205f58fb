package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/domain/status"
	apperrors "github.com/target/bookshelf-web/internal/errors"
	"github.com/target/bookshelf-web/internal/ports"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Backend ports.OrderBackend
	Logger  *slog.Logger
}

// OrderService lists a reader's purchase orders.
type OrderService struct {
	backend ports.OrderBackend
	logger  *slog.Logger
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	if opts.Backend == nil {
		panic("OrderBackend is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{backend: opts.Backend, logger: logger}
}

// OrderView is an order with the label and tag for its status.
type OrderView struct {
	model.Order
	State status.Descriptor `json:"state"`
}

// OrderHistory is a page of decorated orders.
type OrderHistory struct {
	Total   int64       `json:"total"`
	Records []OrderView `json:"records"`
}

// History pages through the reader's orders. ctx must carry the reader's
// backend token.
func (s *OrderService) History(ctx context.Context, q model.OrderQuery) (*OrderHistory, error) {
	if q.Status != nil && !q.Status.Known() {
		return nil, apperrors.ValidationField("status", fmt.Sprintf("unknown order status %d", int(*q.Status)))
	}
	q.PageQuery = q.PageQuery.Normalize()

	page, err := s.backend.History(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("order history: %w", err)
	}

	out := &OrderHistory{Total: page.Total, Records: make([]OrderView, 0, len(page.Records))}
	for _, o := range page.Records {
		d := status.DescribeOrder(o.Status)
		if d.IsUnknown() {
			s.logger.WarnContext(ctx, "order has unregistered status",
				"order_id", o.ID, "status", int(o.Status))
		}
		out.Records = append(out.Records, OrderView{Order: o, State: d})
	}
	return out, nil
}
