package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/metrics"
	orderdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	// ListOrders returns every order for order staff and only the caller's
	// own orders for everyone else. status "" or "ALL" disables the filter.
	ListOrders(ctx context.Context, actor *domain.Principal, status string) ([]*domain.Order, error)
	GetOrder(ctx context.Context, actor *domain.Principal, orderID string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, actor *domain.Principal, input *orderdto.UpdateStatusInput) (*domain.Order, error)
	UpsertShipment(ctx context.Context, actor *domain.Principal, input *orderdto.ShipmentInput) (*domain.Shipment, error)
}

type DefaultOrderUsecase struct {
	orderRepo domain.OrderRepository
	publisher domain.OrderEventPublisher
	metrics   *metrics.StoreMetrics
	effects   AdminEffects
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	publisher domain.OrderEventPublisher,
	storeMetrics *metrics.StoreMetrics,
	effects AdminEffects,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		orderRepo: orderRepo,
		publisher: publisher,
		metrics:   storeMetrics,
		effects:   effects,
	}
}

func (uc *DefaultOrderUsecase) ListOrders(ctx context.Context, actor *domain.Principal, status string) ([]*domain.Order, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	filter := domain.OrderFilter{}
	if !domain.CanAccess(domain.OrderRoles, actor.Role) {
		filter.UserID = actor.UserID
	}
	if status != "" && status != "ALL" {
		st := domain.OrderStatus(status)
		if !st.Valid() {
			return nil, domain.NewValidationError("status", "status must be one of %v", domain.OrderStatuses())
		}
		filter.Status = st
	}
	return uc.orderRepo.ListOrders(ctx, filter)
}

func (uc *DefaultOrderUsecase) GetOrder(ctx context.Context, actor *domain.Principal, orderID string) (*domain.Order, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	order, err := uc.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	// other customers' orders are reported as missing
	if order.UserID != actor.UserID && !domain.CanAccess(domain.OrderRoles, actor.Role) {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus accepts any target status. Transitions are not checked.
func (uc *DefaultOrderUsecase) UpdateOrderStatus(ctx context.Context, actor *domain.Principal, input *orderdto.UpdateStatusInput) (*domain.Order, error) {
	if err := authorize(actor, domain.OrderRoles); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.UpdateOrderStatus(ctx, input.OrderID, domain.OrderStatus(input.Status))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	uc.metrics.RecordOrderStatus(string(order.Status))
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditOrderStatusUpdated,
		targetType: domain.TargetTypeOrder,
		targetID:   order.ID,
		meta:       map[string]any{"status": order.Status},
	}, "/admin/orders")

	go func(event domain.OrderEvent) {
		if err := uc.publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish order event", "order_id", event.OrderID, "error", err)
		}
	}(orderEvent(order))

	return order, nil
}

func (uc *DefaultOrderUsecase) UpsertShipment(ctx context.Context, actor *domain.Principal, input *orderdto.ShipmentInput) (*domain.Shipment, error) {
	if err := authorize(actor, domain.OrderRoles); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	shipment := &domain.Shipment{
		OrderID:        order.ID,
		Courier:        input.Courier,
		TrackingNumber: input.TrackingNumber,
		ShippedAt:      input.ShippedAt,
	}
	if order.Shipment != nil {
		shipment.ID = order.Shipment.ID
	}
	if err := uc.orderRepo.UpsertShipment(ctx, shipment); err != nil {
		return nil, err
	}

	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditShipmentUpdated,
		targetType: domain.TargetTypeOrder,
		targetID:   order.ID,
		meta: map[string]any{
			"courier":        shipment.Courier,
			"trackingNumber": shipment.TrackingNumber,
		},
	}, "/admin/orders")
	return shipment, nil
}
