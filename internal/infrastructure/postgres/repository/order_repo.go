package repository

import (
	"context"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// withOrderDetails preloads lines with their variants. Variants removed from
// the catalog are soft-deleted, so they are loaded unscoped.
func withOrderDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items.Variant", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Preload("Items.Variant.Product").
		Preload("Shipment").
		Preload("User")
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if !validID(orderID) {
		return nil, domain.ErrNotFound
	}
	var order models.OrderModel
	if err := withOrderDetails(r.DB.WithContext(ctx)).
		First(&order, "id = ?", orderID).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	query := withOrderDetails(r.DB.WithContext(ctx).Model(&models.OrderModel{}))
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var orderModels []models.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, mappers.ToDomainOrder(&orderModels[i]))
	}
	return orders, nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !validID(orderID) {
		return nil, domain.ErrNotFound
	}
	res := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetOrderByID(ctx, orderID)
}

func (r *DefaultOrderRepository) UpsertShipment(ctx context.Context, shipment *domain.Shipment) error {
	if shipment.ID == "" {
		shipment.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"courier", "tracking_number", "shipped_at", "updated_at"}),
		}).
		Create(mappers.ToGORMShipment(shipment)).Error
}

func (r *DefaultOrderRepository) CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *DefaultOrderRepository) SumRevenueSince(ctx context.Context, statuses []domain.OrderStatus, since time.Time) (int64, error) {
	var sum int64
	err := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Select("COALESCE(SUM(final_total), 0)").
		Where("status IN ?", statuses).
		Where("created_at >= ?", since).
		Scan(&sum).Error
	return sum, err
}
