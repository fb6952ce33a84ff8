package repository

import (
	"context"
	"time"

	"greencart-api/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Order, error)
	ListAll(ctx context.Context) ([]*model.Order, error)
	MarkPaid(ctx context.Context, orderID string) error
	Delete(ctx context.Context, orderID string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

// Create persists the order together with its line items.
func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListByUser returns the user's fulfillable orders: every COD order plus
// online orders whose payment has been reconciled. Unpaid online orders
// stay invisible until the webhook settles them.
func (r *orderRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Address").
		Where("user_id = ?", userID).
		Where("payment_type = ? OR is_paid = ?", model.PaymentTypeCOD, true).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) ListAll(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Address").
		Where("payment_type = ? OR is_paid = ?", model.PaymentTypeCOD, true).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// MarkPaid flips is_paid. Matching zero rows is not an error: the update
// is redelivered by the payment provider and must stay a no-op for
// already-paid or already-deleted orders.
func (r *orderRepoImpl) MarkPaid(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Where("is_paid = ?", false).
		Updates(map[string]interface{}{
			"is_paid":    true,
			"updated_at": time.Now(),
		}).Error
}

// Delete removes the order and its line items. Deleting a missing order
// is a no-op for the same redelivery reason as MarkPaid.
func (r *orderRepoImpl) Delete(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", orderID).Delete(&model.Order{}).Error
	})
}
