package repository

import (
	"context"
	"time"

	"greencart-api/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*model.User, error)
	// ReplaceCart overwrites the stored cart wholesale. No merge.
	ReplaceCart(ctx context.Context, userID string, cartItems map[string]int64) error
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

func (r *userRepoImpl) FindByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) ReplaceCart(ctx context.Context, userID string, cartItems map[string]int64) error {
	if cartItems == nil {
		cartItems = map[string]int64{}
	}

	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"cart_items": cartItems,
			"updated_at": time.Now(),
		}).Error
}
