package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"greencart-api/internal/cache"
	"greencart-api/internal/repository"

	"gorm.io/gorm"
)

type CartService interface {
	// UpdateCart replaces the stored cart wholesale; an empty snapshot
	// empties the cart.
	UpdateCart(ctx context.Context, userID string, cartItems map[string]int64) error
	GetCart(ctx context.Context, userID string) (map[string]int64, error)
}

type cartServiceImpl struct {
	userRepo  repository.UserRepository
	cartCache cache.CartCache // nil when the cache is disabled
}

func NewCartService(userRepo repository.UserRepository, cartCache cache.CartCache) CartService {
	return &cartServiceImpl{
		userRepo:  userRepo,
		cartCache: cartCache,
	}
}

func (s *cartServiceImpl) UpdateCart(ctx context.Context, userID string, cartItems map[string]int64) error {
	if err := s.userRepo.ReplaceCart(ctx, userID, cartItems); err != nil {
		return fmt.Errorf("replace cart: %w", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) (map[string]int64, error) {
	if s.cartCache != nil {
		cartItems, err := s.cartCache.Get(ctx, userID)
		if err == nil {
			return cartItems, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			// degraded cache must not fail the read
			log.Printf("cart cache get for %s: %v", userID, err)
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]int64{}, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	cartItems := user.CartItems
	if cartItems == nil {
		cartItems = map[string]int64{}
	}

	if s.cartCache != nil {
		if err := s.cartCache.Set(ctx, userID, cartItems); err != nil {
			log.Printf("cart cache set for %s: %v", userID, err)
		}
	}

	return cartItems, nil
}

func (s *cartServiceImpl) invalidate(ctx context.Context, userID string) {
	if s.cartCache == nil {
		return
	}
	if err := s.cartCache.Delete(ctx, userID); err != nil {
		log.Printf("cart cache invalidate for %s: %v", userID, err)
	}
}
