package cache

import (
	"context"
	"errors"
)

// CartCache holds the embedded cart snapshot keyed by user id.
type CartCache interface {
	Get(ctx context.Context, userID string) (map[string]int64, error)
	Set(ctx context.Context, userID string, cartItems map[string]int64) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")
