// AngelaMos | 2026
// repository.go

package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartstyle/api/internal/core"
)

type Repository interface {
	GetItems(ctx context.Context, userID string) ([]Item, error)
	GetItem(ctx context.Context, userID, productID string) (*Item, error)
	SetItem(ctx context.Context, userID string, item *Item) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

// repository keeps each cart in a redis hash keyed by user, one field per
// product. The TTL slides on every write, so abandoned carts age out.
type repository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRepository(client *redis.Client, ttl time.Duration) Repository {
	return &repository{client: client, ttl: ttl}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

func (r *repository) GetItems(
	ctx context.Context,
	userID string,
) ([]Item, error) {
	fields, err := r.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	items := make([]Item, 0, len(fields))
	for _, raw := range fields {
		var item Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *repository) GetItem(
	ctx context.Context,
	userID, productID string,
) (*Item, error) {
	raw, err := r.client.HGet(ctx, cartKey(userID), productID).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("get cart item: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cart item: %w", err)
	}

	var item Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, fmt.Errorf("decode cart item: %w", err)
	}

	return &item, nil
}

func (r *repository) SetItem(
	ctx context.Context,
	userID string,
	item *Item,
) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode cart item: %w", err)
	}

	key := cartKey(userID)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, item.ProductID, raw)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set cart item: %w", err)
	}

	return nil
}

func (r *repository) RemoveItem(
	ctx context.Context,
	userID, productID string,
) error {
	removed, err := r.client.HDel(ctx, cartKey(userID), productID).Result()
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	if removed == 0 {
		return fmt.Errorf("remove cart item: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}
