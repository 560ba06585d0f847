package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"

	"naoh-aquatics/config"
	"naoh-aquatics/models"
)

// CartStore keeps session carts between requests. A missing session
// loads as an empty cart; carts expire with the session, they are never
// durable order state.
type CartStore interface {
	Load(ctx context.Context, token string) (*models.Cart, error)
	Save(ctx context.Context, token string, cart *models.Cart) error
	Delete(ctx context.Context, token string) error
}

type redisCartStore struct {
	client *redis.Client
}

func newRedisCartStore(client *redis.Client) *redisCartStore {
	return &redisCartStore{client: client}
}

func cartKey(token string) string {
	return "cart:" + token
}

func (s *redisCartStore) Load(ctx context.Context, token string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(token)).Bytes()
	if err == redis.Nil {
		return &models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *redisCartStore) Save(ctx context.Context, token string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(token), data, config.AppConfig.CartTTL).Err()
}

func (s *redisCartStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, cartKey(token)).Err()
}

// memoryCartStore backs cart sessions when Redis is not running, e.g.
// in development and in tests.
type memoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[string]models.Cart)}
}

func (s *memoryCartStore) Load(ctx context.Context, token string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[token]
	if !ok {
		return &models.Cart{}, nil
	}
	cart := models.Cart{Items: append([]models.CartItem(nil), stored.Items...)}
	return &cart, nil
}

func (s *memoryCartStore) Save(ctx context.Context, token string, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[token] = models.Cart{Items: append([]models.CartItem(nil), cart.Items...)}
	return nil
}

func (s *memoryCartStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, token)
	return nil
}
