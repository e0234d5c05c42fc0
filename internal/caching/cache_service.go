package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"rentmart/internal/models"
)

type CacheService interface {
	// Product caching
	GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// Availability caching, keyed by event date
	GetAvailability(ctx context.Context, date time.Time) ([]*models.AvailabilitySnapshot, error)
	SetAvailability(ctx context.Context, date time.Time, snapshots []*models.AvailabilitySnapshot, ttl time.Duration) error
	DeleteAvailability(ctx context.Context, date time.Time) error

	// Bundle description caching
	GetBundleDescription(ctx context.Context, bundleID uuid.UUID) (string, error)
	SetBundleDescription(ctx context.Context, bundleID uuid.UUID, description string, ttl time.Duration) error
	DeleteBundleDescription(ctx context.Context, bundleID uuid.UUID) error

	// Duplicate-submission guard: returns true when the key was newly
	// acquired, false when a submission with the same key already went through.
	AcquireIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Cache invalidation
	InvalidateAvailability(ctx context.Context) error

	// Generic string operations
	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis:// and rediss:// addresses as well as bare host:port
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func productKey(productID uuid.UUID) string {
	return fmt.Sprintf("rentmart:product:%s", productID.String())
}

func availabilityKey(date time.Time) string {
	return fmt.Sprintf("rentmart:availability:%s", date.Format("2006-01-02"))
}

func bundleDescriptionKey(bundleID uuid.UUID) string {
	return fmt.Sprintf("rentmart:bundle-description:%s", bundleID.String())
}

func (r *redisCacheService) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	data, err := r.client.Get(ctx, productKey(productID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *redisCacheService) SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, productKey(product.ID), data, ttl).Err()
}

func (r *redisCacheService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	return r.client.Del(ctx, productKey(productID)).Err()
}

func (r *redisCacheService) GetAvailability(ctx context.Context, date time.Time) ([]*models.AvailabilitySnapshot, error) {
	data, err := r.client.Get(ctx, availabilityKey(date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var snapshots []*models.AvailabilitySnapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *redisCacheService) SetAvailability(ctx context.Context, date time.Time, snapshots []*models.AvailabilitySnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshots)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, availabilityKey(date), data, ttl).Err()
}

func (r *redisCacheService) DeleteAvailability(ctx context.Context, date time.Time) error {
	return r.client.Del(ctx, availabilityKey(date)).Err()
}

func (r *redisCacheService) GetBundleDescription(ctx context.Context, bundleID uuid.UUID) (string, error) {
	value, err := r.client.Get(ctx, bundleDescriptionKey(bundleID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (r *redisCacheService) SetBundleDescription(ctx context.Context, bundleID uuid.UUID, description string, ttl time.Duration) error {
	return r.client.Set(ctx, bundleDescriptionKey(bundleID), description, ttl).Err()
}

func (r *redisCacheService) DeleteBundleDescription(ctx context.Context, bundleID uuid.UUID) error {
	return r.client.Del(ctx, bundleDescriptionKey(bundleID)).Err()
}

func (r *redisCacheService) AcquireIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, fmt.Sprintf("rentmart:idempotency:%s", key), "1", ttl).Result()
}

func (r *redisCacheService) InvalidateAvailability(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, "rentmart:availability:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCacheService) GetString(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (r *redisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
