package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"invoicepress/internal/models"
)

// CacheService remembers where previously generated documents live so
// identical generation requests can reuse the stored object instead of
// re-rendering and re-uploading it.
type CacheService interface {
	GetDocumentLocator(ctx context.Context, key string) (*models.DocumentLocator, error)
	SetDocumentLocator(ctx context.Context, key string, locator *models.DocumentLocator, ttl time.Duration) error
	DeleteDocumentLocator(ctx context.Context, key string) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port style addresses as well as plain host:port.
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

func locatorKey(key string) string {
	return fmt.Sprintf("invoicepress:document:%s", key)
}

func (r *redisCacheService) GetDocumentLocator(ctx context.Context, key string) (*models.DocumentLocator, error) {
	data, err := r.client.Get(ctx, locatorKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var locator models.DocumentLocator
	if err := json.Unmarshal(data, &locator); err != nil {
		return nil, err
	}
	return &locator, nil
}

func (r *redisCacheService) SetDocumentLocator(ctx context.Context, key string, locator *models.DocumentLocator, ttl time.Duration) error {
	data, err := json.Marshal(locator)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, locatorKey(key), data, ttl).Err()
}

func (r *redisCacheService) DeleteDocumentLocator(ctx context.Context, key string) error {
	return r.client.Del(ctx, locatorKey(key)).Err()
}
