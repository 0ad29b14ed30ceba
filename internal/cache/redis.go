package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mdobre/scriptura/internal/data"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg RedisConfig, ttl time.Duration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: 5,

		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		// Retry configuration
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ttl:    ttl,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.client.Ping(ctx).Err()
}

func (r *RedisClient) translationKey(publicID string) string {
	return fmt.Sprintf("translation:%s", publicID)
}

// cachedTranslation is the cache wire form. The API struct hides the internal
// row id from JSON, but the cache must round-trip it since verse queries key
// on it.
type cachedTranslation struct {
	ID           int64  `json:"id"`
	PublicID     string `json:"public_id"`
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
	LanguageCode string `json:"language_code"`
	SourceURL    string `json:"source_url"`
}

// GetTranslation returns the cached translation, or nil on a miss. Translations
// change only at ingestion, so a short TTL is plenty.
func (r *RedisClient) GetTranslation(publicID string) (*data.Translation, error) {
	key := r.translationKey(publicID)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cached cachedTranslation
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached translation: %w", err)
	}

	return &data.Translation{
		ID:           cached.ID,
		PublicID:     cached.PublicID,
		Abbreviation: cached.Abbreviation,
		FullName:     cached.FullName,
		LanguageCode: cached.LanguageCode,
		SourceURL:    cached.SourceURL,
	}, nil
}

func (r *RedisClient) SetTranslation(translation *data.Translation) error {
	key := r.translationKey(translation.PublicID)

	payload, err := json.Marshal(cachedTranslation{
		ID:           translation.ID,
		PublicID:     translation.PublicID,
		Abbreviation: translation.Abbreviation,
		FullName:     translation.FullName,
		LanguageCode: translation.LanguageCode,
		SourceURL:    translation.SourceURL,
	})
	if err != nil {
		return fmt.Errorf("failed to encode translation for cache: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set translation in Redis: %w", err)
	}

	return nil
}
