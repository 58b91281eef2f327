package ratelimit

import (
	"atelier/internal/apperr"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=ratelimit.go -destination=./mocks/limiter_mock.go -package=mocks Limiter

// Limiter решает, можно ли выполнить еще одно действие для ключа.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter - ограничение частоты фиксированным окном на INCR + EXPIRE.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	prefix string
}

func NewRedisLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: int64(limit), window: window, prefix: "ratelimit:"}
}

// Allow увеличивает счетчик текущего окна. Первый запрос окна ставит TTL.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := fmt.Sprintf("%s%s:%d", l.prefix, key, time.Now().UnixNano()/int64(l.window))

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ошибка счетчика частоты %s: %w", key, err)
	}
	return incr.Val() <= l.limit, nil
}

// Connect подключается к Redis по URL. Пустой URL - ограничение выключено (nil, nil).
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		log.Println("REDIS_URL не задан, ограничение частоты админ-действий выключено.")
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("некорректный REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("не удалось подключиться к Redis: %w", err)
	}
	log.Println("Успешное подключение к Redis.")
	return client, nil
}

// Check возвращает ErrTooManyRequests при превышении лимита. Ошибка Redis
// не блокирует действие: запрос пропускается с записью в лог.
func Check(ctx context.Context, l Limiter, key string) error {
	if l == nil {
		return nil
	}
	ok, err := l.Allow(ctx, key)
	if err != nil {
		log.Printf("Ограничитель частоты недоступен, запрос %s пропущен: %v", key, err)
		return nil
	}
	if !ok {
		return apperr.ErrTooManyRequests
	}
	return nil
}
