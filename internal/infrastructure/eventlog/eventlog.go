// Package eventlog хранит id уже обработанных событий вебхука, чтобы повторная доставка
// не применялась дважды.
package eventlog

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"deal_factory/internal/domain"
	"deal_factory/pkg/errcodes"
)

// DefaultTTL Stripe повторяет доставку до трёх суток.
const DefaultTTL = 72 * time.Hour

const keyPrefix = "deal_factory:webhook:event:"

// Redis журнал событий в Redis, общий для всех инстансов.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (l *Redis) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := l.client.Exists(ctx, keyPrefix+eventID).Result()
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check event log")
	}
	return n > 0, nil
}

func (l *Redis) Mark(ctx context.Context, eventID string) error {
	if err := l.client.SetNX(ctx, keyPrefix+eventID, time.Now().Unix(), l.ttl).Err(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to mark event")
	}
	return nil
}

// Memory журнал в памяти процесса, используется когда Redis не настроен.
type Memory struct {
	cache *cache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{cache: cache.New(ttl, ttl/2)}
}

func (l *Memory) Seen(_ context.Context, eventID string) (bool, error) {
	_, found := l.cache.Get(eventID)
	return found, nil
}

func (l *Memory) Mark(_ context.Context, eventID string) error {
	// Add не перезаписывает существующую запись и не продлевает ей TTL
	_ = l.cache.Add(eventID, struct{}{}, cache.DefaultExpiration) //nolint:errcheck
	return nil
}
