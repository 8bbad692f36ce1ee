package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vr-training-backend/configs"
	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure RedisConversationStore implements ConversationStore
var _ output.ConversationStore = (*RedisConversationStore)(nil)

const keyPrefix = "conversation:"

// RedisConversationStore struct - Output adapter storing each session's
// history as one JSON blob with a TTL. Suited to deployments where history
// is advisory context rather than a ledger; expiry clears stale sessions.
type RedisConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

type storedHistory struct {
	Turns []domain.Turn `json:"turns"`
}

// NewRedisConversationStore creates a new Redis-backed conversation store
// and verifies connectivity.
func NewRedisConversationStore(ctx context.Context, config configs.Redis) (*RedisConversationStore, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("redis url is required for the redis conversation store")
	}

	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := time.Duration(config.TTLSeconds) * time.Second
	if config.TTLSeconds <= 0 {
		ttl = 24 * time.Hour
	}

	logrus.Infof("Redis conversation store initialized, ttl: %v", ttl)

	return &RedisConversationStore{client: client, ttl: ttl}, nil
}

// FetchTurns loads the session's history blob. A missing key yields an
// empty slice; the TTL is refreshed on read so active sessions survive.
func (r *RedisConversationStore) FetchTurns(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	key := keyPrefix + sessionID
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return []domain.Turn{}, nil
		}
		return nil, fmt.Errorf("failed to load conversation history: %w", err)
	}

	var history storedHistory
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation history: %w", err)
	}

	r.client.Expire(ctx, key, r.ttl)
	return history.Turns, nil
}

// SaveTurn appends one turn via read-modify-write of the session blob.
// Concurrent writers for the same session are not expected; the pipeline
// serializes saves through its background worker.
func (r *RedisConversationStore) SaveTurn(ctx context.Context, turn domain.Turn) error {
	turns, err := r.FetchTurns(ctx, turn.SessionID)
	if err != nil {
		return err
	}

	turns = append(turns, turn)
	data, err := json.Marshal(storedHistory{Turns: turns})
	if err != nil {
		return fmt.Errorf("failed to marshal conversation history: %w", err)
	}

	return r.client.Set(ctx, keyPrefix+turn.SessionID, data, r.ttl).Err()
}
