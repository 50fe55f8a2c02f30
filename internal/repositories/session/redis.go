package session

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheets/internal/redis"
)

const (
	// Key patterns: session:{token} and session:user:{user_id}
	sessionKeyPrefix = "session:"
	userIndexPrefix  = "session:user:"
	defaultTTL       = 24 * time.Hour

	errTokenEmpty    = "token cannot be empty"
	errUserIDInvalid = "user ID must be positive"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Token == "" {
		return nil, errors.InvalidArgument(errTokenEmpty)
	}
	if input.UserID <= 0 {
		return nil, errors.InvalidArgument(errUserIDInvalid)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	now := r.clock.Now()
	sess := &Session{
		Token:     input.Token,
		UserID:    input.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	indexKey := userIndexKey(input.UserID)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(input.Token), data, ttl)
	pipe.SAdd(ctx, indexKey, input.Token)
	pipe.Expire(ctx, indexKey, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store session")
	}

	return &CreateOutput{Session: sess}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Token == "" {
		return nil, errors.InvalidArgument(errTokenEmpty)
	}

	key := sessionKey(input.Token)
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFound("session not found")
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	if r.clock.Now().After(sess.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("session has expired")
	}

	return &GetOutput{Session: &sess}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Token == "" {
		return nil, errors.InvalidArgument(errTokenEmpty)
	}

	key := sessionKey(input.Token)
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return &DeleteOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err == nil && sess.UserID > 0 {
		pipe.SRem(ctx, userIndexKey(sess.UserID), input.Token)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}
	return &DeleteOutput{}, nil
}

func (r *redisRepository) DeleteByUser(ctx context.Context, input DeleteByUserInput) (*DeleteByUserOutput, error) {
	if input.UserID <= 0 {
		return nil, errors.InvalidArgument(errUserIDInvalid)
	}

	indexKey := userIndexKey(input.UserID)
	tokens, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list user sessions").WithMeta("user_id", input.UserID)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, sessionKey(token))
	}
	keys = append(keys, indexKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to revoke user sessions").WithMeta("user_id", input.UserID)
	}

	return &DeleteByUserOutput{Revoked: len(tokens)}, nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func userIndexKey(userID int64) string {
	return userIndexPrefix + strconv.FormatInt(userID, 10)
}
