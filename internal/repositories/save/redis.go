package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-skilltrees/internal/redis"
)

const (
	saveKeyPrefix = "skilltrees:save:"
	saveIndexKey  = "skilltrees:saves"

	// Error messages
	errSaveNil     = "save cannot be nil"
	errSaveIDEmpty = "save ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis save repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL expires idle saves; zero keeps them forever.
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// NewRedis creates a new Redis-backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    cfg.TTL,
	}, nil
}

func saveKey(id string) string {
	return saveKeyPrefix + id
}

func validateSave(s *Save) error {
	if s == nil {
		return errors.InvalidArgument(errSaveNil)
	}
	if s.ID == "" {
		return errors.InvalidArgument(errSaveIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSave(input.Save); err != nil {
		return nil, err
	}

	key := saveKey(input.Save.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("save with ID %s already exists", input.Save.ID)
	}

	created := *input.Save
	now := r.clock.Now()
	created.Version = 1
	created.CreatedAt = now
	created.UpdatedAt = now

	data, err := json.Marshal(&created)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, r.ttl)
	pipe.SAdd(ctx, saveIndexKey, created.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create save")
	}

	return &CreateOutput{Save: &created}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	result, err := r.client.Get(ctx, saveKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get save")
	}

	s, err := decode(result)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Save: s}, nil
}

func decode(raw string) (*Save, error) {
	var s Save
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal save")
	}
	return &s, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSave(input.Save); err != nil {
		return nil, err
	}

	key := saveKey(input.Save.ID)
	updated := *input.Save
	updated.Version++
	updated.UpdatedAt = r.clock.Now()

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("save with ID %s not found", input.Save.ID)
			}
			return errors.Wrapf(err, "failed to get save")
		}
		existing, err := decode(raw)
		if err != nil {
			return err
		}
		if existing.Version != input.Save.Version {
			return errors.Newf(errors.CodeAborted, "save %s changed: version %d, have %d",
				input.Save.ID, existing.Version, input.Save.Version)
		}

		data, err := json.Marshal(&updated)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal save")
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}, key)
	if err == redis.TxFailedErr {
		return nil, errors.Newf(errors.CodeAborted, "save %s changed during update", input.Save.ID)
	}
	if err != nil {
		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to update save")
	}

	slog.DebugContext(ctx, "save updated",
		"save_id", updated.ID,
		"version", updated.Version)

	return &UpdateOutput{Save: &updated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, saveKey(input.ID))
	pipe.SRem(ctx, saveIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete save")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("save with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, saveIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list saves")
	}

	live := make([]string, 0, len(ids))
	for _, id := range ids {
		exists, err := r.client.Exists(ctx, saveKey(id)).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check save %s", id)
		}
		if exists == 0 {
			slog.WarnContext(ctx, "save expired, cleaning up index",
				"save_id", id)
			r.client.SRem(ctx, saveIndexKey, id)
			continue
		}
		live = append(live, id)
	}
	sort.Strings(live)

	return &ListOutput{IDs: live}, nil
}
