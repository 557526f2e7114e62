package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	toolkitevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-skilltrees/internal/catalog"
	"github.com/KirkDiggler/rpg-skilltrees/internal/config"
	"github.com/KirkDiggler/rpg-skilltrees/internal/events"
	"github.com/KirkDiggler/rpg-skilltrees/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-skilltrees/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-skilltrees/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-skilltrees/internal/redis"
	"github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save"
)

var (
	redisAddr   string
	catalogPath string
)

// addBackendFlags registers the flags of commands that open the save store.
func addBackendFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address, URL or comma-separated cluster nodes")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Skill tree catalog file")
}

// loadConfig reads the environment and applies the flags cmd was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = grpcPort
	}
	if cmd.Flags().Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if cmd.Flags().Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// app holds the dependencies shared by the server and the maintenance
// commands.
type app struct {
	redis       redis.Client
	saves       save.Repository
	bus         toolkitevents.EventBus
	progression progression.Service
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	skillCatalog, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", cfg.CatalogPath, err)
	}
	log.Info("catalog loaded",
		"path", cfg.CatalogPath,
		"trees", len(skillCatalog.TreeKeys()),
		"policy", skillCatalog.Settings().Policy)

	a := &app{bus: toolkitevents.NewBus()}
	if cfg.RedisAddr == config.MemoryStore {
		log.Warn("saves are kept in memory and lost on exit")
		a.saves = save.NewInMemory(clock.New())
	} else {
		redisClient, err := newRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		a.redis = redisClient

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err = redis.Ping(pingCtx, redisClient)
		pingCancel()
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("redis is not reachable at %s: %w", cfg.RedisAddr, err)
		}

		a.saves, err = save.NewRedis(&save.RedisConfig{
			Client: redisClient,
			Clock:  clock.New(),
			TTL:    cfg.SaveTTL,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create save repository: %w", err)
		}
	}

	if err := a.wire(skillCatalog); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire(skillCatalog *catalog.Catalog) error {
	interpreter, err := events.NewInterpreter(&events.Config{Bus: a.bus})
	if err != nil {
		return fmt.Errorf("failed to create event interpreter: %w", err)
	}

	progressionService, err := progression.NewOrchestrator(&progression.Config{
		SaveRepo:    a.saves,
		Catalog:     skillCatalog,
		IDGenerator: idgen.NewUUID("save"),
		Events:      interpreter,
	})
	if err != nil {
		return fmt.Errorf("failed to create progression orchestrator: %w", err)
	}

	a.progression = progressionService
	return nil
}

// Close releases the redis connection, if any.
func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close() // nolint:errcheck // safe to ignore on shutdown
	}
}

func newRedisClient(addr string) (redis.Client, error) {
	opts := &redis.Options{
		PoolSize:        10,
		MinIdleConns:    2,
		ConnMaxIdleTime: 5 * time.Minute,
		MaxRetries:      3,
	}
	if nodes := strings.Split(addr, ","); len(nodes) > 1 {
		return redis.NewClusterClient(nodes, opts)
	}
	return redis.NewClient(addr, opts)
}
