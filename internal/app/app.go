package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"ideaforge/internal/config"
	"ideaforge/internal/services"
	"ideaforge/internal/store"
	"ideaforge/internal/store/cache"
	"ideaforge/internal/store/memory"
	"ideaforge/internal/store/primary"
	"ideaforge/internal/store/sqlite"
	"ideaforge/internal/strategies"
	"ideaforge/pkg/analyzer"
)

type App struct {
	Config *config.Config

	KV       store.KVStore
	Profiles store.ProfileStore
	// History is always the synchronous store; the worker appends through it.
	History store.HistoryStore
	// Recorder is what the service writes to: History, or the asynq recorder
	// when history.async is set.
	Recorder store.HistoryWriter

	SuggestionService *services.SuggestionService

	closers []func() error
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{Config: cfg}

	ConfigureLogging(cfg)

	if err := app.initKVStore(ctx); err != nil {
		return nil, err
	}
	app.initStores()
	app.initRecorder()
	if err := app.initSuggestionService(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}

	log.WithField("backend", cfg.Storage.Backend).Debug("Application initialization complete.")
	return app, nil
}

// ConfigureLogging applies log.level and log.format to the standard logger.
func ConfigureLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	if cfg.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// --- Private Helper Methods ---

func (a *App) initKVStore(ctx context.Context) error {
	var (
		kv  store.KVStore
		err error
	)
	switch a.Config.Storage.Backend {
	case config.BackendMemory, "":
		kv = memory.New()
	case config.BackendRedis:
		kv, err = cache.NewRedisStore(ctx, cache.Options{
			Addr:     a.Config.Redis.Address,
			Password: a.Config.Redis.Password,
			DB:       a.Config.Redis.DB,
		})
	case config.BackendPostgres:
		kv, err = primary.NewPrimaryStore(ctx, a.Config.Storage.DSN)
	case config.BackendSQLite:
		kv, err = sqlite.New(a.Config.Storage.DSN)
	default:
		err = fmt.Errorf("unknown storage backend %q", a.Config.Storage.Backend)
	}
	if err != nil {
		return fmt.Errorf("init %s store: %w", a.Config.Storage.Backend, err)
	}
	a.KV = kv
	a.closers = append(a.closers, kv.Close)
	return nil
}

func (a *App) initStores() {
	a.Profiles = store.NewKVProfileStore(a.KV)
	a.History = store.NewKVHistoryStore(a.KV, a.Config.History.MaxEntries, time.Now)
}

func (a *App) initRecorder() {
	if !a.Config.History.Async {
		a.Recorder = a.History
		return
	}
	rec := store.NewAsynqHistoryRecorder(a.RedisClientOpt())
	a.Recorder = rec
	a.closers = append(a.closers, rec.Close)
}

func (a *App) initSuggestionService() error {
	an := analyzer.New()
	svc, err := services.NewSuggestionService(services.SuggestionServiceDeps{
		Profiles:      a.Profiles,
		History:       a.Recorder,
		HistoryReader: a.History,
		Registry: strategies.DefaultRegistry(strategies.Deps{
			Analyzer:  an,
			Sentences: analyzer.NewSentenceSplitter(),
		}),
		Analyzer:             an,
		DefaultLimit:         a.Config.Suggestions.DefaultLimit,
		DefaultMinConfidence: &a.Config.Suggestions.MinConfidence,
		Logger:               log.StandardLogger(),
	})
	if err != nil {
		return fmt.Errorf("init suggestion service: %w", err)
	}
	a.SuggestionService = svc
	return nil
}

// RedisClientOpt is the asynq connection shared by the recorder and worker.
func (a *App) RedisClientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     a.Config.Redis.Address,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	}
}

// Close releases every backend connection, newest first.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.WithError(err).Warn("Error closing application resource")
			if first == nil {
				first = err
			}
		}
	}
	a.closers = nil
	return first
}

func (a *App) cleanupPartialInit() {
	_ = a.Close()
}
