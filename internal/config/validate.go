package config

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"ideaforge/internal/tasks"
)

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Address == "" {
			return errors.New("redis.address is required for the redis backend")
		}
	case BackendPostgres, BackendSQLite:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the %s backend", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("storage.backend must be one of memory, redis, postgres, sqlite, got %q", c.Storage.Backend)
	}

	if c.Suggestions.DefaultLimit <= 0 {
		return errors.New("suggestions.default_limit must be a positive integer")
	}
	if c.Suggestions.MinConfidence < 0 || c.Suggestions.MinConfidence > 1 {
		return fmt.Errorf("suggestions.min_confidence (%v) must be within [0,1]", c.Suggestions.MinConfidence)
	}
	if c.History.MaxEntries < 0 {
		return errors.New("history.max_entries must not be negative")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port (%d) is out of range", c.Server.Port)
	}

	if c.History.Async {
		if err := c.validateAsyncHistory(); err != nil {
			return err
		}
	}
	if c.Worker.Concurrency <= 0 {
		return errors.New("worker.concurrency must be a positive integer")
	}
	if len(c.Worker.Queues) == 0 {
		return errors.New("worker.queues must define at least one queue")
	}
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue '%s' must be positive", name)
		}
	}
	return nil
}

// validateAsyncHistory checks that the serving process and the worker see the
// same history: both need Redis for the queue and a backend outside either
// process, and the worker must consume the history queue.
func (c *Config) validateAsyncHistory() error {
	if c.Redis.Address == "" {
		return errors.New("redis.address is required when history.async is true")
	}
	switch c.Storage.Backend {
	case BackendRedis, BackendPostgres:
	case BackendSQLite:
		if c.Storage.DSN == ":memory:" || strings.Contains(c.Storage.DSN, "mode=memory") {
			return errors.New("history.async needs a file-backed sqlite storage.dsn, not an in-memory database")
		}
	default:
		return fmt.Errorf("history.async needs a shared storage backend (redis, postgres or sqlite), got %q", c.Storage.Backend)
	}
	if c.Worker.Queues[tasks.QueueHistory] <= 0 {
		return fmt.Errorf("worker.queues must include %q when history.async is true", tasks.QueueHistory)
	}
	return nil
}
