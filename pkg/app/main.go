package app

import (
	"github.com/ghuser/orcamento/pkg/cache"
	"github.com/ghuser/orcamento/pkg/database"
	"github.com/ghuser/orcamento/pkg/events"
	"github.com/ghuser/orcamento/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Built once in main and passed to every service's route and subscriber wiring.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient // nil when REDIS_URL is unset
}
