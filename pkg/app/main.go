package app

import (
	"github.com/metazeka/backend/pkg/config"
	"github.com/metazeka/backend/pkg/database"
	"github.com/metazeka/backend/pkg/logger"
	"github.com/metazeka/backend/pkg/postgrest"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each bounded context's services.New during server initialization.
//
// Exactly one record store handle is set, chosen by Config.StoreDriver:
// Db for "postgres", Store for "postgrest".
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "listing created", "listing_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config *config.Config
	Logger logger.Logger
	Db     *database.Database
	Store  *postgrest.Client
}
