package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations creates the export log schema. Every step is idempotent.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Running export log migrations")

	for _, m := range migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("Export log schema is up to date")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

func migrations() []Migration {
	return []Migration{
		{Name: "create_export_events", Up: createExportEvents},
		{Name: "index_export_events_session", Up: indexExportEventsSession},
	}
}

func createExportEvents(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS export_events (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL,
			template_id TEXT NOT NULL,
			status TEXT NOT NULL,
			attempts INTEGER NOT NULL DEFAULT 0,
			size_bytes INTEGER NOT NULL DEFAULT 0,
			error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

// indexExportEventsSession is best-effort; lookups work without it.
func indexExportEventsSession(ctx context.Context, pool *pgxpool.Pool) error {
	query := `CREATE INDEX IF NOT EXISTS export_events_session_idx ON export_events (session_id);`

	if _, err := pool.Exec(ctx, query); err != nil {
		slog.Warn("Error creating export_events session index", "error", err)
		return nil
	}
	return nil
}
