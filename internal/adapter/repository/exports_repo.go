package repository

import (
	"context"
	"log/slog"

	"resume-builder/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ExportsRepo appends export events to the export_events table. Without a
// pool it accepts and drops every event.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, e *domain.ExportEvent) error {
	if r == nil || r.pool == nil {
		return nil
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO export_events (id, session_id, template_id, status, attempts, size_bytes, error, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO NOTHING`,
		e.ID, e.SessionID, string(e.TemplateID), e.Status, e.Attempts, e.SizeBytes, e.Error, e.CreatedAt)
	if err != nil {
		return err
	}
	slog.Debug("exports_repo: saved export event", "id", e.ID, "status", e.Status)
	return nil
}
