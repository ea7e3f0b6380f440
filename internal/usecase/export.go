package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/render"

	"github.com/google/uuid"
)

// ExportPDF renders the session's current snapshot and prints it to an A4
// PDF. Rendering is retried with exponential backoff; each outcome is
// recorded as an export event.
func (b *Builder) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if b.renderer == nil {
		return nil, ErrPDFUnavailable
	}
	sess, err := b.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	html, err := render.Render(sess.Document)
	if err != nil {
		return nil, err
	}

	pdf, attempts, renderErr := b.renderWithRetry(ctx, html)

	event := &domain.ExportEvent{
		ID:         uuid.New(),
		SessionID:  id,
		TemplateID: render.StrategyFor(sess.Document.Meta.TemplateID).TemplateID(),
		Status:     domain.ExportCompleted,
		Attempts:   attempts,
		SizeBytes:  len(pdf),
		CreatedAt:  time.Now(),
	}
	if renderErr != nil {
		event.Status = domain.ExportFailed
		event.Error = renderErr.Error()
		event.SizeBytes = 0
	}
	b.recordExport(ctx, event)

	if renderErr != nil {
		return nil, renderErr
	}
	return pdf, nil
}

func (b *Builder) renderWithRetry(ctx context.Context, html string) ([]byte, int, error) {
	var renderErr error
	for i := 0; i < b.attempts; i++ {
		pdf, err := b.renderer.RenderHTMLToPDF(ctx, html)
		if err == nil {
			if bytes.HasPrefix(pdf, []byte("%PDF")) {
				return pdf, i + 1, nil
			}
			err = fmt.Errorf("%w (len=%d)", ErrInvalidPDF, len(pdf))
		}
		renderErr = err
		slog.Warn("pdf render attempt failed", "attempt", i+1, "error", err)

		if i < b.attempts-1 {
			select {
			case <-time.After(b.backoff << i):
			case <-ctx.Done():
				return nil, i + 1, ctx.Err()
			}
		}
	}
	return nil, b.attempts, fmt.Errorf("rendering failed after %d attempts: %w", b.attempts, renderErr)
}

// recordExport is best-effort; a failed insert never fails the export.
func (b *Builder) recordExport(ctx context.Context, e *domain.ExportEvent) {
	if b.exports == nil {
		return
	}
	if err := b.exports.Save(ctx, e); err != nil {
		slog.Warn("failed to record export event", "session_id", e.SessionID, "error", err)
	}
}
