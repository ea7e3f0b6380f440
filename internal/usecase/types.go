package usecase

import (
	"context"
	"errors"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type SessionStore interface {
	Create(ctx context.Context, doc model.Document) (domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(model.Document) (model.Document, error)) (domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExportsRepo interface {
	Save(ctx context.Context, e *domain.ExportEvent) error
}

// SummaryGenerator writes a professional summary for a document.
type SummaryGenerator interface {
	Generate(ctx context.Context, doc model.Document) (string, error)
}

var (
	// ErrGenerationInFlight rejects a second summary request for a session
	// while the first one is still running.
	ErrGenerationInFlight = errors.New("summary generation already in progress")
	// ErrGenerationFailed wraps any generator failure.
	ErrGenerationFailed = errors.New("failed to generate summary")
	ErrInvalidPDF       = errors.New("invalid PDF output")
	ErrPDFUnavailable   = errors.New("pdf rendering unavailable")
)
