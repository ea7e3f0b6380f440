package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// GenerateSummary asks the generator for a professional summary of the
// session's document and stores it as personalInfo.summary. Only one
// request per session may run at a time. The result is applied to whatever
// the snapshot is when it arrives, so edits made meanwhile are kept.
func (b *Builder) GenerateSummary(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	sess, err := b.store.Get(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	if b.summary == nil {
		return domain.Session{}, fmt.Errorf("%w: no generator configured", ErrGenerationFailed)
	}
	if !b.beginGeneration(id) {
		return domain.Session{}, ErrGenerationInFlight
	}
	defer b.endGeneration(id)

	text, err := b.summary.Generate(ctx, sess.Document)
	if err != nil {
		slog.Error("summary generation failed", "session_id", id, "error", err)
		return domain.Session{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	updated, err := b.store.Update(ctx, id, func(d model.Document) (model.Document, error) {
		return d.WithPersonalField("summary", text)
	})
	if err != nil {
		return domain.Session{}, err
	}
	slog.Info("summary generated", "session_id", id, "length", len(text))
	return updated, nil
}

// Generating reports whether a summary request is running for the session.
func (b *Builder) Generating(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.generating[id]
	return ok
}

func (b *Builder) beginGeneration(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, busy := b.generating[id]; busy {
		return false
	}
	b.generating[id] = struct{}{}
	return true
}

func (b *Builder) endGeneration(id uuid.UUID) {
	b.mu.Lock()
	delete(b.generating, id)
	b.mu.Unlock()
}
