package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/google/uuid"
)

// Builder runs editing sessions: every edit goes through the model's
// snapshot operations and the store swaps in the result.
type Builder struct {
	store    SessionStore
	renderer Renderer
	exports  ExportsRepo
	summary  SummaryGenerator

	attempts int
	backoff  time.Duration

	mu         sync.Mutex
	generating map[uuid.UUID]struct{}
}

type Option func(*Builder)

// WithRenderAttempts sets how many times a PDF export is tried.
func WithRenderAttempts(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.attempts = n
		}
	}
}

// WithBackoff sets the delay before the second render attempt. It doubles
// after each further failure.
func WithBackoff(d time.Duration) Option {
	return func(b *Builder) { b.backoff = d }
}

func NewBuilder(store SessionStore, r Renderer, exports ExportsRepo, summary SummaryGenerator, opts ...Option) *Builder {
	b := &Builder{
		store:      store,
		renderer:   r,
		exports:    exports,
		summary:    summary,
		attempts:   3,
		backoff:    time.Second,
		generating: map[uuid.UUID]struct{}{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewSession opens a session holding doc, or an empty document when doc is nil.
func (b *Builder) NewSession(ctx context.Context, doc *model.Document) (domain.Session, error) {
	initial := model.New()
	if doc != nil {
		initial = *doc
	}
	sess, err := b.store.Create(ctx, initial)
	if err != nil {
		return domain.Session{}, err
	}
	slog.Info("session opened", "session_id", sess.ID, "template", sess.Document.Meta.TemplateID)
	return sess, nil
}

func (b *Builder) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	return b.store.Get(ctx, id)
}

// Replace swaps the whole document of a session.
func (b *Builder) Replace(ctx context.Context, id uuid.UUID, doc model.Document) (domain.Session, error) {
	return b.store.Update(ctx, id, func(model.Document) (model.Document, error) {
		return doc.Clone(), nil
	})
}

func (b *Builder) Close(ctx context.Context, id uuid.UUID) error {
	if err := b.store.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("session closed", "session_id", id)
	return nil
}

func (b *Builder) EditPersonal(ctx context.Context, id uuid.UUID, field, value string) (domain.Session, error) {
	return b.store.Update(ctx, id, func(d model.Document) (model.Document, error) {
		return d.WithPersonalField(field, value)
	})
}

// AddEntry appends a blank entry and returns the updated session with the
// new entry's id.
func (b *Builder) AddEntry(ctx context.Context, id uuid.UUID, section model.Section) (domain.Session, string, error) {
	var entryID string
	sess, err := b.store.Update(ctx, id, func(d model.Document) (model.Document, error) {
		next, eid, err := d.AddEntry(section)
		entryID = eid
		return next, err
	})
	if err != nil {
		return domain.Session{}, "", err
	}
	return sess, entryID, nil
}

func (b *Builder) RemoveEntry(ctx context.Context, id uuid.UUID, section model.Section, entryID string) (domain.Session, error) {
	return b.store.Update(ctx, id, func(d model.Document) (model.Document, error) {
		return d.RemoveEntry(section, entryID)
	})
}

func (b *Builder) UpdateEntry(ctx context.Context, id uuid.UUID, section model.Section, entryID, field string, value any) (domain.Session, error) {
	return b.store.Update(ctx, id, func(d model.Document) (model.Document, error) {
		return d.UpdateEntry(section, entryID, field, value)
	})
}

// SetTemplate switches the template. The theme color follows the new
// template's default unless color is given.
func (b *Builder) SetTemplate(ctx context.Context, id uuid.UUID, tpl model.TemplateID, color *string) (domain.Session, error) {
	if !tpl.Known() {
		return domain.Session{}, model.ErrInvalidValue
	}
	return b.store.Update(ctx, id, func(d model.Document) (model.Document, error) {
		return d.WithTemplate(tpl, color), nil
	})
}

func (b *Builder) SetThemeColor(ctx context.Context, id uuid.UUID, color string) (domain.Session, error) {
	return b.store.Update(ctx, id, func(d model.Document) (model.Document, error) {
		return d.WithThemeColor(color), nil
	})
}

// Preview renders the session's current snapshot as a full HTML page.
func (b *Builder) Preview(ctx context.Context, id uuid.UUID) (string, error) {
	sess, err := b.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return render.Render(sess.Document)
}

// RenderDocument renders doc without a session.
func (b *Builder) RenderDocument(doc model.Document) (string, error) {
	return render.Render(doc)
}
