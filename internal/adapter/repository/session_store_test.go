package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore()

	doc := model.New()
	doc.PersonalInfo.FullName = "Ada"
	sess, err := s.Create(ctx, doc)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sess.ID)

	got, err := s.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Document.PersonalInfo.FullName)
}

func TestSessionStore_UpdateReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return start }

	sess, err := s.Create(ctx, model.New())
	require.NoError(t, err)

	s.now = func() time.Time { return start.Add(time.Minute) }
	updated, err := s.Update(ctx, sess.ID, func(d model.Document) (model.Document, error) {
		return d.WithThemeColor("#000000"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "#000000", updated.Document.Meta.ThemeColor)
	assert.Equal(t, start, updated.CreatedAt)
	assert.Equal(t, start.Add(time.Minute), updated.UpdatedAt)
}

func TestSessionStore_FailedUpdateKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore()
	sess, err := s.Create(ctx, model.New())
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.Update(ctx, sess.ID, func(d model.Document) (model.Document, error) {
		return d.WithThemeColor("#000000"), boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Document, got.Document)
}

func TestSessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore()
	sess, err := s.Create(ctx, model.New())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, sess.ID))
	_, err = s.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, s.Delete(ctx, sess.ID), domain.ErrSessionNotFound)

	_, err = s.Update(ctx, sess.ID, func(d model.Document) (model.Document, error) { return d, nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestExportsRepo_NoPoolDropsEvents(t *testing.T) {
	r := NewExportsRepo(nil)
	err := r.Save(context.Background(), &domain.ExportEvent{ID: uuid.New(), Status: domain.ExportCompleted})
	assert.NoError(t, err)
}
