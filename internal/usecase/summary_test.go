package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

func newStore() *repository.SessionStore { return repository.NewSessionStore() }

// blockingSummary holds Generate open until release is closed.
type blockingSummary struct {
	started chan struct{}
	release chan struct{}
	text    string
}

func (g *blockingSummary) Generate(ctx context.Context, _ model.Document) (string, error) {
	close(g.started)
	select {
	case <-g.release:
		return g.text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestGenerateSummary_StoresResult(t *testing.T) {
	ctx := context.Background()
	b := newBuilder(t, nil, nil, fakeSummary{text: "Seasoned engineer."})
	sess, err := b.NewSession(ctx, nil)
	require.NoError(t, err)

	after, err := b.GenerateSummary(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer.", after.Document.PersonalInfo.Summary)
	assert.False(t, b.Generating(sess.ID))
}

func TestGenerateSummary_FailureKeepsSummary(t *testing.T) {
	ctx := context.Background()
	b := newBuilder(t, nil, nil, fakeSummary{err: errors.New("ai-service returned non-200 status: 500")})
	doc := model.New()
	doc.PersonalInfo.Summary = "Old summary"
	sess, err := b.NewSession(ctx, &doc)
	require.NoError(t, err)

	_, err = b.GenerateSummary(ctx, sess.ID)
	assert.ErrorIs(t, err, usecase.ErrGenerationFailed)

	got, err := b.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Old summary", got.Document.PersonalInfo.Summary)
	assert.False(t, b.Generating(sess.ID), "guard is released after a failure")
}

func TestGenerateSummary_RejectsConcurrentRequest(t *testing.T) {
	ctx := context.Background()
	gen := &blockingSummary{started: make(chan struct{}), release: make(chan struct{}), text: "Done."}
	b := newBuilder(t, nil, nil, gen)
	sess, err := b.NewSession(ctx, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := b.GenerateSummary(ctx, sess.ID)
		done <- err
	}()
	<-gen.started
	assert.True(t, b.Generating(sess.ID))

	_, err = b.GenerateSummary(ctx, sess.ID)
	assert.ErrorIs(t, err, usecase.ErrGenerationInFlight)

	close(gen.release)
	require.NoError(t, <-done)
	assert.False(t, b.Generating(sess.ID))
}

func TestGenerateSummary_KeepsEditsMadeMeanwhile(t *testing.T) {
	ctx := context.Background()
	gen := &blockingSummary{started: make(chan struct{}), release: make(chan struct{}), text: "Fresh summary."}
	b := newBuilder(t, nil, nil, gen)
	sess, err := b.NewSession(ctx, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := b.GenerateSummary(ctx, sess.ID)
		done <- err
	}()
	<-gen.started

	_, err = b.EditPersonal(ctx, sess.ID, "fullName", "Ada Lovelace")
	require.NoError(t, err)

	close(gen.release)
	require.NoError(t, <-done)

	got, err := b.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Document.PersonalInfo.FullName)
	assert.Equal(t, "Fresh summary.", got.Document.PersonalInfo.Summary)
}
