package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// Session is one editing session. Document always holds the latest
// snapshot; edits replace it wholesale.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	Document  model.Document `json:"document"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ExportEvent records one PDF export. It carries no document content.
type ExportEvent struct {
	ID         uuid.UUID        `json:"id"`
	SessionID  uuid.UUID        `json:"session_id"`
	TemplateID model.TemplateID `json:"template_id"`
	Status     string           `json:"status"`
	Attempts   int              `json:"attempts"`
	SizeBytes  int              `json:"size_bytes"`
	Error      string           `json:"error,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

const (
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)

// ErrSessionNotFound is returned for unknown or closed sessions.
var ErrSessionNotFound = errors.New("session not found")
