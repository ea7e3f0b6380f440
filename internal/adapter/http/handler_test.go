package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

type stubRenderer struct{ out []byte }

func (s stubRenderer) RenderHTMLToPDF(context.Context, string) ([]byte, error) { return s.out, nil }

type stubSummary struct {
	text string
	err  error
}

func (s stubSummary) Generate(context.Context, model.Document) (string, error) { return s.text, s.err }

func newApp(t *testing.T, sg usecase.SummaryGenerator) *fiber.App {
	t.Helper()
	b := usecase.NewBuilder(repository.NewSessionStore(), stubRenderer{out: []byte("%PDF-1.4")}, nil, sg,
		usecase.WithRenderAttempts(1))
	app := fiber.New()
	NewHandler(b).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func createSession(t *testing.T, app *fiber.App, body string) domain.Session {
	t.Helper()
	status, b := do(t, app, fiber.MethodPost, "/documents", body)
	require.Equal(t, fiber.StatusCreated, status, string(b))
	var sess domain.Session
	require.NoError(t, json.Unmarshal(b, &sess))
	return sess
}

func TestListTemplates(t *testing.T) {
	status, b := do(t, newApp(t, nil), fiber.MethodGet, "/templates", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b), `"modern"`)
	assert.Contains(t, string(b), `"creative"`)
}

func TestRenderDocument(t *testing.T) {
	app := newApp(t, nil)
	status, b := do(t, app, fiber.MethodPost, "/render",
		`{"personalInfo":{"fullName":"Ada Lovelace"},"meta":{"templateId":"classic"}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b), "Ada Lovelace")

	assert.Contains(t, string(b), "border-color: #111827")

	status, b = do(t, app, fiber.MethodPost, "/render", `{"experience":[{"id":"e1","jobTitle":"Engineer"}],"meta":{"templateId":"creative"}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b), "background-color: #8b5cf6")

	status, _ = do(t, app, fiber.MethodPost, "/render", `{"skills":"many"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSessionLifecycle(t *testing.T) {
	app := newApp(t, nil)
	sess := createSession(t, app, "")
	base := "/documents/" + sess.ID.String()

	status, _ := do(t, app, fiber.MethodPatch, base+"/personal", `{"field":"fullName","value":"Grace"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, b := do(t, app, fiber.MethodPost, base+"/skills", "")
	require.Equal(t, fiber.StatusCreated, status)
	var added struct {
		ID       string         `json:"id"`
		Document model.Document `json:"document"`
	}
	require.NoError(t, json.Unmarshal(b, &added))
	require.Len(t, added.Document.Skills, 1)
	assert.Equal(t, model.LevelIntermediate, added.Document.Skills[0].Level)

	status, _ = do(t, app, fiber.MethodPatch, base+"/skills/"+added.ID, `{"field":"level","value":"Expert"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, fiber.MethodPatch, base+"/skills/"+added.ID, `{"field":"level","value":"Guru"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, fiber.MethodPut, base+"/meta/template", `{"templateId":"creative"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, b = do(t, app, fiber.MethodGet, base+"/preview", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b), `<div class="avatar">G</div>`)

	status, b = do(t, app, fiber.MethodGet, base+"/pdf", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "%PDF-1.4", string(b))

	status, _ = do(t, app, fiber.MethodDelete, base+"/skills/"+added.ID, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, fiber.MethodDelete, base, "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = do(t, app, fiber.MethodGet, base, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestErrorMapping(t *testing.T) {
	app := newApp(t, nil)
	sess := createSession(t, app, `{"meta":{"templateId":"modern"}}`)
	base := "/documents/" + sess.ID.String()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"unknown session", fiber.MethodGet, "/documents/" + uuid.NewString(), "", fiber.StatusNotFound},
		{"malformed id", fiber.MethodGet, "/documents/nope", "", fiber.StatusNotFound},
		{"unknown section", fiber.MethodPost, base + "/hobbies", "", fiber.StatusBadRequest},
		{"unknown entry", fiber.MethodDelete, base + "/projects/missing", "", fiber.StatusNotFound},
		{"unknown personal field", fiber.MethodPatch, base + "/personal", `{"field":"age","value":"40"}`, fiber.StatusBadRequest},
		{"unknown template", fiber.MethodPut, base + "/meta/template", `{"templateId":"brutalist"}`, fiber.StatusBadRequest},
		{"schema failure", fiber.MethodPut, base, `{"experience":{}}`, fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := do(t, app, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, status)
		})
	}
}

func TestGenerateSummary(t *testing.T) {
	app := newApp(t, stubSummary{text: "Experienced engineer."})
	sess := createSession(t, app, "")

	status, b := do(t, app, fiber.MethodPost, "/documents/"+sess.ID.String()+"/summary", "")
	require.Equal(t, fiber.StatusOK, status)
	var got domain.Session
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "Experienced engineer.", got.Document.PersonalInfo.Summary)
}

func TestGenerateSummary_FailureNotice(t *testing.T) {
	app := newApp(t, stubSummary{err: errors.New("connection refused")})
	sess := createSession(t, app, "")

	status, b := do(t, app, fiber.MethodPost, "/documents/"+sess.ID.String()+"/summary", "")
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Contains(t, string(b), SummaryFailedNotice)
}
