//go:build integration

package infrastructure

import (
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

func chromePath(t *testing.T) string {
	t.Helper()
	if p := os.Getenv("CHROME_PATH"); p != "" {
		return p
	}
	for _, name := range []string{"chromium", "chromium-browser", "google-chrome", "google-chrome-stable"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	t.Skip("no chrome binary found; set CHROME_PATH")
	return ""
}

func TestChromedpRenderer_PrintsPDF(t *testing.T) {
	doc := model.New().WithTemplate(model.TemplateCreative, nil)
	doc.PersonalInfo.FullName = "Ada Lovelace"
	html, err := render.Render(doc)
	require.NoError(t, err)

	pdf, err := NewChromedpRenderer(chromePath(t)).RenderHTMLToPDF(context.Background(), html)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
