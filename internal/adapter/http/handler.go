package http

import (
	"errors"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SummaryFailedNotice is shown to the user when generation fails.
const SummaryFailedNotice = "Failed to generate summary. Please try again."

type Handler struct {
	builder *usecase.Builder
}

func NewHandler(b *usecase.Builder) *Handler {
	return &Handler{builder: b}
}

// Register mounts every route on app. Literal segments are registered
// before the :section wildcard so they win.
func (h *Handler) Register(app fiber.Router) {
	app.Get("/templates", h.ListTemplates)
	app.Post("/render", h.RenderDocument)

	docs := app.Group("/documents")
	docs.Post("/", h.CreateDocument)
	docs.Get("/:id", h.GetDocument)
	docs.Put("/:id", h.ReplaceDocument)
	docs.Delete("/:id", h.CloseDocument)
	docs.Patch("/:id/personal", h.EditPersonal)
	docs.Put("/:id/meta/template", h.SetTemplate)
	docs.Put("/:id/meta/color", h.SetThemeColor)
	docs.Get("/:id/preview", h.Preview)
	docs.Get("/:id/pdf", h.ExportPDF)
	docs.Post("/:id/summary", h.GenerateSummary)
	docs.Post("/:id/:section", h.AddEntry)
	docs.Patch("/:id/:section/:entryId", h.UpdateEntry)
	docs.Delete("/:id/:section/:entryId", h.RemoveEntry)
}

type fieldReq struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

type personalReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type templateReq struct {
	TemplateID model.TemplateID `json:"templateId"`
	ThemeColor *string          `json:"themeColor,omitempty"`
}

type colorReq struct {
	ThemeColor string `json:"themeColor"`
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": model.Templates()})
}

func (h *Handler) RenderDocument(c *fiber.Ctx) error {
	doc, err := model.Decode(c.Body())
	if err != nil {
		return fail(c, err)
	}
	html, err := h.builder.RenderDocument(doc)
	if err != nil {
		return fail(c, err)
	}
	return sendHTML(c, html)
}

func (h *Handler) CreateDocument(c *fiber.Ctx) error {
	var initial *model.Document
	if len(c.Body()) > 0 {
		doc, err := model.Decode(c.Body())
		if err != nil {
			return fail(c, err)
		}
		initial = &doc
	}
	sess, err := h.builder.NewSession(c.UserContext(), initial)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sess)
}

func (h *Handler) GetDocument(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	sess, err := h.builder.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) ReplaceDocument(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	doc, err := model.Decode(c.Body())
	if err != nil {
		return fail(c, err)
	}
	sess, err := h.builder.Replace(c.UserContext(), id, doc)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) CloseDocument(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.builder.Close(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) EditPersonal(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	var req personalReq
	if err := c.BodyParser(&req); err != nil {
		return badPayload(c)
	}
	sess, err := h.builder.EditPersonal(c.UserContext(), id, req.Field, req.Value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) AddEntry(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	section, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return fail(c, err)
	}
	sess, entryID, err := h.builder.AddEntry(c.UserContext(), id, section)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": entryID, "document": sess.Document})
}

func (h *Handler) UpdateEntry(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	section, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return fail(c, err)
	}
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return badPayload(c)
	}
	sess, err := h.builder.UpdateEntry(c.UserContext(), id, section, c.Params("entryId"), req.Field, req.Value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	section, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return fail(c, err)
	}
	sess, err := h.builder.RemoveEntry(c.UserContext(), id, section, c.Params("entryId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	var req templateReq
	if err := c.BodyParser(&req); err != nil {
		return badPayload(c)
	}
	sess, err := h.builder.SetTemplate(c.UserContext(), id, req.TemplateID, req.ThemeColor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) SetThemeColor(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	var req colorReq
	if err := c.BodyParser(&req); err != nil {
		return badPayload(c)
	}
	sess, err := h.builder.SetThemeColor(c.UserContext(), id, req.ThemeColor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	html, err := h.builder.Preview(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return sendHTML(c, html)
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	pdf, err := h.builder.ExportPDF(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdf)
}

func (h *Handler) GenerateSummary(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	sess, err := h.builder.GenerateSummary(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sess)
}

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// an id that cannot parse can never name a session
		return uuid.Nil, domain.ErrSessionNotFound
	}
	return id, nil
}

func sendHTML(c *fiber.Ctx, html string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func badPayload(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
}

func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	switch {
	case errors.Is(err, usecase.ErrGenerationFailed):
		msg = SummaryFailedNotice
	case status == fiber.StatusInternalServerError:
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		msg = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, model.ErrEntryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrUnknownSection),
		errors.Is(err, model.ErrUnknownField),
		errors.Is(err, model.ErrInvalidValue),
		errors.Is(err, model.ErrInvalidDocument):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrGenerationInFlight):
		return fiber.StatusConflict
	case errors.Is(err, usecase.ErrGenerationFailed),
		errors.Is(err, usecase.ErrInvalidPDF):
		return fiber.StatusBadGateway
	case errors.Is(err, usecase.ErrPDFUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
