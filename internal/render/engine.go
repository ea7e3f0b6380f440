package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Strategy is one of the fixed layouts.
type Strategy int

const (
	Modern Strategy = iota
	Classic
	Creative
)

// StrategyFor resolves a template id. Anything unrecognized renders as Modern.
func StrategyFor(id model.TemplateID) Strategy {
	switch id {
	case model.TemplateModern:
		return Modern
	case model.TemplateClassic:
		return Classic
	case model.TemplateCreative:
		return Creative
	default:
		return Modern
	}
}

func (s Strategy) TemplateID() model.TemplateID {
	switch s {
	case Classic:
		return model.TemplateClassic
	case Creative:
		return model.TemplateCreative
	default:
		return model.TemplateModern
	}
}

func (s Strategy) String() string { return string(s.TemplateID()) }

// DefaultAccent is used when the document carries no usable accent color.
func (s Strategy) DefaultAccent() string { return s.TemplateID().DefaultColor() }

type heading struct {
	Title  string
	Accent template.CSS
}

var layouts = template.Must(template.New("layouts").Funcs(template.FuncMap{
	"heading": func(title string, accent template.CSS) heading {
		return heading{Title: title, Accent: accent}
	},
}).ParseFS(templatesFS, "templates/*.tmpl"))

// RenderBody renders only the layout fragment for doc.
func RenderBody(doc model.Document) (string, error) {
	v := BuildView(doc)
	var buf bytes.Buffer
	if err := layouts.ExecuteTemplate(&buf, v.Strategy.String(), v); err != nil {
		return "", fmt.Errorf("render %s: %w", v.Strategy, err)
	}
	return buf.String(), nil
}

// Render renders doc as a standalone A4 HTML page ready for printing.
func Render(doc model.Document) (string, error) {
	body, err := RenderBody(doc)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	page := map[string]any{
		"Title": doc.PersonalInfo.FullName,
		"Body":  template.HTML(body),
	}
	if err := layouts.ExecuteTemplate(&buf, "page", page); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}
