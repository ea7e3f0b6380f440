package cli

import (
	"context"
	"errors"
	"fmt"

	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/spf13/cobra"
)

type renderFlags struct {
	out      string
	template string
	color    string
}

func (f *renderFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "override the document's template (modern, classic, creative)")
	cmd.Flags().StringVar(&f.color, "color", "", "override the theme color")
}

// apply loads the document named by args and applies the flag overrides.
func (f *renderFlags) apply(cmd *cobra.Command, path string) (model.Document, error) {
	doc, err := readDocument(cmd.InOrStdin(), path)
	if err != nil {
		return model.Document{}, err
	}
	if f.template != "" {
		id := model.TemplateID(f.template)
		if !id.Known() {
			return model.Document{}, fmt.Errorf("%w: unknown template %q", model.ErrInvalidValue, f.template)
		}
		doc = doc.WithTemplate(id, nil)
	}
	if f.color != "" {
		doc = doc.WithThemeColor(f.color)
	}
	return doc, nil
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a JSON or YAML document to a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := flags.apply(cmd, args[0])
			if err != nil {
				return err
			}
			html, err := render.Render(doc)
			if err != nil {
				return err
			}
			return writeOutput(cmd, flags.out, []byte(html))
		},
	}
	flags.bind(cmd)
	return cmd
}

func newPDFCmd(app *App) *cobra.Command {
	var (
		flags  renderFlags
		chrome string
	)
	cmd := &cobra.Command{
		Use:   "pdf FILE",
		Short: "Render a JSON or YAML document to an A4 PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app == nil || app.NewRenderer == nil {
				return errors.New("pdf rendering is not configured")
			}
			if flags.out == "" {
				return errors.New("--output is required for pdf")
			}
			doc, err := flags.apply(cmd, args[0])
			if err != nil {
				return err
			}
			html, err := render.Render(doc)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if app.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, app.Timeout)
				defer cancel()
			}
			pdf, err := app.NewRenderer(chrome).RenderHTMLToPDF(ctx, html)
			if err != nil {
				return fmt.Errorf("render pdf: %w", err)
			}
			return writeOutput(cmd, flags.out, pdf)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&chrome, "chrome", "", "path to the chrome/chromium binary")
	return cmd
}
