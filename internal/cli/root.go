package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// PDFRenderer prints a rendered page to PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// App holds what the commands need beyond their flags.
type App struct {
	// NewRenderer builds the PDF renderer for a chrome binary path.
	NewRenderer func(execPath string) PDFRenderer
	Timeout     time.Duration
}

// NewRootCmd creates the top-level "resumectl" command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Render resume documents to HTML or PDF",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTemplatesCmd(),
		newValidateCmd(),
		newRenderCmd(),
		newPDFCmd(app),
	)

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(app *App) int {
	root := NewRootCmd(app)
	if err := root.Execute(); err != nil {
		root.PrintErrln("error:", err)
		return 1
	}
	return 0
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	cmd.Printf("wrote %s\n", path)
	return nil
}
