package main

import (
	"os"
	"time"

	"resume-builder/internal/cli"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	app := &cli.App{
		NewRenderer: func(execPath string) cli.PDFRenderer {
			if execPath == "" {
				execPath = os.Getenv("CHROME_PATH")
			}
			return infra.NewChromedpRenderer(execPath)
		},
		Timeout: 2 * time.Minute,
	}
	os.Exit(cli.Execute(app))
}
