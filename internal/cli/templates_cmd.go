package cli

import (
	"fmt"
	"text/tabwriter"

	"resume-builder/internal/model"

	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOLOR")
			for _, t := range model.Templates() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Name, t.DefaultColor)
			}
			return w.Flush()
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a JSON or YAML document has the expected shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d experience, %d education, %d skills, %d projects (template %s)\n",
				len(doc.Experience), len(doc.Education), len(doc.Skills), len(doc.Projects), doc.Meta.TemplateID)
			return nil
		},
	}
}
