package storage

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
)

// ExportCmd returns the storage export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board as a JSON document",
		Long: `Write every task and category as one JSON document, to stdout or --out.
The document uses the same keys as local storage and can be read back with
'tasklane storage import'.

Examples:
  tasklane storage export > backup.json
  tasklane storage export --out backup.json
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out, _ := cmd.Flags().GetString("out")
	if out == "" || out == "-" {
		if err := a.Adapter.Export(ctx, formatter.Out); err != nil {
			return formatter.FailStore(err)
		}
		return nil
	}

	f, err := os.Create(out)
	if err != nil {
		return formatter.Fail(cli.ExitError, "FILE_ERROR", err, "")
	}
	defer func() { _ = f.Close() }()

	if err := a.Adapter.Export(ctx, f); err != nil {
		return formatter.FailStore(err)
	}
	if err := f.Close(); err != nil {
		return formatter.Fail(cli.ExitError, "FILE_ERROR", err, "")
	}

	fmt.Fprintf(formatter.Err, "%s Exported %d tasks and %d categories to %s\n",
		styles.SuccessStyle.Render("✓"), len(a.Store.Tasks()), len(a.Store.Categories()), out)
	return nil
}
