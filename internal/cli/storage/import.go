package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/persist"
)

type importResult struct {
	Tasks      int `json:"tasks"`
	Categories int `json:"categories"`
}

// ImportCmd returns the storage import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the board with a JSON document",
		Long: `Replace every task and category with the contents of a document written by
'tasklane storage export', or a browser localStorage dump with the keys
"todo-tasks" and "todo-categories". Use --in=- to read stdin.

Malformed documents are rejected and leave storage untouched.`,
		Args: cobra.NoArgs,
		RunE: runImport,
	}

	cmd.Flags().StringP("in", "i", "", "Input file, or - for stdin (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("in"))
	cli.AddOutputFlags(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	in, _ := cmd.Flags().GetString("in")
	var r io.Reader = cmd.InOrStdin()
	if in != "-" {
		f, err := os.Open(in)
		if err != nil {
			return formatter.Fail(cli.ExitError, "FILE_ERROR", err, "")
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	snap, err := persist.ReadSnapshot(r)
	if err != nil {
		return formatter.FailStore(err)
	}
	if err := a.Store.Import(cmd.Context(), snap); err != nil {
		return formatter.FailStore(err)
	}

	result := importResult{Tasks: len(a.Store.Tasks()), Categories: len(a.Store.Categories())}
	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "%s Imported %d tasks and %d categories\n",
			styles.SuccessStyle.Render("✓"), result.Tasks, result.Categories)
	})
}
