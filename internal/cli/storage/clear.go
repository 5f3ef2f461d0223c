package storage

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/persist"
)

type clearResult struct {
	Outcome string `json:"outcome"`
}

// ClearCmd returns the storage clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks and categories",
		Long: `Remove every task and category from local storage. The board starts over
with a single default category. Asks first unless --yes, --json or --quiet.`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	confirm := cli.Confirmer(yes || formatter.JSON || formatter.Quiet)

	outcome, err := a.Store.Reset(cmd.Context(), confirm)
	if err != nil {
		return formatter.FailStore(err)
	}

	return formatter.Success(clearResult{Outcome: outcome.String()}, func(w io.Writer) {
		if outcome != persist.ClearCompleted {
			fmt.Fprintln(w, "Cancelled")
			return
		}
		fmt.Fprintf(w, "%s Local storage cleared\n", styles.SuccessStyle.Render("✓"))
	})
}
