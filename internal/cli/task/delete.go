package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.NoArgs,
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("id"))
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")

	task, err := cli.ResolveTask(a.Store, taskID)
	if err != nil {
		return formatter.FailStore(err)
	}

	confirm := cli.Confirmer(force || formatter.JSON || formatter.Quiet)
	ok, err := confirm(fmt.Sprintf("Delete task '%s'?", task.Title))
	if err != nil {
		return formatter.Fail(cli.ExitError, "CONFIRM_ERROR", err, "Use --force to skip the prompt")
	}
	if !ok {
		fmt.Fprintln(formatter.Out, "Cancelled")
		return nil
	}

	if err := a.Store.DeleteTask(cmd.Context(), task.ID); err != nil {
		return formatter.FailStore(err)
	}

	return formatter.Success(map[string]string{"id": task.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task '%s' deleted\n", styles.SuccessStyle.Render("✓"), task.Title)
	})
}
