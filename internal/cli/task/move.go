package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to a category and position",
		Long: `Move a task into a category at a 0-based index. Without --index the task
goes to the end. Out of range indexes are clamped. Moving within the same
category reorders it.

Examples:
  tasklane task move --id=<id> --category=Done
  tasklane task move --id=<id> --category=Work --index=0
`,
		Args: cobra.NoArgs,
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("id"))
	cmd.Flags().String("category", "", "Destination category id or name (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("category"))
	cmd.Flags().Int("index", 0, "Position in the destination, clamped to its bounds (default: end)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetString("id")
	categoryRef, _ := cmd.Flags().GetString("category")
	index, _ := cmd.Flags().GetInt("index")

	task, err := cli.ResolveTask(a.Store, taskID)
	if err != nil {
		return formatter.FailStore(err)
	}
	dest, err := cli.ResolveCategory(a.Store, categoryRef)
	if err != nil {
		return formatter.Fail(cli.ExitNotFound, "CATEGORY_NOT_FOUND", err,
			fmt.Sprintf("Available categories: %s", cli.CategoryNames(a.Store)))
	}

	if !cmd.Flags().Changed("index") {
		index = len(dest.TaskIDs)
	}

	if err := a.Store.MoveTask(cmd.Context(), task.ID, dest.ID, index); err != nil {
		return formatter.FailStore(err)
	}

	moved, _ := a.Store.Task(task.ID)
	view := cli.NewTaskView(a.Store, moved)
	return formatter.Success(view, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task '%s' moved to %s (position %d)\n",
			styles.SuccessStyle.Render("✓"), view.Title, view.CategoryName, view.Position+1)
	})
}
