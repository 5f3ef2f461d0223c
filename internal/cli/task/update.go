package task

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		Long: `Change a task's title, status or category. Only the flags given are changed.
Changing the category appends the task to the end of the new category.

Examples:
  tasklane task update --id=<id> --status=done
  tasklane task update --id=<id> --title="New title" --category=Work
`,
		Args: cobra.NoArgs,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("id"))
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("status", "", "New status: todo, in-progress, done")
	cmd.Flags().String("category", "", "New category (id or name)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetString("id")
	task, err := cli.ResolveTask(a.Store, taskID)
	if err != nil {
		return formatter.FailStore(err)
	}

	var upd store.TaskUpdate
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		upd.Title = &title
	}
	if cmd.Flags().Changed("status") {
		raw, _ := cmd.Flags().GetString("status")
		status, err := models.ParseStatus(raw)
		if err != nil {
			return formatter.FailStore(err)
		}
		upd.Status = &status
	}
	if cmd.Flags().Changed("category") {
		ref, _ := cmd.Flags().GetString("category")
		category, err := cli.ResolveCategory(a.Store, ref)
		if err != nil {
			return formatter.FailStore(err)
		}
		upd.CategoryID = &category.ID
	}

	if upd.Title == nil && upd.Status == nil && upd.CategoryID == nil {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES", errors.New("nothing to update"),
			"Pass at least one of --title, --status, --category")
	}

	if err := a.Store.UpdateTask(cmd.Context(), task.ID, upd); err != nil {
		return formatter.FailStore(err)
	}

	updated, _ := a.Store.Task(task.ID)
	view := cli.NewTaskView(a.Store, updated)
	return formatter.Success(view, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task '%s' updated\n", styles.SuccessStyle.Render("✓"), view.Title)
		fmt.Fprintf(w, "  Status: %s\n", styles.Status(updated.Status))
		fmt.Fprintf(w, "  Category: %s\n", view.CategoryName)
	})
}
