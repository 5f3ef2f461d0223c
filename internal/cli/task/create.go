package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task at the end of a category. New tasks start as todo.

Examples:
  # Simple task in the default category
  tasklane task create --title="Buy milk"

  # Into a named category, JSON output for scripts
  tasklane task create --title="Fix bug" --category=Work --json

  # Quiet mode for bash capture
  TASK_ID=$(tasklane task create --title="Fix bug" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("title"))
	cmd.Flags().String("category", "", "Category id or name (defaults to the default category)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	categoryRef, _ := cmd.Flags().GetString("category")

	category := a.Store.DefaultCategory()
	if categoryRef != "" {
		category, err = cli.ResolveCategory(a.Store, categoryRef)
		if err != nil {
			return formatter.Fail(cli.ExitNotFound, "CATEGORY_NOT_FOUND", err,
				fmt.Sprintf("Available categories: %s", cli.CategoryNames(a.Store)))
		}
	}

	task, err := a.Store.AddTask(cmd.Context(), store.NewTask{Title: title, CategoryID: category.ID})
	if err != nil {
		return formatter.FailStore(err)
	}

	view := cli.NewTaskView(a.Store, task)
	return formatter.Success(view, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task '%s' created (ID: %s)\n", styles.SuccessStyle.Render("✓"), view.Title, view.ID)
		fmt.Fprintf(w, "  Category: %s\n", view.CategoryName)
	})
}
