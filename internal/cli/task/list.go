package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, newest first unless --sort says otherwise.

Examples:
  tasklane task list
  tasklane task list --status=done --sort=title
  tasklane task list --category=Work --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only tasks with this status: todo, in-progress, done")
	cmd.Flags().String("category", "", "Only tasks in this category (id or name)")
	cmd.Flags().String("sort", "created", "Sort by: created, title, status")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	statusFlag, _ := cmd.Flags().GetString("status")
	categoryRef, _ := cmd.Flags().GetString("category")
	sortFlag, _ := cmd.Flags().GetString("sort")

	var q store.Query

	q.Sort, err = store.ParseSortKey(sortFlag)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_SORT", err, "Valid sort keys are: created, title, status")
	}

	if statusFlag != "" {
		status, err := models.ParseStatus(statusFlag)
		if err != nil {
			return formatter.FailStore(err)
		}
		q.Status = &status
	}

	if categoryRef != "" {
		category, err := cli.ResolveCategory(a.Store, categoryRef)
		if err != nil {
			return formatter.FailStore(err)
		}
		q.CategoryID = category.ID
	}

	tasks := cli.NewTaskList(a.Store, a.Store.List(q))
	return formatter.Success(tasks, func(w io.Writer) {
		if len(tasks) == 0 {
			fmt.Fprintln(w, "No tasks found")
			return
		}
		for _, t := range tasks {
			status, _ := models.ParseStatus(t.Status)
			fmt.Fprintf(w, "%s  %s  %s  %s\n",
				styles.Status(status),
				styles.ValueStyle.Render(t.Title),
				styles.SubtitleStyle.Render("["+t.CategoryName+"]"),
				styles.SubtitleStyle.Render(t.ID))
		}
	})
}
