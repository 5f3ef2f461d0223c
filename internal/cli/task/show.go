package task

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display a task card with its status, category and position.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetString("id")
	if len(args) > 0 {
		taskID = args[0]
	}
	if taskID == "" {
		return formatter.Fail(cli.ExitUsage, "MISSING_TASK_ID", fmt.Errorf("task ID is required"),
			"Usage: tasklane task show <id> or tasklane task show --id=<id>")
	}

	task, err := cli.ResolveTask(a.Store, taskID)
	if err != nil {
		return formatter.FailStore(err)
	}

	view := cli.NewTaskView(a.Store, task)
	total := 0
	if c, ok := a.Store.Category(task.CategoryID); ok {
		total = len(c.TaskIDs)
	}

	return formatter.Success(view, func(w io.Writer) {
		fmt.Fprint(w, styles.RenderMarkdown(cardMarkdown(view, total), styles.CardWidth))
	})
}

// cardMarkdown lays a task out as a small markdown document
func cardMarkdown(v cli.TaskView, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", v.Title)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Status | %s |\n", v.Status)
	fmt.Fprintf(&b, "| Category | %s |\n", v.CategoryName)
	fmt.Fprintf(&b, "| Position | %d of %d |\n", v.Position+1, total)
	fmt.Fprintf(&b, "| Created | %s |\n", v.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(&b, "| ID | `%s` |\n", v.ID)
	return b.String()
}
