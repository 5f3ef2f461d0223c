package category

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
)

// ListCmd returns the category list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories in board order",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	categories := a.Store.Categories()
	views := make(cli.CategoryList, len(categories))
	for i, c := range categories {
		views[i] = cli.NewCategoryView(c)
	}

	defaultID := a.Store.DefaultCategory().ID
	return formatter.Success(views, func(w io.Writer) {
		for _, v := range views {
			marker := " "
			if v.ID == defaultID {
				marker = styles.LabelStyle.Render("*")
			}
			fmt.Fprintf(w, "%s %s  %s  (%d tasks)\n", marker, v.ID, styles.TitleStyle.Render(v.Name), v.TaskCount)
		}
	})
}
