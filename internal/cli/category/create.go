package category

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
)

// CreateCmd returns the category create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new category",
		Long: `Create an empty category at the end of the board. Names need not be unique.

Examples:
  tasklane category create --name=Work
  CAT_ID=$(tasklane category create --name=Later --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Category name (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	category, err := a.Store.AddCategory(cmd.Context(), name)
	if err != nil {
		return formatter.FailStore(err)
	}

	view := cli.NewCategoryView(category)
	return formatter.Success(view, func(w io.Writer) {
		fmt.Fprintf(w, "%s Category '%s' created (ID: %s)\n", styles.SuccessStyle.Render("✓"), view.Name, view.ID)
	})
}
