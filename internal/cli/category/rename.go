package category

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
)

// RenameCmd returns the category rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a category",
		Long: `Rename a category. --id also accepts the current name.

Examples:
  tasklane category rename --id=<id> --name=Office
`,
		Args: cobra.NoArgs,
		RunE: runRename,
	}

	cmd.Flags().String("id", "", "Category ID (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("id"))
	cmd.Flags().String("name", "", "New name (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	ref, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")

	category, err := cli.ResolveCategory(a.Store, ref)
	if err != nil {
		return formatter.FailStore(err)
	}
	oldName := category.Name

	if err := a.Store.RenameCategory(cmd.Context(), category.ID, name); err != nil {
		return formatter.FailStore(err)
	}

	renamed, _ := a.Store.Category(category.ID)
	view := cli.NewCategoryView(renamed)
	return formatter.Success(view, func(w io.Writer) {
		fmt.Fprintf(w, "%s Category '%s' renamed to '%s'\n", styles.SuccessStyle.Render("✓"), oldName, view.Name)
	})
}
