package category

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// DeleteCmd returns the category delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an empty category",
		Long: `Delete a category by --id or --name. Categories that still hold tasks are refused; move or
delete the tasks first. Requires confirmation unless --force, --json or --quiet.`,
		Args: cobra.NoArgs,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Category ID")
	cmd.Flags().String("name", "", "Category name")
	cmd.MarkFlagsOneRequired("id", "name")
	cmd.MarkFlagsMutuallyExclusive("id", "name")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter, a, err := cli.Prepare(cmd)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")
	force, _ := cmd.Flags().GetBool("force")

	var category models.Category
	var ok bool
	if id != "" {
		category, ok = a.Store.Category(id)
	} else {
		category, ok = a.Store.CategoryByName(name)
	}
	if !ok {
		return formatter.FailStore(fmt.Errorf("%w: %q", cli.ErrCategoryNotFound, id+name))
	}

	// Refuse before prompting
	if !category.IsEmpty() {
		return formatter.FailStore(fmt.Errorf("%w: '%s' has %d tasks", store.ErrCategoryNotEmpty, category.Name, len(category.TaskIDs)))
	}

	confirm := cli.Confirmer(force || formatter.JSON || formatter.Quiet)
	ok, err = confirm(fmt.Sprintf("Delete category '%s'?", category.Name))
	if err != nil {
		return formatter.Fail(cli.ExitError, "CONFIRM_ERROR", err, "Use --force to skip the prompt")
	}
	if !ok {
		fmt.Fprintln(formatter.Out, "Cancelled")
		return nil
	}

	if err := a.Store.DeleteCategory(cmd.Context(), category.ID); err != nil {
		return formatter.FailStore(err)
	}

	return formatter.Success(map[string]string{"id": category.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Category '%s' deleted\n", styles.SuccessStyle.Render("✓"), category.Name)
	})
}
