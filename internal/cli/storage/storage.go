package storage

import (
	"github.com/spf13/cobra"
)

// StorageCmd returns the storage parent command
func StorageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Manage persisted data",
		Long:  "Clear local storage, or move the whole board in and out as a JSON document.",
	}

	cmd.AddCommand(ClearCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())

	return cmd
}
