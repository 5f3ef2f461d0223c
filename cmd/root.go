package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/category"
	clistorage "github.com/thenoetrevino/tasklane/internal/cli/storage"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/cli/task"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/launcher"
	"github.com/thenoetrevino/tasklane/internal/logging"
	"github.com/thenoetrevino/tasklane/internal/storage"
	"github.com/thenoetrevino/tasklane/internal/tui/theme"
)

// LogLevelEnv overrides the default log level
const LogLevelEnv = "TASKLANE_LOG_LEVEL"

// NewRootCmd builds the command tree. Running it with no subcommand opens
// the TUI.
func NewRootCmd() *cobra.Command {
	var closeLog func()

	rootCmd := &cobra.Command{
		Use:   "tasklane",
		Short: "tasklane - a terminal task tracker",
		Long: `tasklane tracks tasks in categories, shown as a kanban board or a sorted list.

Run without arguments to open the board, or use the subcommands for scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Tests inject their own app
			if _, err := cli.AppFromContext(cmd.Context()); err == nil {
				return nil
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return &cli.CommandError{Code: cli.ExitUsage, Err: err}
			}

			level, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")
			if logFile == "" {
				logFile = logging.DefaultPath(cfg.Storage.DataDir)
			}
			closeLog, err = logging.Init(level, logFile)
			if err != nil {
				return &cli.CommandError{Code: cli.ExitUsage, Err: err}
			}

			styles.Init(cfg.ColorScheme)
			theme.Init(cfg.ColorScheme)

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return &cli.CommandError{Code: cli.ExitError, Err: err}
			}
			cmd.SetContext(cli.WithApp(cmd.Context(), a))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog == nil {
				// App was injected; its owner closes it
				return nil
			}
			defer closeLog()
			if a, err := cli.AppFromContext(cmd.Context()); err == nil {
				return a.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cli.AppFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return launcher.Launch(cmd.Context(), a)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: $XDG_CONFIG_HOME/tasklane/config.yaml)")
	flags.String("data-dir", "", "Directory for the database and logs")
	flags.String("backend", "", "Storage backend: sqlite, file, memory")
	flags.Bool("ephemeral", false, "Keep everything in memory (same as --backend=memory)")
	flags.String("log-level", envOr(LogLevelEnv, "info"), "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Log file (default: <data-dir>/logs/tasklane.log)")

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(category.CategoryCmd())
	rootCmd.AddCommand(clistorage.StorageCmd())

	return rootCmd
}

// loadConfig reads the config file and applies the global flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		cfg.Storage.Backend = storage.BackendMemory
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil && !reported(err) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return cli.ExitCode(err)
}

// reported is true for errors a command already printed through its
// OutputFormatter
func reported(err error) bool {
	var cmdErr *cli.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Reported
}
