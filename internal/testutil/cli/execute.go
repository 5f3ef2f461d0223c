package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/testutil"
)

// ExecuteCLICommand runs cmd with args against testApp and returns what it
// wrote to stdout. Stderr is discarded; use ExecuteCLICommandFull to see it.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandFull(t, testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandFull runs cmd with args against testApp and returns both
// output streams
func ExecuteCLICommandFull(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	testutil.SetupCobraCommand(cmd, args)

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return stdout.String(), stderr.String(), err
}
