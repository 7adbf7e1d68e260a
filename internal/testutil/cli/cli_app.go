package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/app"
	leadcli "github.com/thenoetrevino/leadbook/internal/cli"
	"github.com/thenoetrevino/leadbook/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance
// The app travels in the context so GetCLIFromContext never opens real stores
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	SetupCobraCommand(cmd, args)
	ctxWithApp := leadcli.WithApp(ctx, testApp)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}

// ExecuteCLICommandWithInput feeds stdin to the command and returns stdout and
// stderr separately, for commands that prompt
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin string) (stdout, stderr string, err error) {
	t.Helper()

	SetupCobraCommand(cmd, args)
	cmd.SetIn(strings.NewReader(stdin))
	ctx := leadcli.WithApp(context.Background(), testApp)

	stdout, stderr = testutil.CaptureStreams(t, func() {
		err = cmd.ExecuteContext(ctx)
	})
	return stdout, stderr, err
}
