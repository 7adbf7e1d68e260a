package capability

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadbook/internal/capability"
	"github.com/thenoetrevino/leadbook/internal/cli"
	testutilcli "github.com/thenoetrevino/leadbook/internal/testutil/cli"
)

func TestListCapabilities(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Email/Gmail")
	assert.Contains(t, output, "Gmail - Coming Soon")

	output, err = testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--group", "forms", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Forms/My Forms", "Forms/Create", "Forms/Embed", "Forms/Settings"},
		strings.Split(strings.TrimSpace(output), "\n"))

	output, err = testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	var caps []capability.Capability
	testutilcli.ParseJSONData(t, output, &caps)
	assert.Len(t, caps, len(capability.All()))
}

func TestInvokeCapability(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, InvokeCmd(), []string{"Zapier", "--json"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, capability.ErrNotImplemented))
	assert.Contains(t, output, "NOT_IMPLEMENTED")
	assert.Contains(t, output, "Zapier - Coming Soon")

	_, err = testutilcli.ExecuteCLICommand(t, app, InvokeCmd(), []string{"Fax"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
