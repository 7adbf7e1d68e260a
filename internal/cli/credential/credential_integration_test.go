package credential

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadbook/internal/cli"
	testutilcli "github.com/thenoetrevino/leadbook/internal/testutil/cli"
)

func TestShowCredential_NotSet(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	_, err := testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestSetCredential_ReplacesPair(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)

	_, err := testutilcli.ExecuteCLICommand(t, app, SetCmd(), []string{"--sid", "AC111", "--token", "first-token"})
	require.NoError(t, err)
	output, err := testutilcli.ExecuteCLICommand(t, app, SetCmd(), []string{"--sid", " AC222 ", "--token", "second-token"})
	require.NoError(t, err)
	assert.Contains(t, output, "AC222")
	assert.NotContains(t, output, "second-token")

	cred, err := repo.GetCredential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AC222", cred.SID)
	assert.Equal(t, "second-token", cred.AuthToken)
}

func TestSetCredential_RequiresBothValues(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)

	_, err := testutilcli.ExecuteCLICommand(t, app, SetCmd(), []string{"--sid", "AC1", "--token", "   "})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = repo.GetCredential(context.Background())
	assert.Error(t, err, "nothing should have been saved")
}

func TestShowCredential(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)
	_, err := testutilcli.ExecuteCLICommand(t, app, SetCmd(), []string{"--sid", "AC123", "--token", "abcdef123456", "--quiet"})
	require.NoError(t, err)

	output, err := testutilcli.ExecuteCLICommand(t, app, ShowCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "AC123")
	assert.Contains(t, output, "********3456")

	output, err = testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--reveal", "--json"})
	require.NoError(t, err)
	var got credentialResult
	testutilcli.ParseJSONData(t, output, &got)
	assert.Equal(t, "abcdef123456", got.AuthToken)
	assert.False(t, got.Masked)

	output, err = testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "AC123", strings.TrimSpace(output))
}
