package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadbook/internal/cli"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	"github.com/thenoetrevino/leadbook/internal/export"
	testutilcli "github.com/thenoetrevino/leadbook/internal/testutil/cli"
	"github.com/xuri/excelize/v2"
)

func TestExportCommand_CSVToStdout(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)
	testutilcli.CreateTestLead(t, repo, "Jane", "Doe")

	output, err := testutilcli.ExecuteCLICommand(t, app, ExportCmd(), []string{"--format", "csv", "--out", "-"})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Address,Phone,Email,Notes,Job Type", lines[0])
	assert.Equal(t, "Jane Doe,,,,,Unknown", lines[1])
}

func TestExportCommand_FormatFromExtension(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)
	testutilcli.CreateTestLead(t, repo, "Jane", "Doe")
	testutilcli.CreateTestLead(t, repo, "John", "Smith")

	path := filepath.Join(t.TempDir(), "out", "leads.xlsx")
	output, err := testutilcli.ExecuteCLICommand(t, app, ExportCmd(), []string{"--out", path, "--json"})
	require.NoError(t, err)

	var result exportResult
	testutilcli.ParseJSONData(t, output, &result)
	assert.Equal(t, export.FormatXLSX, result.Format)
	assert.Equal(t, 2, result.Count)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExportCommand_DefaultFileName(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)
	dir := t.TempDir()
	app.Config().Export.Dir = dir

	cmd := ExportCmd()
	fixed := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)
	cmd.RunE = handlerWithClock(fixed)

	output, err := testutilcli.ExecuteCLICommand(t, app, cmd, []string{"--format", "txt", "--quiet"})
	require.NoError(t, err)

	want := filepath.Join(dir, "leads-2024-03-09.txt")
	assert.Equal(t, want, strings.TrimSpace(output))
	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.Zero(t, info.Size(), "empty lead list exports an empty text file")
}

func TestExportCommand_Errors(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	_, err := testutilcli.ExecuteCLICommand(t, app, ExportCmd(), []string{"--format", "docx", "--out", "-"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = testutilcli.ExecuteCLICommand(t, app, ExportCmd(), []string{"--out", "-", "--json"})
	require.Error(t, err)
}

func handlerWithClock(now time.Time) func(*cobra.Command, []string) error {
	h := &exportHandler{now: func() time.Time { return now }}
	return handler.Command(h, parseExportFlags)
}
