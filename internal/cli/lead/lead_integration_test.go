package lead

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadbook/internal/cli"
	"github.com/thenoetrevino/leadbook/internal/models"
	testutilcli "github.com/thenoetrevino/leadbook/internal/testutil/cli"
)

func TestAddLeadCommand(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)

	tests := []struct {
		name      string
		args      []string
		shouldErr bool
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "quiet mode prints the new ID",
			args: []string{"--first", "Jane", "--last", "Doe", "--phone", "555-0100", "--job-type", "Residential", "--quiet"},
			checkFunc: func(t *testing.T, output string) {
				id, err := strconv.Atoi(strings.TrimSpace(output))
				require.NoError(t, err, "expected numeric ID, got %q", output)

				lead := testutilcli.GetLead(t, repo, id)
				assert.Equal(t, "Jane", lead.FirstName)
				assert.Equal(t, "555-0100", lead.Phone)
				assert.Equal(t, models.JobTypeResidential, lead.JobType)
				assert.Equal(t, models.LeadStatusInSystem, lead.LeadStatus)
			},
		},
		{
			name: "json mode returns the stored lead",
			args: []string{"--first", "Bob", "--email", "bob@x.com", "--json"},
			checkFunc: func(t *testing.T, output string) {
				var lead models.Lead
				testutilcli.ParseJSONData(t, output, &lead)
				assert.Positive(t, lead.ID)
				assert.Equal(t, "bob@x.com", lead.Email)
				assert.Equal(t, models.JobTypeUnknown, lead.JobType)
			},
		},
		{
			name: "all fields blank is accepted",
			args: []string{"--quiet"},
		},
		{
			name: "Other is stored as Unknown",
			args: []string{"--first", "Al", "--job-type", "Other", "--json"},
			checkFunc: func(t *testing.T, output string) {
				var lead models.Lead
				testutilcli.ParseJSONData(t, output, &lead)
				assert.Equal(t, models.JobTypeUnknown, lead.JobType)
			},
		},
		{
			name:      "invalid job type",
			args:      []string{"--first", "Al", "--job-type", "Industrial"},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutilcli.ExecuteCLICommand(t, app, AddCmd(), tt.args)
			if tt.shouldErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err, "output: %s", output)
			if tt.checkFunc != nil {
				tt.checkFunc(t, output)
			}
		})
	}
}

func TestAddLeadCommand_InvalidJobTypeIsUsageError(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	_, err := testutilcli.ExecuteCLICommand(t, app, AddCmd(), []string{"--job-type", "Industrial", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestListLeadsCommand(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)
	first := testutilcli.CreateTestLead(t, repo, "Jane", "Doe")
	second := testutilcli.CreateTestLead(t, repo, "John", "Smith")
	require.NoError(t, repo.UpdateLeadField(context.Background(), second, "lead_status", "Good Lead"))

	t.Run("quiet lists IDs in order", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(first)+"\n"+strconv.Itoa(second)+"\n", output)
	})

	t.Run("json returns every lead", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		var leads []models.Lead
		testutilcli.ParseJSONData(t, output, &leads)
		require.Len(t, leads, 2)
		assert.Equal(t, "Jane", leads[0].FirstName)
		assert.Equal(t, "John", leads[1].FirstName)
	})

	t.Run("status filter by index alias", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "1", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(second)+"\n", output)
	})

	t.Run("human output has a table", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Found 2 leads")
		assert.Contains(t, output, "Jane Doe")
		assert.Contains(t, output, "Good Lead")
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "Hot"})
		require.Error(t, err)
	})
}

func TestListLeadsCommand_Empty(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No leads found")
}

func TestShowLeadCommand(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)
	id := testutilcli.CreateTestLead(t, repo, "Jane", "Doe")

	output, err := testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", strconv.Itoa(id), "--json"})
	require.NoError(t, err)
	var lead models.Lead
	testutilcli.ParseJSONData(t, output, &lead)
	assert.Equal(t, id, lead.ID)
	assert.Equal(t, "Doe", lead.LastName)

	_, err = testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "999", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, err = testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "0"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestUpdateLeadCommand(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)
	id := testutilcli.CreateTestLead(t, repo, "Jane", "Doe")
	idArg := strconv.Itoa(id)

	tests := []struct {
		name      string
		args      []string
		exitCode  int
		checkFunc func(t *testing.T, lead *models.Lead)
	}{
		{
			name: "phone",
			args: []string{"--id", idArg, "--field", "phone", "--value", "555-0199", "--quiet"},
			checkFunc: func(t *testing.T, lead *models.Lead) {
				assert.Equal(t, "555-0199", lead.Phone)
			},
		},
		{
			name: "header label field name",
			args: []string{"--id", idArg, "--field", "Referred By", "--value", "Sam", "--quiet"},
			checkFunc: func(t *testing.T, lead *models.Lead) {
				assert.Equal(t, "Sam", lead.ReferredBy)
			},
		},
		{
			name: "status by index",
			args: []string{"--id", idArg, "--field", "status", "--value", "5", "--quiet"},
			checkFunc: func(t *testing.T, lead *models.Lead) {
				assert.Equal(t, models.LeadStatusClosed, lead.LeadStatus)
			},
		},
		{
			name: "clear a field",
			args: []string{"--id", idArg, "--field", "first_name", "--value", "", "--quiet"},
			checkFunc: func(t *testing.T, lead *models.Lead) {
				assert.Empty(t, lead.FirstName)
				assert.Equal(t, "Doe", lead.LastName)
			},
		},
		{
			name:     "id is not patchable",
			args:     []string{"--id", idArg, "--field", "id", "--value", "7"},
			exitCode: cli.ExitUsage,
		},
		{
			name:     "bad job type",
			args:     []string{"--id", idArg, "--field", "job_type", "--value", "Industrial"},
			exitCode: cli.ExitValidation,
		},
		{
			name:     "missing lead",
			args:     []string{"--id", "999", "--field", "phone", "--value", "1"},
			exitCode: cli.ExitNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutilcli.ExecuteCLICommand(t, app, UpdateCmd(), tt.args)
			if tt.exitCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.exitCode, cli.ExitCode(err))
				return
			}
			require.NoError(t, err, "output: %s", output)
			assert.Equal(t, idArg, strings.TrimSpace(output))
			tt.checkFunc(t, testutilcli.GetLead(t, repo, id))
		})
	}
}

func TestDeleteLeadCommand(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)

	t.Run("with --yes", func(t *testing.T) {
		id := testutilcli.CreateTestLead(t, repo, "Jane", "Doe")
		output, err := testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", strconv.Itoa(id), "--yes"})
		require.NoError(t, err)
		assert.Contains(t, output, "deleted")

		leads, err := repo.GetAllLeads(context.Background())
		require.NoError(t, err)
		assert.Empty(t, leads)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		_, err := testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "999", "--yes"})
		require.NoError(t, err)
	})

	t.Run("json without --yes is refused", func(t *testing.T) {
		id := testutilcli.CreateTestLead(t, repo, "Kept", "Lead")
		_, err := testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", strconv.Itoa(id), "--json"})
		require.Error(t, err)
		var usage *cli.UsageError
		assert.True(t, errors.As(err, &usage))

		lead := testutilcli.GetLead(t, repo, id)
		assert.Equal(t, "Kept", lead.FirstName)
	})

	t.Run("prompt answered no", func(t *testing.T) {
		id := testutilcli.CreateTestLead(t, repo, "Also", "Kept")
		stdout, stderr, err := testutilcli.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", strconv.Itoa(id)}, "n\n")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Delete lead #"+strconv.Itoa(id)+"? (y/N)")
		assert.NotContains(t, stdout, "y/N")
		assert.Contains(t, stdout, "Cancelled")
		testutilcli.GetLead(t, repo, id)
	})

	t.Run("prompt answered yes", func(t *testing.T) {
		id := testutilcli.CreateTestLead(t, repo, "Gone", "Soon")
		_, _, err := testutilcli.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", strconv.Itoa(id)}, "y\n")
		require.NoError(t, err)

		_, err = repo.GetLeadByID(context.Background(), id)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSeedLeadsCommand(t *testing.T) {
	repo, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, SeedCmd(), []string{"--count", "4", "--seed", "7", "--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(output), 4)

	count, err := repo.CountLeads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = testutilcli.ExecuteCLICommand(t, app, SeedCmd(), []string{"--count", "0"})
	require.Error(t, err)
}
