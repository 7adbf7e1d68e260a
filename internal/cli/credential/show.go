package credential

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
)

// ShowCmd returns the credential show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved Twilio credentials",
		Long: `Show the saved Twilio credentials. The auth token is masked unless --reveal is given.
Exits with code 3 when nothing has been saved.

Examples:
  leadbook credential show
  leadbook credential show --reveal --json
`,
		RunE: handler.Command(&showHandler{}, nil),
	}

	cmd.Flags().Bool("reveal", false, "Print the auth token in full")
	handler.AddOutputFlags(cmd, "Print the SID only")

	return cmd
}

type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cred, err := args.App.CredentialService.Load(ctx)
	if err != nil {
		return nil, err
	}

	if args.GetBool("quiet") {
		return cred.SID, nil
	}
	if args.GetBool("reveal") {
		return &credentialResult{SID: cred.SID, AuthToken: cred.AuthToken}, nil
	}
	return &credentialResult{SID: cred.SID, AuthToken: cred.MaskedToken(), Masked: true}, nil
}
