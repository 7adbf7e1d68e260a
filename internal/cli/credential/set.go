package credential

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	credentialservice "github.com/thenoetrevino/leadbook/internal/services/credential"
)

// SetCmd returns the credential set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the Twilio account SID and auth token",
		Long: `Save the Twilio account SID and auth token, replacing any saved pair.

Examples:
  leadbook credential set --sid=AC123 --token=secret
`,
		RunE: handler.Command(&setHandler{}, parseSetFlags),
	}

	cmd.Flags().String("sid", "", "Account SID (required)")
	cmd.Flags().String("token", "", "Auth token (required)")
	for _, name := range []string{"sid", "token"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}
	handler.AddOutputFlags(cmd, "No output on success")

	return cmd
}

type setHandler struct{}

// Execute implements the Handler interface
func (h *setHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	svc := args.App.CredentialService
	err := svc.Save(ctx, credentialservice.SaveRequest{
		SID:       args.GetString("sid", ""),
		AuthToken: args.GetString("token", ""),
	})
	if err != nil {
		return nil, err
	}

	if args.GetBool("quiet") {
		return cli.Silent{}, nil
	}

	cred, err := svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &credentialResult{SID: cred.SID, AuthToken: cred.MaskedToken(), Masked: true, saved: true}, nil
}

func parseSetFlags(cmd *cobra.Command) error {
	p := handler.NewFlagParser(cmd)
	if _, err := p.ParseString("sid"); err != nil {
		return err
	}
	_, err := p.ParseString("token")
	return err
}
