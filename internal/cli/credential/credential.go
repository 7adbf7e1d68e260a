// Package credential holds the Twilio credential commands
// e.g., leadbook credential ...
package credential

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CredentialCmd returns the credential parent command
func CredentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credential",
		Aliases: []string{"twilio"},
		Short:   "Manage the saved Twilio credentials",
	}

	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// credentialResult is the stored pair; the token is masked unless revealed
type credentialResult struct {
	SID       string `json:"sid"`
	AuthToken string `json:"auth_token"`
	Masked    bool   `json:"masked"`
	saved     bool
}

// Human implements cli.HumanPrinter
func (r *credentialResult) Human() string {
	if r.saved {
		return fmt.Sprintf("✓ Twilio credentials saved (SID %s)\n", r.SID)
	}
	return fmt.Sprintf("Account SID: %s\nAuth Token:  %s\n", r.SID, r.AuthToken)
}
