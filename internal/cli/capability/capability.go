// Package capability lists the placeholder integrations
// e.g., leadbook capability list
package capability

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/capability"
	"github.com/thenoetrevino/leadbook/internal/cli"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
)

// CapabilityCmd returns the capability parent command
func CapabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capability",
		Short: "Integrations that are not available yet",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(InvokeCmd())

	return cmd
}

// ListCmd returns the capability list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List placeholder integrations",
		Long: `List placeholder integrations, optionally for one group.

Examples:
  leadbook capability list
  leadbook capability list --group=Email --json
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().String("group", "", "Only list one group (Calls, Email, Messaging, Forms, ...)")
	handler.AddOutputFlags(cmd, "IDs only")

	return cmd
}

type listHandler struct{}

type capabilityList []capability.Capability

// Human implements cli.HumanPrinter
func (l capabilityList) Human() string {
	if len(l) == 0 {
		return "No capabilities found\n"
	}
	var b strings.Builder
	for _, c := range l {
		fmt.Fprintf(&b, "%-28s %s\n", c.ID(), c.Message())
	}
	return b.String()
}

type idLines []capability.Capability

func (l idLines) Human() string {
	var b strings.Builder
	for _, c := range l {
		b.WriteString(c.ID() + "\n")
	}
	return b.String()
}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	caps := capability.All()
	if group := args.GetString("group", ""); group != "" {
		caps = capability.Group(group)
	}
	if args.GetBool("quiet") {
		return idLines(caps), nil
	}
	return capabilityList(caps), nil
}

// InvokeCmd returns the capability invoke subcommand
func InvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke <name>",
		Short: "Run a placeholder integration (always reports Coming Soon)",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(&invokeHandler{}),
	}
	handler.AddOutputFlags(cmd, "No output")
	return cmd
}

type invokeHandler struct{}

// Execute implements the Handler interface
func (h *invokeHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	c, ok := capability.Lookup(args.Args[0])
	if !ok {
		return nil, &cli.UsageError{Msg: fmt.Sprintf("unknown capability %q (see: leadbook capability list)", args.Args[0])}
	}
	return nil, c.Invoke()
}
