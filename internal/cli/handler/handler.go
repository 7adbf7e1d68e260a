// Package handler runs leadbook commands: it validates flags, opens the
// stores, calls the handler and prints its result through cli.OutputFormatter.
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/leadbook/internal/app"
	"github.com/thenoetrevino/leadbook/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	// App holds the open stores. It is nil for commands built with SimpleCommand.
	App *app.App

	// Flags only contains flags given on the command line
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// Cmd returns the running cobra command, for its stdin/stdout
func (a *Arguments) Cmd() *cobra.Command {
	return a.cmd
}

// Command wraps a store-backed command.
// parseFlags may be nil; it runs before the stores are opened, and its error is
// reported as a usage error. The stores are closed when the handler returns.
func Command(h Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return run(h, parseFlags, true)
}

// SimpleCommand wraps a command that never touches the stores
func SimpleCommand(h Handler) func(*cobra.Command, []string) error {
	return run(h, nil, false)
}

func run(h Handler, parseFlags func(*cobra.Command) error, withStores bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := formatterFor(cmd)

		if parseFlags != nil {
			if err := parseFlags(cmd); err != nil {
				return cli.Report(formatter, &cli.UsageError{Msg: err.Error()})
			}
		}

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		if withStores {
			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return cli.Report(formatter, err)
			}
			defer func() {
				if err := cliInstance.Close(); err != nil {
					slog.Error("failed to close stores", "command", cmd.CommandPath(), "error", err)
				}
			}()
			arguments.App = cliInstance.App
		}

		result, err := h.Execute(ctx, arguments)
		if err != nil {
			return cli.Report(formatter, err)
		}
		return formatter.Success(result)
	}
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// parseFlagsToMap collects the explicitly set flags.
// leadbook commands only declare string, int, int64 and bool flags.
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)
	fs := cmd.Flags()

	fs.Visit(func(f *pflag.Flag) {
		var (
			v   any
			err error
		)
		switch f.Value.Type() {
		case "string":
			v, err = fs.GetString(f.Name)
		case "int":
			v, err = fs.GetInt(f.Name)
		case "int64":
			v, err = fs.GetInt64(f.Name)
		case "bool":
			v, err = fs.GetBool(f.Name)
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
			return
		}
		if err == nil {
			flags[f.Name] = v
		}
	})

	return flags
}

// GetString returns a string flag, or def when it was not given
func (a *Arguments) GetString(name, def string) string {
	if v, ok := a.Flags[name].(string); ok {
		return v
	}
	return def
}

// GetInt returns an int flag, or def when it was not given
func (a *Arguments) GetInt(name string, def int) int {
	if v, ok := a.Flags[name].(int); ok {
		return v
	}
	return def
}

// GetInt64 returns an int64 flag and whether it was given
func (a *Arguments) GetInt64(name string) (int64, bool) {
	v, ok := a.Flags[name].(int64)
	return v, ok
}

// GetBool returns a bool flag, false when it was not given
func (a *Arguments) GetBool(name string) bool {
	v, _ := a.Flags[name].(bool)
	return v
}
