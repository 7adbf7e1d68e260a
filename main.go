package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/leadbook/cmd"
	"github.com/thenoetrevino/leadbook/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// command handlers print their own errors
		var reported *cli.ReportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
