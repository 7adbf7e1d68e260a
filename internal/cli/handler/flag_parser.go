package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// FlagParser validates flags before a command opens the stores
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseLeadID extracts a lead ID from a flag
func (p *FlagParser) ParseLeadID(flagName string) (int, error) {
	return p.ParseInt(flagName)
}

// ParseString extracts a required, non-blank string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", flagName)
	}
	return value, nil
}

// ParseInt extracts a positive int flag
func (p *FlagParser) ParseInt(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", flagName)
	}
	return value, nil
}

// AddOutputFlags registers the --json and --quiet flags every command accepts
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}
