// Package output печатает результаты команд клиента.
package output

import (
	"encoding/json"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

// JSONEnabled reports whether --json was given.
func JSONEnabled(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("json")
	return err == nil && v
}

func JSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func Success(cmd *cobra.Command, msg string) {
	_, _ = okColor.Fprintln(cmd.OutOrStdout(), "✓ "+msg)
}

// Failure prints msg to stderr and returns err so cobra exits non-zero.
func Failure(cmd *cobra.Command, msg string, err error) error {
	_, _ = failColor.Fprintln(cmd.ErrOrStderr(), "✗ "+msg)
	return err
}
