package report

import (
	"errors"
	"fmt"

	"github.com/HoangNobi25/thuchi/cmd/client/cmd/output"
	"github.com/HoangNobi25/thuchi/internal/app/client"

	"github.com/spf13/cobra"
)

func NewBalanceCommand() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Số dư đầu kỳ và cuối kỳ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			b, err := app.Balances(cmd.Context(), start, end)
			if errors.Is(err, client.ErrMissingDates) {
				return output.Failure(cmd, err.Error(), err)
			}
			if err != nil {
				return fmt.Errorf("lỗi tính số dư: %w", err)
			}

			if output.JSONEnabled(cmd) {
				return output.JSON(cmd, b)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Số dư đầu kỳ (%s): %s\n", start, client.FormatCZK(b.BeginningBalance))
			fmt.Fprintf(out, "Số dư cuối kỳ (%s): %s\n", end, client.FormatCZK(b.EndingBalance))
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "ngày bắt đầu (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "ngày kết thúc (YYYY-MM-DD)")

	return cmd
}
