// Package report содержит команды для итогов, баланса и экспорта.
package report

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/HoangNobi25/thuchi/cmd/client/cmd/output"
	"github.com/HoangNobi25/thuchi/internal/app/client"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/spf13/cobra"
)

func NewTotalsCommand() *cobra.Command {
	var kind, period string

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Tổng thu nhập hoặc chi tiêu theo ngày, tuần, tháng",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			k, err := model.ParseKind(kind)
			if err != nil {
				return fmt.Errorf("loại không hợp lệ %q: dùng income hoặc expense", kind)
			}

			totals, err := app.Totals(cmd.Context(), k, period)
			if err != nil {
				return fmt.Errorf("lỗi tính tổng: %w", err)
			}

			if output.JSONEnabled(cmd) {
				return output.JSON(cmd, totals)
			}

			out := cmd.OutOrStdout()
			if len(totals) == 0 {
				_, err := fmt.Fprintln(out, client.MessagesFor(k).Empty)
				return err
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "KỲ\tTỔNG %s\n", client.KindLabel(k))
			for _, key := range slices.Sorted(maps.Keys(totals)) {
				fmt.Fprintf(w, "%s\t%s\n", key, client.FormatCZK(totals[key]))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "income hoặc expense")
	cmd.Flags().StringVarP(&period, "period", "p", "day", "day, week hoặc month")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
