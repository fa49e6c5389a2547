package entry

import (
	"fmt"
	"text/tabwriter"

	"github.com/HoangNobi25/thuchi/cmd/client/cmd/output"
	"github.com/HoangNobi25/thuchi/internal/app/client"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/spf13/cobra"
)

func newListCommand(kind model.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Danh sách " + client.KindLabel(kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := app.List(cmd.Context(), kind)
			if err != nil {
				return fmt.Errorf("lỗi tải danh sách: %w", err)
			}

			if output.JSONEnabled(cmd) {
				return output.JSON(cmd, entries)
			}
			return printTable(cmd, kind, entries)
		},
	}
}

func printTable(cmd *cobra.Command, kind model.Kind, entries []model.Entry) error {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, err := fmt.Fprintln(out, client.MessagesFor(kind).Empty)
		return err
	}

	codeHeader := "DANH MỤC"
	if kind == model.KindIncome {
		codeHeader = "LOẠI"
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNGÀY\t%s\tSỐ TIỀN\tGHI CHÚ\n", codeHeader)
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Date,
			client.CategoryLabel(e.Code()),
			client.FormatCZK(e.Amount),
			e.Note,
		)
	}
	return w.Flush()
}
