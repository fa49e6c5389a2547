package entry

import (
	"github.com/HoangNobi25/thuchi/cmd/client/cmd/output"
	"github.com/HoangNobi25/thuchi/internal/app/client"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/spf13/cobra"
)

func newAddCommand(kind model.Kind) *cobra.Command {
	var (
		amount string
		code   string
		date   string
		note   string
	)
	msgs := client.MessagesFor(kind)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Thêm " + client.KindLabel(kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			a, err := parseAmount(amount)
			if err != nil {
				return output.Failure(cmd, msgs.CreateFailed, err)
			}

			in := client.EntryInput{Amount: a, Date: &date, Note: &note}
			in.SetCode(kind, code)

			created, err := app.Create(cmd.Context(), kind, in)
			if err != nil {
				return output.Failure(cmd, msgs.CreateFailed, err)
			}

			if output.JSONEnabled(cmd) {
				return output.JSON(cmd, created)
			}
			output.Success(cmd, msgs.Created)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "số tiền")
	cmd.Flags().StringVarP(&code, kind.CodeField(), "c", "", "mã: "+codeList(kind))
	cmd.Flags().StringVarP(&date, "date", "d", model.Today().String(), "ngày (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "ghi chú")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired(kind.CodeField())

	return cmd
}
