package entry

import (
	"github.com/HoangNobi25/thuchi/cmd/client/cmd/output"
	"github.com/HoangNobi25/thuchi/internal/app/client"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/spf13/cobra"
)

func newEditCommand(kind model.Kind) *cobra.Command {
	var (
		amount string
		code   string
		date   string
		note   string
	)
	msgs := client.MessagesFor(kind)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Sửa " + client.KindLabel(kind),
		Long:  "Chỉ các trường được chỉ định bằng cờ mới được gửi tới máy chủ.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var in client.EntryInput
			flags := cmd.Flags()
			if flags.Changed("amount") {
				if in.Amount, err = parseAmount(amount); err != nil {
					return output.Failure(cmd, msgs.UpdateFailed, err)
				}
			}
			if flags.Changed(kind.CodeField()) {
				in.SetCode(kind, code)
			}
			if flags.Changed("date") {
				in.Date = &date
			}
			if flags.Changed("note") {
				in.Note = &note
			}

			updated, err := app.Update(cmd.Context(), kind, id, in)
			if err != nil {
				return output.Failure(cmd, msgs.UpdateFailed, err)
			}

			if output.JSONEnabled(cmd) {
				return output.JSON(cmd, updated)
			}
			output.Success(cmd, msgs.Updated)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "số tiền mới")
	cmd.Flags().StringVarP(&code, kind.CodeField(), "c", "", "mã mới: "+codeList(kind))
	cmd.Flags().StringVarP(&date, "date", "d", "", "ngày mới (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "ghi chú mới")

	return cmd
}
