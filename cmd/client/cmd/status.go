package cmd

import (
	"github.com/HoangNobi25/thuchi/cmd/client/cmd/output"
	"github.com/HoangNobi25/thuchi/internal/app/client"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Kiểm tra kết nối tới máy chủ",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			return output.Failure(cmd, "Không kết nối được "+app.ServerAddress(), err)
		}
		output.Success(cmd, "Đã kết nối tới "+app.ServerAddress())
		return nil
	},
}
