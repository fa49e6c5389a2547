package report

import (
	"fmt"

	"github.com/HoangNobi25/thuchi/cmd/client/cmd/output"
	"github.com/HoangNobi25/thuchi/internal/app/client"
	"github.com/HoangNobi25/thuchi/internal/infrastructure/export"

	"github.com/spf13/cobra"
)

func NewExportCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Xuất dữ liệu ra tệp Excel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			n, err := app.Export(cmd.Context(), path)
			if err != nil {
				return output.Failure(cmd, "Xuất dữ liệu thất bại", err)
			}

			output.Success(cmd, fmt.Sprintf("Đã lưu %s (%d byte)", path, n))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", export.FileName, "đường dẫn tệp xlsx")
	return cmd
}
