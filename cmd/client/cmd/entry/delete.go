package entry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HoangNobi25/thuchi/cmd/client/cmd/output"
	"github.com/HoangNobi25/thuchi/internal/app/client"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newDeleteCommand(kind model.Kind) *cobra.Command {
	var yes bool
	msgs := client.MessagesFor(kind)

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Xóa " + client.KindLabel(kind),
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

			if !yes && isTerminal() {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Đã hủy")
					return nil
				}
			}

			if err := app.Delete(cmd.Context(), kind, id); err != nil {
				return output.Failure(cmd, msgs.DeleteFailed, err)
			}

			if output.JSONEnabled(cmd) {
				return output.JSON(cmd, map[string]bool{"success": true})
			}
			output.Success(cmd, msgs.Deleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "không hỏi xác nhận")
	return cmd
}

func confirm(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "Bạn có chắc muốn xóa? (y/N): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("lỗi đọc câu trả lời: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "c", "có":
		return true, nil
	}
	return false, nil
}
