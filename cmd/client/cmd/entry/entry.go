// Package entry содержит команды для работы с доходами и расходами.
package entry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HoangNobi25/thuchi/internal/app/client"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/spf13/cobra"
)

// NewCommand builds the "income" or "expense" command group.
func NewCommand(kind model.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: "Quản lý " + strings.ToLower(client.KindLabel(kind)),
		Long: fmt.Sprintf(`Xem, thêm, sửa và xóa các khoản %s.

Mã hợp lệ: %s`, strings.ToLower(client.KindLabel(kind)), codeList(kind)),
	}

	cmd.AddCommand(
		newListCommand(kind),
		newAddCommand(kind),
		newEditCommand(kind),
		newDeleteCommand(kind),
	)
	return cmd
}

func codeList(kind model.Kind) string {
	var parts []string
	for _, c := range kind.Categories() {
		parts = append(parts, fmt.Sprintf("%s (%s)", c, client.CategoryLabel(c)))
	}
	return strings.Join(parts, ", ")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("ID không hợp lệ: %q", s)
	}
	return id, nil
}

func parseAmount(s string) (*model.Amount, error) {
	a, err := model.ParseAmount(s)
	if err != nil {
		return nil, fmt.Errorf("số tiền không hợp lệ: %q", s)
	}
	return &a, nil
}
