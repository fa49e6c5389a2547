// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/HoangNobi25/thuchi/cmd/client/cmd/entry"
	"github.com/HoangNobi25/thuchi/cmd/client/cmd/report"
	"github.com/HoangNobi25/thuchi/internal/app/client"
	"github.com/HoangNobi25/thuchi/internal/app/client/config"
	"github.com/HoangNobi25/thuchi/internal/model"
	"github.com/HoangNobi25/thuchi/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "thuchi",
	Short: "Thuchi - quản lý thu nhập và chi tiêu",
	Long: `Thuchi là ứng dụng dòng lệnh để ghi lại các khoản thu nhập và chi tiêu,
xem tổng theo ngày, tuần, tháng, tính số dư trong một khoảng thời gian
và xuất dữ liệu ra tệp Excel.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Lỗi: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("lỗi tải cấu hình: %w", err)
	}

	// Флаги командной строки важнее окружения
	if serverURL != "" {
		cfg.ServerAddress = config.NormalizeAddress(serverURL)
	}
	if debug {
		cfg.Env = "local"
	}

	app, err := client.New(cfg, logger.New(cfg.Env))
	if err != nil {
		return fmt.Errorf("lỗi khởi tạo ứng dụng: %w", err)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".thuchi"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "tệp cấu hình (YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "bật chế độ gỡ lỗi")
	rootCmd.PersistentFlags().Bool("json", false, "in kết quả dạng JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "địa chỉ máy chủ Thuchi")

	rootCmd.AddCommand(
		entry.NewCommand(model.KindIncome),
		entry.NewCommand(model.KindExpense),
		report.NewTotalsCommand(),
		report.NewBalanceCommand(),
		report.NewExportCommand(),
		statusCmd,
	)
}
