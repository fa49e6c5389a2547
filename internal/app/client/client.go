package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/HoangNobi25/thuchi/internal/app/client/config"
	"github.com/HoangNobi25/thuchi/internal/model"

	"golang.org/x/exp/slog"
)

// ErrMissingDates is reported without calling the server, like the web form did.
var ErrMissingDates = errors.New("Vui lòng chọn ngày bắt đầu và ngày kết thúc.")

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	return &App{
		config:     cfg,
		log:        log.With("component", "client"),
		httpClient: NewHTTPClient(cfg, log),
	}, nil
}

type appKey struct{}

// WithApp stores the app in ctx for cobra subcommands.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, errors.New("ứng dụng chưa được khởi tạo")
	}
	return app, nil
}

func (a *App) ServerAddress() string {
	return a.config.ServerAddress
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) List(ctx context.Context, kind model.Kind) ([]model.Entry, error) {
	return a.httpClient.List(ctx, kind)
}

func (a *App) Create(ctx context.Context, kind model.Kind, in EntryInput) (model.Entry, error) {
	return a.httpClient.Create(ctx, kind, in)
}

func (a *App) Update(ctx context.Context, kind model.Kind, id int64, in EntryInput) (model.Entry, error) {
	if in == (EntryInput{}) {
		return model.Entry{}, errors.New("không có trường nào để cập nhật")
	}
	return a.httpClient.Update(ctx, kind, id, in)
}

func (a *App) Delete(ctx context.Context, kind model.Kind, id int64) error {
	return a.httpClient.Delete(ctx, kind, id)
}

func (a *App) Totals(ctx context.Context, kind model.Kind, period string) (map[string]model.Amount, error) {
	return a.httpClient.Totals(ctx, kind, period)
}

func (a *App) Balances(ctx context.Context, start, end string) (Balances, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return Balances{}, ErrMissingDates
	}
	return a.httpClient.Balances(ctx, start, end)
}

// Export downloads the workbook into path.
func (a *App) Export(ctx context.Context, path string) (int, error) {
	data, err := a.httpClient.Export(ctx)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("lỗi ghi tệp %s: %w", path, err)
	}
	a.log.Debug("workbook saved", "path", path, "bytes", len(data))
	return len(data), nil
}
