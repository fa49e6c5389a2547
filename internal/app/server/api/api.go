//GET    /api/health           # Проверка сервиса и хранилища
//GET    /api/incomes          # Список доходов
//POST   /api/incomes          # Создать доход
//PUT    /api/incomes/{id}     # Частично обновить доход
//DELETE /api/incomes/{id}     # Удалить доход
//GET    /api/expenses         # То же для расходов
//GET    /api/totals           # Суммы по дням/неделям/месяцам
//GET    /api/balances         # Начальный и конечный баланс
//GET    /api/export           # income_expense_data.xlsx

package api

import (
	"context"
	"net/http"
	"os"

	"github.com/HoangNobi25/thuchi/internal/app/server/api/http/entry"
	healthAPI "github.com/HoangNobi25/thuchi/internal/app/server/api/http/health"
	"github.com/HoangNobi25/thuchi/internal/app/server/api/http/middleware"
	"github.com/HoangNobi25/thuchi/internal/app/server/api/http/middleware/logger"
	reportAPI "github.com/HoangNobi25/thuchi/internal/app/server/api/http/report"
	"github.com/HoangNobi25/thuchi/internal/app/server/config"
	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"
)

func init() {
	// ошибки валидации схемы отдаём как 400, как и доменные
	newError := huma.NewError
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		return newError(status, msg, errs...)
	}
}

type Handlers struct {
	Health   *healthAPI.Handler
	Incomes  *entry.Handler
	Expenses *entry.Handler
	Reports  *reportAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(service ledger.Servicer, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	humaCfg := huma.DefaultConfig("Thuchi API", "1.0.0")
	// без ссылок на схему: тела ответов ровно {success:true}, {beginningBalance,...}
	humaCfg.CreateHooks = nil
	API := humachi.New(mux, humaCfg)

	h := handlers(service, log)
	h.Health.SetupRoutes(API)
	h.Incomes.SetupRoutes(API)
	h.Expenses.SetupRoutes(API)
	h.Reports.SetupRoutes(API)

	mountStatic(mux, cfg.Server.StaticDir, log)

	return mux
}

func handlers(service ledger.Servicer, log *slog.Logger) *Handlers {
	chain := middleware.NewChain(logger.New(log).Middleware())

	probe := func(ctx context.Context) error {
		_, err := service.List(ctx, model.KindIncome)
		return err
	}

	return &Handlers{
		Health:   healthAPI.NewHandler(probe, log, chain.For()),
		Incomes:  entry.NewHandler(model.KindIncome, service, log, chain.For(middleware.NoStore)),
		Expenses: entry.NewHandler(model.KindExpense, service, log, chain.For(middleware.NoStore)),
		Reports:  reportAPI.NewHandler(service, log, chain.For(middleware.NoStore)),
	}
}

// mountStatic отдаёт браузерный клиент из dir, если каталог существует.
func mountStatic(mux *chi.Mux, dir string, log *slog.Logger) {
	if dir == "" {
		return
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Debug("static directory not served", "dir", dir)
		return
	}

	mux.Handle("/*", http.FileServer(http.Dir(dir)))
	log.Info("serving static files", "dir", dir)
}
