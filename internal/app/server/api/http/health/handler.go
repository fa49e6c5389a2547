package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Probe checks that a dependency answers. A nil Probe is always healthy.
type Probe func(ctx context.Context) error

type Handler struct {
	probe      Probe
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(probe Probe, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		probe:      probe,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	resp := Response{Status: "OK"}
	if h.probe != nil {
		if err := h.probe(ctx); err != nil {
			h.log.Error("storage probe failed", "error", err)
			return nil, huma.Error503ServiceUnavailable("storage unavailable")
		}
		resp.Storage = "OK"
	}

	return &Output{Body: resp}, nil
}
