package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/HoangNobi25/thuchi/internal/app/client/config"
	"github.com/HoangNobi25/thuchi/internal/model"

	"golang.org/x/exp/slog"
)

// ErrNotFound is returned when the server answers 404.
var ErrNotFound = errors.New("không tìm thấy bản ghi")

// ServerError is a non-2xx answer from the server.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("lỗi máy chủ (%d): %s", e.Status, e.Message)
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	return &httpClient{
		client:    &http.Client{Timeout: cfg.Timeout},
		log:       log,
		baseURL:   cfg.ServerAddress,
		userAgent: "Thuchi-Client/1.0",
	}
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) List(ctx context.Context, kind model.Kind) ([]model.Entry, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/"+kind.Collection(), nil)
	if err != nil {
		return nil, err
	}

	var entries []model.Entry
	if err := h.parseResponse(resp, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *httpClient) Create(ctx context.Context, kind model.Kind, in EntryInput) (model.Entry, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/"+kind.Collection(), in)
	if err != nil {
		return model.Entry{}, err
	}

	var e model.Entry
	err = h.parseResponse(resp, &e)
	return e, err
}

func (h *httpClient) Update(ctx context.Context, kind model.Kind, id int64, in EntryInput) (model.Entry, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, entryPath(kind, id), in)
	if err != nil {
		return model.Entry{}, err
	}

	var e model.Entry
	err = h.parseResponse(resp, &e)
	return e, err
}

func (h *httpClient) Delete(ctx context.Context, kind model.Kind, id int64) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, entryPath(kind, id), nil)
	if err != nil {
		return err
	}

	var out struct {
		Success bool `json:"success"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("máy chủ không xác nhận việc xóa")
	}
	return nil
}

func (h *httpClient) Totals(ctx context.Context, kind model.Kind, period string) (map[string]model.Amount, error) {
	q := url.Values{"type": {kind.String()}, "period": {period}}
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/totals?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	totals := map[string]model.Amount{}
	if err := h.parseResponse(resp, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

func (h *httpClient) Balances(ctx context.Context, start, end string) (Balances, error) {
	q := url.Values{"start": {start}, "end": {end}}
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/balances?"+q.Encode(), nil)
	if err != nil {
		return Balances{}, err
	}

	var b Balances
	err = h.parseResponse(resp, &b)
	return b, err
}

// Export downloads the workbook and returns its bytes.
func (h *httpClient) Export(ctx context.Context) ([]byte, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/export", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, h.statusError(resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("lỗi đọc phản hồi: %w", err)
	}
	return data, nil
}

func entryPath(kind model.Kind, id int64) string {
	return "/api/" + kind.Collection() + "/" + strconv.FormatInt(id, 10)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("lỗi mã hóa yêu cầu: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("lỗi tạo yêu cầu: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("không kết nối được máy chủ: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("lỗi đọc phản hồi: %w", err)
	}

	h.log.Debug("response received", "status", resp.StatusCode, "body", string(body))

	if resp.StatusCode >= 400 {
		return h.statusError(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("lỗi phân tích phản hồi: %w", err)
		}
	}

	return nil
}

func (h *httpClient) statusError(status int, body []byte) error {
	if status == http.StatusNotFound {
		return ErrNotFound
	}

	var p problem
	msg := http.StatusText(status)
	if err := json.Unmarshal(body, &p); err == nil {
		switch {
		case p.Detail != "":
			msg = p.Detail
		case p.Error != "":
			msg = p.Error
		case p.Title != "":
			msg = p.Title
		}
		var details []string
		for _, e := range p.Errors {
			details = append(details, strings.TrimSpace(e.Location+" "+e.Message))
		}
		if len(details) > 0 {
			msg += ": " + strings.Join(details, "; ")
		}
	}
	return &ServerError{Status: status, Message: msg}
}
