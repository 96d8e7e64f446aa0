package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/utils"
	"github.com/palavrapasse/import-web-api/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SubmitLeak implements [ServerAdapter]. It POSTs form as multipart data to
// POST / and parses the decimal delta from the response body.
func (h *httpServerAdapter) SubmitLeak(ctx context.Context, form models.LeakForm) (int64, error) {
	if form.File == nil {
		return 0, ErrNoLeakFile
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			models.FormFieldContext:     form.Context,
			models.FormFieldShareDateMS: strconv.FormatInt(form.ShareDate.UnixMilli(), 10),
			models.FormFieldPlatforms:   strings.Join(form.Platforms, ","),
			models.FormFieldLeakers:     strings.Join(form.Leakers, ","),
		}).
		SetFileReader(models.FormFieldLeakFile, form.FileName, form.File).
		Post("/")
	if err != nil {
		return 0, fmt.Errorf("submit leak request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	body := strings.TrimSpace(string(resp.Body()))
	delta, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnexpectedResponse, body)
	}

	h.logger.Debug().
		Str("context", form.Context).
		Int64("delta", delta).
		Dur("elapsed", resp.Time()).
		Msg("leak submitted")

	return delta, nil
}

// Health implements [ServerAdapter]. It GETs /health and decodes the JSON
// report regardless of the status code.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var report models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/health")
	if err != nil {
		return report, fmt.Errorf("health request: %w", err)
	}

	if decodeErr := json.Unmarshal(resp.Body(), &report); decodeErr != nil {
		h.logger.Debug().Err(decodeErr).Msg("health response is not JSON")
	}

	return report, mapHTTPError(resp)
}

// Version implements [ServerAdapter]. It GETs /version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
