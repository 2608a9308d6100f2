package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gin-storefront/internal/pkg/errs"
)

// Client issues GET requests against the content API and decodes JSON bodies.
// It does not retry; the request context and the http.Client timeout bound each call.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// maxErrorBody bounds how much of a non-2xx body is kept as error detail.
const maxErrorBody = 512

// GetJSON fetches baseURL+path and decodes the body into out.
// Errors are marked with errs.ErrAPIRequest, errs.ErrAPIStatus or errs.ErrAPIDecode.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "build request GET %s", url), errs.ErrAPIRequest)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "GET %s", url), errs.ErrAPIRequest)
	}
	defer func() {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.logger.LogAttrs(ctx, slog.LevelDebug, "content api call",
		slog.String("url", url),
		slog.Int("status_code", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := errs.Newf("GET %s: status %d", url, resp.StatusCode)
		if snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); len(snippet) > 0 {
			err = errs.WithDetail(err, string(snippet))
		}
		return errs.Mark(err, errs.ErrAPIStatus)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode GET %s", url), errs.ErrAPIDecode)
	}
	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errs.Mark(errs.Newf("decode GET %s: trailing data after JSON value", url), errs.ErrAPIDecode)
	}
	return nil
}
