// internal/apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	xerrors "hopegivers-web/internal/pkg/errors"
)

// Envelope is the backend's response convention. The backend sometimes
// answers HTTP 200 while carrying an error in statusCode/message, so success
// requires both a 2xx transport status and statusCode == 200.
type Envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// APIError carries the backend's failure message for a request.
type APIError struct {
	HTTPStatus int
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("backend: request failed (http %d)", e.HTTPStatus)
}

// HTTPStatus picks the status a gateway response should relay for err. Soft
// failures arrive as HTTP 200 with the real code in the envelope, so the
// envelope code wins when it looks like an HTTP error code.
func HTTPStatus(err error) int {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	if apiErr.StatusCode >= 400 && apiErr.StatusCode < 600 {
		return apiErr.StatusCode
	}
	if apiErr.HTTPStatus >= 400 && apiErr.HTTPStatus < 600 {
		return apiErr.HTTPStatus
	}
	return http.StatusBadGateway
}

// FilePart is a file forwarded to a multipart endpoint.
type FilePart struct {
	Field  string
	Name   string
	Reader io.Reader
}

// Client is a thin typed wrapper around the HopeGivers backend REST API. It
// attaches the current bearer token to authenticated calls; everything hard
// (validation, persistence, payments) happens on the other side of it.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, token, path string, query url.Values, out interface{}) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, token, "", nil, out)
}

func (c *Client) postJSON(ctx context.Context, token, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) putJSON(ctx context.Context, token, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, token, body, out)
}

func (c *Client) delete(ctx context.Context, token, path string) error {
	return c.do(ctx, http.MethodDelete, path, token, "", nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out interface{}) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		buf = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, token, "application/json", buf, out)
}

// postMultipart forwards text fields and file parts as a multipart form,
// used by the document- and photo-bearing endpoints.
func (c *Client) postMultipart(ctx context.Context, token, path string, fields map[string]string, files []FilePart, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return fmt.Errorf("failed to create form file %s: %w", f.Name, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return fmt.Errorf("failed to copy form file %s: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, token, mw.FormDataContentType(), &buf, out)
}

func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", xerrors.ErrBackend, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env Envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 300 {
				return &APIError{HTTPStatus: resp.StatusCode}
			}
			return fmt.Errorf("failed to decode response envelope: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.StatusCode != http.StatusOK {
		c.logger.Debug("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("http_status", resp.StatusCode),
			zap.Int("status_code", env.StatusCode),
		)
		return &APIError{
			HTTPStatus: resp.StatusCode,
			StatusCode: env.StatusCode,
			Message:    env.Message,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
