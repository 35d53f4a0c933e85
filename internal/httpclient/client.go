package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stremovskyy/go-payflow/consts"
	"github.com/stremovskyy/go-payflow/log"
	"github.com/stremovskyy/recorder"
)

// Client is a small HTTP helper that posts name-value bodies and returns the raw response.
// It is internal on purpose: the public API lives in the root package.
//
// There is no retry loop. Payflow transactions are not idempotent without a
// request id, so every failure is returned to the caller on the first attempt.
type Client struct {
	httpClient *http.Client
	logger     log.Logger
	logBodies  bool
	recorder   recorder.Recorder
}

// DefaultHTTPClient does not follow redirects: a 3xx answer to a POST is
// returned as is and surfaces as *HTTPStatusError.
func DefaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// New creates an internal HTTP client.
func New(httpClient *http.Client, logger log.Logger, rec recorder.Recorder, logBodies bool) *Client {
	if httpClient == nil {
		httpClient = DefaultHTTPClient()
	}
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		logBodies:  logBodies,
		recorder:   rec,
	}
}

// Payload is a request body together with the form that is safe to log and record.
type Payload struct {
	Body     string
	Redacted string
}

// PostForm posts payload to url and returns the http response and the raw response body.
//
// Any status outside 2xx is returned as *HTTPStatusError together with the body.
func (c *Client) PostForm(ctx context.Context, url string, payload Payload) (*http.Response, []byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	requestID := nextRequestID()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(payload.Body))
	if err != nil {
		c.recordError(ctx, requestID, err)
		return nil, nil, err
	}
	req.Header.Set(consts.HeaderContentType, consts.ContentTypeForm)
	req.Header.Set(consts.HeaderAccept, "*/*")

	c.logger.Debugf("[Payflow HTTP] request prepared: request_id=%s url=%s payload=%s", requestID, url, logBody([]byte(payload.Redacted), c.logBodies))
	c.recordRequest(ctx, requestID, []byte(payload.Redacted))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("[Payflow HTTP] request failed: request_id=%s url=%s err=%v", requestID, url, err)
		c.recordError(ctx, requestID, err)
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Errorf("[Payflow HTTP] read response failed: request_id=%s url=%s status=%d err=%v", requestID, url, resp.StatusCode, err)
		c.recordError(ctx, requestID, err)
		return resp, nil, fmt.Errorf("read response body: %w", err)
	}
	c.recordResponse(ctx, requestID, raw)

	c.logger.Debugf("[Payflow HTTP] response received: request_id=%s url=%s status=%d response=%s", requestID, url, resp.StatusCode, logBody(raw, c.logBodies))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &HTTPStatusError{StatusCode: resp.StatusCode, Body: raw}
		c.logger.Errorf("[Payflow HTTP] request failed: request_id=%s url=%s status=%d response=%s", requestID, url, resp.StatusCode, logBody(raw, c.logBodies))
		c.recordError(ctx, requestID, statusErr)
		return resp, raw, statusErr
	}

	return resp, raw, nil
}

// HTTPStatusError indicates a non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "http status error"
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected status: %d", e.StatusCode)
	}
	// Limit in error string.
	b := e.Body
	if len(b) > 512 {
		b = b[:512]
	}
	return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, string(b))
}

func nextRequestID() string {
	return uuid.NewString()
}

func (c *Client) recordRequest(ctx context.Context, requestID string, body []byte) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordRequest(ctx, nil, requestID, body, nil); err != nil {
		c.logger.Warnf("[Payflow HTTP] cannot record request: %v", err)
	}
}

func (c *Client) recordResponse(ctx context.Context, requestID string, body []byte) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordResponse(ctx, nil, requestID, body, nil); err != nil {
		c.logger.Warnf("[Payflow HTTP] cannot record response: %v", err)
	}
}

func (c *Client) recordError(ctx context.Context, requestID string, err error) {
	if c == nil || c.recorder == nil || err == nil {
		return
	}
	if recErr := c.recorder.RecordError(ctx, nil, requestID, err, nil); recErr != nil {
		c.logger.Warnf("[Payflow HTTP] cannot record error: %v", recErr)
	}
}

func logBody(b []byte, verbose bool) string {
	if !verbose {
		return fmt.Sprintf("size=%d bytes", len(b))
	}
	return previewBytes(b)
}

func previewBytes(b []byte) string {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return "<empty>"
	}
	if !utf8.ValidString(s) {
		return fmt.Sprintf("<binary size=%d bytes>", len(b))
	}
	return truncate(s, 4096)
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
