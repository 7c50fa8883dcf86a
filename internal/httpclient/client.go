package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stremovskyy/recorder"
	"github.com/viklundst/go-swish/consts"
	"github.com/viklundst/go-swish/internal/jsonutil"
	"github.com/viklundst/go-swish/log"
)

// Client is a small HTTP helper with JSON marshal/unmarshal support.
// It is internal on purpose: the public API lives in the root package.
//
// Each call performs exactly one round trip; retrying against Swish is the
// caller's decision.
type Client struct {
	httpClient *http.Client
	logger     log.Logger
	logBodies  bool
	recorder   recorder.Recorder
}

// New creates an internal HTTP client.
func New(httpClient *http.Client, logger log.Logger, rec recorder.Recorder, logBodies bool) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
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

// DoJSON sends a request to url and unmarshals the JSON response into out
// (if out != nil). It returns the http response and the raw response body.
func (c *Client) DoJSON(ctx context.Context, method, url string, body any, out any) (*http.Response, []byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	requestID := nextRequestID()

	bodyBytes, err := prepareBody(body)
	if err != nil {
		c.recordError(ctx, requestID, err)
		return nil, nil, err
	}

	var reader io.Reader
	if bodyBytes != nil {
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.recordError(ctx, requestID, err)
		return nil, nil, err
	}

	req.Header.Set(consts.HeaderAccept, consts.ContentTypeJSON)
	if bodyBytes != nil {
		req.Header.Set(consts.HeaderContentType, consts.ContentTypeJSON)
	}

	c.logger.Debugf("[Swish HTTP] request prepared: request_id=%s method=%s url=%s payload=%s", requestID, method, url, logBody(bodyBytes, c.logBodies))

	c.recordRequest(ctx, requestID, bodyBytes)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("[Swish HTTP] request failed: method=%s url=%s err=%v", method, url, err)
		c.recordError(ctx, requestID, err)
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordError(ctx, requestID, err)
		return resp, nil, err
	}
	c.recordResponse(ctx, requestID, raw)

	c.logger.Debugf("[Swish HTTP] response received: request_id=%s method=%s url=%s status=%d response=%s", requestID, method, url, resp.StatusCode, logBody(raw, c.logBodies))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &HTTPStatusError{StatusCode: resp.StatusCode, Body: raw}
		c.recordError(ctx, requestID, statusErr)
		return resp, raw, statusErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			decErr := fmt.Errorf("decode json response: %w", err)
			c.recordError(ctx, requestID, decErr)
			return resp, raw, decErr
		}
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

func prepareBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	switch v := body.(type) {
	case []byte:
		if len(v) == 0 {
			return []byte{}, nil
		}
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	case string:
		return []byte(v), nil
	default:
		b, err := jsonutil.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal json body: %w", err)
		}
		return b, nil
	}
}

func nextRequestID() string {
	return uuid.NewString()
}

func (c *Client) recordRequest(ctx context.Context, requestID string, body []byte) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordRequest(ctx, nil, requestID, body, nil); err != nil {
		c.logger.Warnf("[Swish HTTP] cannot record request: %v", err)
	}
}

func (c *Client) recordResponse(ctx context.Context, requestID string, body []byte) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordResponse(ctx, nil, requestID, body, nil); err != nil {
		c.logger.Warnf("[Swish HTTP] cannot record response: %v", err)
	}
}

func (c *Client) recordError(ctx context.Context, requestID string, err error) {
	if c == nil || c.recorder == nil || err == nil {
		return
	}
	if recErr := c.recorder.RecordError(ctx, nil, requestID, err, nil); recErr != nil {
		c.logger.Warnf("[Swish HTTP] cannot record error: %v", recErr)
	}
}

func summarizeBytes(b []byte) string {
	return fmt.Sprintf("size=%d bytes", len(b))
}

func logBody(b []byte, verbose bool) string {
	if !verbose {
		return summarizeBytes(b)
	}

	if pretty, ok := prettyJSONPreview(b); ok {
		return pretty
	}
	return previewBytes(b)
}

func prettyJSONPreview(b []byte) (string, bool) {
	if len(b) == 0 || !json.Valid(b) {
		return "", false
	}

	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return "", false
	}
	return truncate(out.String(), 4096), true
}

func previewBytes(b []byte) string {
	if len(b) == 0 {
		return "<empty>"
	}
	s := strings.TrimSpace(string(b))
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
