package forwarder

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	gwerrors "github.com/abdigaliarsen/api-gateway/internal/errors"
)

// Outcome is the result of one forwarding attempt: either Body is set
// (success) or Err is.
type Outcome struct {
	Body json.RawMessage
	Err  *gwerrors.GatewayError
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// StatusCode is the HTTP status the caller should receive.
func (o Outcome) StatusCode() int {
	if o.Err != nil {
		return o.Err.StatusCode
	}
	return http.StatusOK
}

// Forwarder issues a single outbound GET per call. It keeps no per-request
// state and is safe for concurrent use.
type Forwarder struct {
	cli *http.Client
	log *zap.Logger
}

// New returns a Forwarder using httpClient for outbound calls. A nil client
// means http.DefaultClient; a nil logger discards.
func New(httpClient *http.Client, logger *zap.Logger) *Forwarder {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forwarder{
		cli: httpClient,
		log: logger,
	}
}

// NewClient builds the outbound client. Zero timeout leaves the transport
// default in place.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Forward fetches targetURL and maps the result to an Outcome.
func (f *Forwarder) Forward(ctx context.Context, targetURL string) Outcome {
	if targetURL == "" {
		return Outcome{Err: gwerrors.MissingParameter()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		f.log.Debug("invalid target", zap.String("target", targetURL), zap.Error(err))
		return Outcome{Err: gwerrors.ProxyRequestFailed(0, err)}
	}

	start := time.Now()
	resp, err := f.cli.Do(req)
	if err != nil {
		f.log.Warn("upstream request failed",
			zap.String("target", targetURL),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return Outcome{Err: gwerrors.ProxyRequestFailed(0, err)}
	}
	defer resp.Body.Close()

	f.log.Debug("upstream responded",
		zap.String("target", targetURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return Outcome{Err: gwerrors.UpstreamStatus(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Err: gwerrors.ProxyRequestFailed(0, err)}
	}

	return Outcome{Body: decodeBody(body)}
}

// decodeBody returns JSON bodies verbatim and wraps anything else as a JSON
// string.
func decodeBody(body []byte) json.RawMessage {
	if len(body) > 0 && json.Valid(body) {
		return json.RawMessage(body)
	}
	encoded, _ := json.Marshal(string(body))
	return json.RawMessage(encoded)
}
