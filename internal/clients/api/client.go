package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"max.ks1230/finance-tracker/internal/logger"
)

type config interface {
	BaseURL() string
}

type validatable interface {
	validate() error
}

// Client talks to the finance-tracker REST API. It sets no timeouts of its
// own; callers bound requests through the context.
type Client struct {
	baseURL string
	http    *http.Client
	loc     *time.Location
}

// New builds a client that normalizes dates to the viewer location loc.
func New(cfg config, loc *time.Location) *Client {
	return NewWithHTTPClient(cfg, loc, &http.Client{})
}

func NewWithHTTPClient(cfg config, loc *time.Location, httpClient *http.Client) *Client {
	if loc == nil {
		loc = time.Local
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL(), "/"),
		http:    httpClient,
		loc:     loc,
	}
}

type request struct {
	endpoint string
	method   string
	path     string
	query    url.Values
	body     interface{}
}

// do runs one call end to end. A nil out discards the body of a 2xx reply.
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, req.endpoint)
	defer span.Finish()
	ext.HTTPMethod.Set(span, req.method)

	start := time.Now()
	status, err := c.roundTrip(ctx, span, req, out)
	observeRequest(req.endpoint, status, time.Since(start))

	if err != nil {
		fields := []zap.Field{
			zap.String("endpoint", req.endpoint),
			zap.Int("status", status),
			zap.Error(err),
		}
		if failureLevel(err) == zapcore.WarnLevel {
			logger.Warn("api reply not decoded", fields...)
			return err
		}
		ext.Error.Set(span, true)
		logger.Error("api call failed", fields...)
		return err
	}
	logger.Info("api call", zap.String("endpoint", req.endpoint), zap.Int("status", status))
	return nil
}

// failureLevel is Warn for a 2xx reply with an unusable body: some callers
// still count the call as done.
func failureLevel(err error) zapcore.Level {
	if IsDecode(err) {
		return zapcore.WarnLevel
	}
	return zapcore.ErrorLevel
}

func (c *Client) roundTrip(ctx context.Context, span opentracing.Span, req request, out interface{}) (int, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return 0, errors.Wrap(err, req.endpoint)
	}
	ext.HTTPUrl.Set(span, httpReq.URL.String())
	_ = opentracing.GlobalTracer().Inject(
		span.Context(),
		opentracing.HTTPHeaders,
		opentracing.HTTPHeadersCarrier(httpReq.Header),
	)

	res, err := c.http.Do(httpReq)
	if err != nil {
		return 0, &TransportError{Endpoint: req.endpoint, Err: err}
	}
	defer res.Body.Close()
	ext.HTTPStatusCode.Set(span, uint16(res.StatusCode))

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, &TransportError{Endpoint: req.endpoint, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		return res.StatusCode, &APIError{
			Endpoint: req.endpoint,
			Status:   res.StatusCode,
			Message:  eb.text(res.StatusCode),
		}
	}

	if out == nil {
		return res.StatusCode, nil
	}
	return res.StatusCode, decode(req.endpoint, body, out)
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrap(err, "marshalling request")
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}

func decode(endpoint string, body []byte, out interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &DecodeError{Endpoint: endpoint, Err: errors.New("empty body")}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	if v, ok := out.(validatable); ok {
		if err := v.validate(); err != nil {
			return &DecodeError{Endpoint: endpoint, Err: err}
		}
	}
	return nil
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}
