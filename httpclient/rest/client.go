package rest

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/observability"
	"github.com/kbukum/restkit/validation"
)

// Config configures a REST client.
type Config struct {
	// BaseURL is resolved against every request path.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	// HTTP configures the default transport. Ignored with WithTransport.
	HTTP httpclient.Config `yaml:"http" mapstructure:"http"`
	// Authorization is used for requests with Authorize set. Nil means NoAuth.
	Authorization Authorization `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	c.HTTP.ApplyDefaults()
	if c.Authorization == nil {
		c.Authorization = NoAuth()
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// Client sends domain requests through a Transport and maps the responses.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	builder   *RequestBuilder
	transport httpclient.Transport
	adapter   *httpclient.Adapter // set when the client built its own transport
	codec     Codec
	log       *logger.Logger
	metrics   *observability.Metrics
	tracing   string
	wrap      []httpclient.Middleware
}

// Option configures a Client.
type Option func(*Client)

// WithTransport injects the transport. The client does not close it.
func WithTransport(t httpclient.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithMiddleware wraps the transport; the first middleware is outermost.
func WithMiddleware(mw ...httpclient.Middleware) Option {
	return func(c *Client) { c.wrap = append(c.wrap, mw...) }
}

// WithCodec replaces the JSON codec.
func WithCodec(codec Codec) Option {
	return func(c *Client) { c.codec = codec }
}

// WithLogger sets the logger used for per-call logging.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records one rest.call.total point per call.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTracing opens a "{serviceName}.rest.call" span around every call.
func WithTracing(serviceName string) Option {
	return func(c *Client) { c.tracing = serviceName }
}

// New creates a Client. The authorization header is computed here, once.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{codec: DefaultCodec}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get("rest")
	}

	builder, err := NewRequestBuilder(cfg.BaseURL, cfg.Authorization, c.codec)
	if err != nil {
		return nil, err
	}
	c.builder = builder

	if c.transport == nil {
		adapter, err := httpclient.New(cfg.HTTP)
		if err != nil {
			return nil, err
		}
		c.adapter = adapter
		c.transport = adapter
	}
	if len(c.wrap) > 0 {
		c.transport = httpclient.Chain(c.wrap...)(c.transport)
	}
	return c, nil
}

// Close releases the transport the client created. Injected transports are
// left alone.
func (c *Client) Close(ctx context.Context) error {
	if c.adapter != nil {
		return c.adapter.Close(ctx)
	}
	return nil
}

// Get sends a GET and returns the parsed body and cache directives.
func (c *Client) Get(ctx context.Context, req Request) (*GetResponse, error) {
	hreq, err := c.builder.Build(http.MethodGet, req)
	return call(ctx, c, hreq, err, func(resp *httpclient.Response) (*GetResponse, error) {
		return ToGetResponse(resp, c.codec)
	})
}

// Head sends a HEAD and returns the cache directives.
func (c *Client) Head(ctx context.Context, req Request) (*HeadResponse, error) {
	hreq, err := c.builder.Build(http.MethodHead, req)
	return call(ctx, c, hreq, err, ToHeadResponse)
}

// Post sends a POST with a JSON body and returns the parsed body and location.
func (c *Client) Post(ctx context.Context, req BodyRequest) (*PostResponse, error) {
	hreq, err := c.builder.BuildWithBody(http.MethodPost, req.Request, req.Body)
	return call(ctx, c, hreq, err, func(resp *httpclient.Response) (*PostResponse, error) {
		return ToPostResponse(resp, c.codec)
	})
}

// Put sends a PUT with a JSON body. The response body is not parsed.
func (c *Client) Put(ctx context.Context, req BodyRequest) (*PutResponse, error) {
	hreq, err := c.builder.BuildWithBody(http.MethodPut, req.Request, req.Body)
	return call(ctx, c, hreq, err, ToPutResponse)
}

// Patch sends a PATCH with a JSON body and returns the parsed body.
func (c *Client) Patch(ctx context.Context, req BodyRequest) (*PatchResponse, error) {
	hreq, err := c.builder.BuildWithBody(http.MethodPatch, req.Request, req.Body)
	return call(ctx, c, hreq, err, func(resp *httpclient.Response) (*PatchResponse, error) {
		return ToPatchResponse(resp, c.codec)
	})
}

// Delete sends a DELETE, with a JSON body only when req.Body is set, and
// returns the parsed body.
func (c *Client) Delete(ctx context.Context, req DeleteRequest) (*DeleteResponse, error) {
	hreq, err := c.builder.buildDelete(req)
	return call(ctx, c, hreq, err, func(resp *httpclient.Response) (*DeleteResponse, error) {
		return ToDeleteResponse(resp, c.codec)
	})
}

type mapped interface {
	base() *Response
}

// call sends hreq and maps the response, recording logs, span and metric.
func call[R mapped](ctx context.Context, c *Client, hreq *httpclient.Request, buildErr error, mapFn func(*httpclient.Response) (R, error)) (R, error) {
	var zero R
	if buildErr != nil {
		c.log.Warn("rest request not built", logger.ErrorFields("rest.build", buildErr))
		return zero, buildErr
	}

	if c.tracing != "" {
		var span trace.Span
		ctx, span = observability.StartSpan(ctx, c.tracing+"."+observability.SpanRESTCall)
		defer span.End()
		observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, hreq.Method)
		observability.SetSpanAttribute(ctx, observability.AttrHTTPURL, hreq.URL)
	}

	start := time.Now()
	resp, err := c.transport.Send(ctx, hreq)
	var out R
	if err == nil {
		out, err = mapFn(resp)
	}

	outcome := outcomeOf(out, err)
	fields := logger.DurationFields("rest."+hreq.Method, time.Since(start))
	fields["url"] = hreq.URL
	fields["outcome"] = outcome
	if resp != nil {
		fields[logger.FieldStatus] = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordCall(ctx, hreq.Method, outcome)
	}
	if c.tracing != "" {
		observability.SetSpanAttribute(ctx, observability.AttrRESTStatus, outcome)
		if err != nil {
			observability.SetSpanError(ctx, err)
		}
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		c.log.Warn("rest call failed", fields)
		return zero, err
	}
	c.log.Debug("rest call", fields)
	return out, nil
}

// outcomeOf names a call result: a Status, an ErrorKind, or the error class.
func outcomeOf[R mapped](out R, err error) string {
	switch {
	case err == nil:
		return out.base().Status.String()
	case IsDecode(err):
		return "decode_error"
	case httpclient.IsTimeout(err):
		return "timeout"
	}
	if kind, ok := KindOf(err); ok {
		return kind.String()
	}
	return "transport_error"
}
