package httpclient

import (
	"context"
	"strings"
)

// Header is a single header name/value pair. Headers travel as ordered
// slices so that transports sensitive to duplicate resolution see them in
// the order they were assembled.
type Header struct {
	Name  string
	Value string
}

// Request is a transport-level HTTP request.
type Request struct {
	// URL is the absolute request URL.
	URL string
	// Method is one of GET, POST, PUT, PATCH, DELETE, HEAD.
	Method string
	// Headers are sent in slice order.
	Headers []Header
	// Body is the already-serialized payload. Nil means no body.
	Body []byte
}

// HasBody reports whether the request carries a payload.
func (r *Request) HasBody() bool {
	return r.Body != nil
}

// Response is a transport-level HTTP response. It is never classified by
// the transport: 4xx and 5xx responses are returned like any other.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers as received.
	Headers []Header
	// Body is the raw response body.
	Body []byte
}

// Header returns the last value for name (case-insensitive) and whether it
// was present.
func (r *Response) Header(name string) (string, bool) {
	value, found := "", false
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			value, found = h.Value, true
		}
	}
	return value, found
}

// Transport sends a single request and returns a single response.
// Implementations own connection reuse, TLS, redirects and cancellation.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Send calls f(ctx, req).
func (f TransportFunc) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
