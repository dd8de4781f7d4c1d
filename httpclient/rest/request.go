package rest

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"

	"github.com/kbukum/restkit/httpclient"
)

const (
	headerAccept        = "accept"
	headerContentType   = "content-type"
	headerContentLength = "content-length"
	headerCacheControl  = "cache-control"
	headerLocation      = "location"

	mediaTypeJSON = "application/json"
)

// Request is a bodyless domain request, used for GET and HEAD.
//
// Query is accepted but not merged into the URL; callers that need a query
// string put it in Path.
type Request struct {
	Path      string
	Headers   []httpclient.Header
	Query     map[string]string
	Authorize bool
}

// BodyRequest is a POST, PUT or PATCH request. A nil Body is sent as JSON null.
type BodyRequest struct {
	Request
	Body any
}

// DeleteRequest is a DELETE request. A nil Body, including a typed nil map,
// slice or pointer, sends no payload.
type DeleteRequest struct {
	Request
	Body any
}

// WithHeader returns a copy of r with one more header appended.
func (r Request) WithHeader(name, value string) Request {
	headers := make([]httpclient.Header, len(r.Headers), len(r.Headers)+1)
	copy(headers, r.Headers)
	r.Headers = append(headers, httpclient.Header{Name: name, Value: value})
	return r
}

// WithCacheControl returns a copy of r carrying a cache-control header built
// from directives.
func (r Request) WithCacheControl(directives ...RequestDirective) Request {
	return r.WithHeader(headerCacheControl, FormatRequestDirectives(directives))
}

// RequestBuilder turns domain requests into transport requests against one
// base URL. The authorization header is computed once, in NewRequestBuilder.
type RequestBuilder struct {
	base       *url.URL
	authHeader httpclient.Header
	hasAuth    bool
	codec      Codec
}

// NewRequestBuilder parses baseURL and precomputes the authorization header.
// A nil auth is NoAuth and a nil codec is DefaultCodec.
func NewRequestBuilder(baseURL string, auth Authorization, codec Codec) (*RequestBuilder, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("rest: invalid base url %q: %w", baseURL, err)
	}
	if codec == nil {
		codec = DefaultCodec
	}
	header, ok := AuthorizationHeader(auth)
	return &RequestBuilder{
		base:       base,
		authHeader: header,
		hasAuth:    ok,
		codec:      codec,
	}, nil
}

// Build creates a bodyless transport request. Headers are accept, then the
// caller's headers in order, then authorization when req.Authorize is set.
func (b *RequestBuilder) Build(method string, req Request) (*httpclient.Request, error) {
	ref, err := url.Parse(req.Path)
	if err != nil {
		return nil, fmt.Errorf("rest: invalid path %q: %w", req.Path, err)
	}

	headers := make([]httpclient.Header, 0, len(req.Headers)+2)
	headers = append(headers, httpclient.Header{Name: headerAccept, Value: mediaTypeJSON})
	headers = append(headers, req.Headers...)
	if req.Authorize && b.hasAuth {
		headers = append(headers, b.authHeader)
	}

	return &httpclient.Request{
		URL:     b.base.ResolveReference(ref).String(),
		Method:  method,
		Headers: headers,
	}, nil
}

// BuildWithBody creates a transport request carrying body as JSON, with
// content-type and content-length ahead of the headers Build produces.
func (b *RequestBuilder) BuildWithBody(method string, req Request, body any) (*httpclient.Request, error) {
	payload, err := b.codec.Marshal(body)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	out, err := b.Build(method, req)
	if err != nil {
		return nil, err
	}

	headers := make([]httpclient.Header, 0, len(out.Headers)+2)
	headers = append(headers,
		httpclient.Header{Name: headerContentType, Value: mediaTypeJSON},
		httpclient.Header{Name: headerContentLength, Value: strconv.Itoa(len(payload))},
	)
	out.Headers = append(headers, out.Headers...)
	out.Body = payload
	return out, nil
}

func (b *RequestBuilder) buildDelete(req DeleteRequest) (*httpclient.Request, error) {
	if isNilBody(req.Body) {
		return b.Build(http.MethodDelete, req.Request)
	}
	return b.BuildWithBody(http.MethodDelete, req.Request, req.Body)
}

func isNilBody(body any) bool {
	if body == nil {
		return true
	}
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}
