package rest

import (
	"strings"

	"github.com/kbukum/restkit/httpclient"
)

// Response holds the fields every verb returns. Header names are lower-cased;
// when a name repeats, the last value wins.
type Response struct {
	Headers      map[string]string
	StatusCode   int
	Status       Status
	HTTPResponse *httpclient.Response
}

func (r *Response) base() *Response { return r }

// BodyResponse is a Response whose JSON body was parsed. Body is nil when the
// status is no-content.
type BodyResponse struct {
	Response
	Body  any
	codec Codec
}

// Decode parses the raw body into v. It leaves v untouched for no-content.
func (r *BodyResponse) Decode(v any) error {
	if r.Status == StatusNoContent {
		return nil
	}
	codec := r.codec
	if codec == nil {
		codec = DefaultCodec
	}
	if err := codec.Unmarshal(r.HTTPResponse.Body, v); err != nil {
		return &DecodeError{Err: err, Body: r.HTTPResponse.Body}
	}
	return nil
}

// GetResponse is the result of a GET.
type GetResponse struct {
	BodyResponse
	Cache []ResponseDirective
}

// HeadResponse is the result of a HEAD.
type HeadResponse struct {
	Response
	Cache []ResponseDirective
}

// PostResponse is the result of a POST. Location is empty when the server
// sent none.
type PostResponse struct {
	BodyResponse
	Location string
}

// PutResponse is the result of a PUT. The body is never parsed.
type PutResponse struct {
	Response
}

// PatchResponse is the result of a PATCH.
type PatchResponse struct {
	BodyResponse
}

// DeleteResponse is the result of a DELETE.
type DeleteResponse struct {
	BodyResponse
}

// As decodes a response body into a new T.
//
//	user, err := rest.As[User](resp)
func As[T any](r interface{ Decode(v any) error }) (T, error) {
	var out T
	err := r.Decode(&out)
	return out, err
}

// foldHeaders collapses ordered pairs into a map, last write wins.
func foldHeaders(pairs []httpclient.Header) map[string]string {
	headers := make(map[string]string, len(pairs))
	for _, h := range pairs {
		headers[strings.ToLower(h.Name)] = h.Value
	}
	return headers
}

func toResponse(resp *httpclient.Response) (Response, error) {
	headers := foldHeaders(resp.Headers)
	status, err := Classify(resp.StatusCode)
	if err != nil {
		se := err.(*StatusError)
		se.Body = resp.Body
		return Response{}, se
	}
	return Response{
		Headers:      headers,
		StatusCode:   resp.StatusCode,
		Status:       status,
		HTTPResponse: resp,
	}, nil
}

func toBodyResponse(resp *httpclient.Response, codec Codec) (BodyResponse, error) {
	base, err := toResponse(resp)
	if err != nil {
		return BodyResponse{}, err
	}
	if codec == nil {
		codec = DefaultCodec
	}
	out := BodyResponse{Response: base, codec: codec}
	if base.Status == StatusNoContent {
		return out, nil
	}
	if err := codec.Unmarshal(resp.Body, &out.Body); err != nil {
		return BodyResponse{}, &DecodeError{Err: err, Body: resp.Body}
	}
	return out, nil
}

// ToGetResponse maps a transport response for GET: parsed body and cache.
func ToGetResponse(resp *httpclient.Response, codec Codec) (*GetResponse, error) {
	body, err := toBodyResponse(resp, codec)
	if err != nil {
		return nil, err
	}
	return &GetResponse{
		BodyResponse: body,
		Cache:        ParseResponseDirectives(body.Headers[headerCacheControl]),
	}, nil
}

// ToHeadResponse maps a transport response for HEAD: cache only.
func ToHeadResponse(resp *httpclient.Response) (*HeadResponse, error) {
	base, err := toResponse(resp)
	if err != nil {
		return nil, err
	}
	return &HeadResponse{
		Response: base,
		Cache:    ParseResponseDirectives(base.Headers[headerCacheControl]),
	}, nil
}

// ToPostResponse maps a transport response for POST: parsed body and location.
func ToPostResponse(resp *httpclient.Response, codec Codec) (*PostResponse, error) {
	body, err := toBodyResponse(resp, codec)
	if err != nil {
		return nil, err
	}
	return &PostResponse{
		BodyResponse: body,
		Location:     body.Headers[headerLocation],
	}, nil
}

// ToPutResponse maps a transport response for PUT: base fields only.
func ToPutResponse(resp *httpclient.Response) (*PutResponse, error) {
	base, err := toResponse(resp)
	if err != nil {
		return nil, err
	}
	return &PutResponse{Response: base}, nil
}

// ToPatchResponse maps a transport response for PATCH: parsed body.
func ToPatchResponse(resp *httpclient.Response, codec Codec) (*PatchResponse, error) {
	body, err := toBodyResponse(resp, codec)
	if err != nil {
		return nil, err
	}
	return &PatchResponse{BodyResponse: body}, nil
}

// ToDeleteResponse maps a transport response for DELETE: parsed body.
func ToDeleteResponse(resp *httpclient.Response, codec Codec) (*DeleteResponse, error) {
	body, err := toBodyResponse(resp, codec)
	if err != nil {
		return nil, err
	}
	return &DeleteResponse{BodyResponse: body}, nil
}
