package rest

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"github.com/kbukum/restkit/httpclient"
)

func newTestBuilder(t *testing.T, base string, auth Authorization) *RequestBuilder {
	t.Helper()
	b, err := NewRequestBuilder(base, auth, nil)
	if err != nil {
		t.Fatalf("NewRequestBuilder() error = %v", err)
	}
	return b
}

func headerNames(hs []httpclient.Header) []string {
	names := make([]string, len(hs))
	for i, h := range hs {
		names[i] = h.Name
	}
	return names
}

func TestBuildWithBody_HeaderOrder(t *testing.T) {
	b := newTestBuilder(t, "http://api.test", BasicAuth("luke", "kaalim"))
	req, err := b.BuildWithBody(http.MethodPost, Request{
		Path:      "/echo",
		Headers:   []httpclient.Header{{Name: "x-trace", Value: "1"}},
		Authorize: true,
	}, map[string]string{"hello": "friend"})
	if err != nil {
		t.Fatalf("BuildWithBody() error = %v", err)
	}

	want := []httpclient.Header{
		{Name: "content-type", Value: "application/json"},
		{Name: "content-length", Value: "18"},
		{Name: "accept", Value: "application/json"},
		{Name: "x-trace", Value: "1"},
		{Name: "Authorization", Value: "Basic bHVrZTprYWFsaW0="},
	}
	if !reflect.DeepEqual(req.Headers, want) {
		t.Errorf("headers = %+v, want %+v", req.Headers, want)
	}
	if req.Method != http.MethodPost {
		t.Errorf("method = %q", req.Method)
	}
	if req.URL != "http://api.test/echo" {
		t.Errorf("url = %q", req.URL)
	}
}

func TestBuild_NoAuthorizeFlag(t *testing.T) {
	b := newTestBuilder(t, "http://api.test", BearerAuth("abc"))
	req, err := b.Build(http.MethodGet, Request{
		Path: "/items",
		Headers: []httpclient.Header{
			{Name: "x-b", Value: "2"},
			{Name: "x-a", Value: "1"},
			{Name: "x-b", Value: "3"},
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := headerNames(req.Headers); !reflect.DeepEqual(got, []string{"accept", "x-b", "x-a", "x-b"}) {
		t.Errorf("header names = %v", got)
	}
	if req.Body != nil {
		t.Error("bodyless request should have nil body")
	}
}

func TestBuild_AuthorizeWithNoAuth(t *testing.T) {
	b := newTestBuilder(t, "http://api.test", NoAuth())
	req, _ := b.Build(http.MethodGet, Request{Path: "/", Authorize: true})
	if got := headerNames(req.Headers); !reflect.DeepEqual(got, []string{"accept"}) {
		t.Errorf("expected only accept, got %v", got)
	}
}

func TestBuild_URLResolution(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"http://api.test", "/echo", "http://api.test/echo"},
		{"http://api.test/v1/", "users", "http://api.test/v1/users"},
		{"http://api.test/v1/", "/users", "http://api.test/users"},
		{"http://api.test/v1", "users", "http://api.test/users"},
		{"http://api.test/v1/", "../v2/users", "http://api.test/v2/users"},
		{"http://api.test/v1/", "users?page=2", "http://api.test/v1/users?page=2"},
		{"http://api.test/", "https://other.test/x", "https://other.test/x"},
	}
	for _, tt := range tests {
		t.Run(tt.base+"+"+tt.path, func(t *testing.T) {
			req, err := newTestBuilder(t, tt.base, nil).Build(http.MethodGet, Request{Path: tt.path})
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if req.URL != tt.want {
				t.Errorf("url = %q, want %q", req.URL, tt.want)
			}
		})
	}
}

func TestBuild_QueryNotMerged(t *testing.T) {
	req, _ := newTestBuilder(t, "http://api.test", nil).Build(http.MethodGet, Request{
		Path:  "/items",
		Query: map[string]string{"page": "2"},
	})
	if req.URL != "http://api.test/items" {
		t.Errorf("query must not be merged into the url, got %q", req.URL)
	}
}

func TestBuild_InvalidPath(t *testing.T) {
	_, err := newTestBuilder(t, "http://api.test", nil).Build(http.MethodGet, Request{Path: "%zz"})
	if err == nil {
		t.Error("expected error for unparsable path")
	}
}

func TestNewRequestBuilder_InvalidBase(t *testing.T) {
	if _, err := NewRequestBuilder("http://[::1", nil, nil); err == nil {
		t.Error("expected error for invalid base url")
	}
}

func TestBuildWithBody_ContentLengthIsBytes(t *testing.T) {
	req, err := newTestBuilder(t, "http://api.test", nil).BuildWithBody(http.MethodPut, Request{Path: "/"}, "héllo")
	if err != nil {
		t.Fatalf("BuildWithBody() error = %v", err)
	}
	// "héllo" is 7 characters serialized, 8 bytes.
	if string(req.Body) != `"héllo"` {
		t.Fatalf("unexpected body %q", req.Body)
	}
	if req.Headers[1].Value != "8" {
		t.Errorf("content-length = %s, want 8", req.Headers[1].Value)
	}
}

func TestBuildWithBody_RoundTrip(t *testing.T) {
	body := map[string]any{"hello": "friend", "n": 1.5, "tags": []any{"a", "b"}, "nested": map[string]any{"ok": true}}
	req, err := newTestBuilder(t, "http://api.test", nil).BuildWithBody(http.MethodPost, Request{Path: "/"}, body)
	if err != nil {
		t.Fatalf("BuildWithBody() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(req.Body, &decoded); err != nil {
		t.Fatalf("transport-side decode failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, body) {
		t.Errorf("round trip = %v, want %v", decoded, body)
	}
}

func TestBuildWithBody_NilBodyIsNull(t *testing.T) {
	req, _ := newTestBuilder(t, "http://api.test", nil).BuildWithBody(http.MethodPatch, Request{Path: "/"}, nil)
	if string(req.Body) != "null" {
		t.Errorf("body = %q, want null", req.Body)
	}
}

func TestBuildWithBody_EncodeError(t *testing.T) {
	_, err := newTestBuilder(t, "http://api.test", nil).BuildWithBody(http.MethodPost, Request{Path: "/"}, make(chan int))
	if !IsEncode(err) {
		t.Errorf("expected EncodeError, got %v", err)
	}
}

func TestBuildDelete(t *testing.T) {
	b := newTestBuilder(t, "http://api.test", nil)

	bare, err := b.buildDelete(DeleteRequest{Request: Request{Path: "/echo"}})
	if err != nil {
		t.Fatalf("buildDelete() error = %v", err)
	}
	if bare.Body != nil || bare.Headers[0].Name != "accept" {
		t.Errorf("delete without body should be bodyless, got %+v", bare)
	}

	withBody, err := b.buildDelete(DeleteRequest{Request: Request{Path: "/echo"}, Body: map[string]int{"id": 1}})
	if err != nil {
		t.Fatalf("buildDelete() error = %v", err)
	}
	if string(withBody.Body) != `{"id":1}` || withBody.Headers[0].Name != "content-type" {
		t.Errorf("delete with body should carry it, got %+v", withBody)
	}
	if withBody.Method != http.MethodDelete {
		t.Errorf("method = %q", withBody.Method)
	}
}

func TestBuildDelete_TypedNilBody(t *testing.T) {
	b := newTestBuilder(t, "http://api.test", nil)

	tests := []struct {
		name string
		body any
	}{
		{"nil map", map[string]int(nil)},
		{"nil slice", []string(nil)},
		{"nil pointer", (*struct{ ID int })(nil)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := b.buildDelete(DeleteRequest{Request: Request{Path: "/echo"}, Body: tc.body})
			if err != nil {
				t.Fatalf("buildDelete() error = %v", err)
			}
			if req.Body != nil || len(req.Headers) != 1 || req.Headers[0].Name != "accept" {
				t.Errorf("typed nil body should be bodyless, got body=%q headers=%+v", req.Body, req.Headers)
			}
		})
	}

	empty, err := b.buildDelete(DeleteRequest{Request: Request{Path: "/echo"}, Body: map[string]int{}})
	if err != nil {
		t.Fatalf("buildDelete() error = %v", err)
	}
	if string(empty.Body) != `{}` {
		t.Errorf("empty map should still be sent, got %q", empty.Body)
	}
}

func TestRequest_WithHeaderDoesNotAlias(t *testing.T) {
	base := Request{Path: "/", Headers: make([]httpclient.Header, 1, 4)}
	a := base.WithHeader("x-a", "1")
	b := base.WithHeader("x-b", "2")
	if a.Headers[1].Name != "x-a" || b.Headers[1].Name != "x-b" {
		t.Errorf("copies share backing array: %v %v", a.Headers, b.Headers)
	}
	if len(base.Headers) != 1 {
		t.Error("original request must not change")
	}
}

func TestRequest_WithCacheControl(t *testing.T) {
	r := Request{Path: "/"}.WithCacheControl(
		RequestDirective{Kind: RequestMaxAge, Seconds: 0},
		RequestDirective{Kind: RequestNoCache},
	)
	want := []httpclient.Header{{Name: "cache-control", Value: "max-age=0, no-cache"}}
	if !reflect.DeepEqual(r.Headers, want) {
		t.Errorf("headers = %+v", r.Headers)
	}
}
