package rest

import (
	"strconv"
	"strings"
)

// ResponseDirectiveKind names a Cache-Control directive a server may send.
type ResponseDirectiveKind string

const (
	ResponseMaxAge  ResponseDirectiveKind = "max-age"
	ResponseNoCache ResponseDirectiveKind = "no-cache"
	ResponseNoStore ResponseDirectiveKind = "no-store"
)

// RequestDirectiveKind names a Cache-Control directive a client may send.
type RequestDirectiveKind string

const (
	RequestMaxAge   RequestDirectiveKind = "max-age"
	RequestMaxStale RequestDirectiveKind = "max-stale"
	RequestNoCache  RequestDirectiveKind = "no-cache"
)

// ResponseDirective is one parsed response Cache-Control directive.
// MaxAgeSeconds is only meaningful for ResponseMaxAge. Malformed is set when
// the max-age value has no leading integer; MaxAgeSeconds is then 0.
type ResponseDirective struct {
	Kind          ResponseDirectiveKind
	MaxAgeSeconds int
	Malformed     bool
}

// RequestDirective is one request Cache-Control directive. Seconds applies
// to max-age and max-stale.
type RequestDirective struct {
	Kind      RequestDirectiveKind
	Seconds   int
	Malformed bool
}

// ParseResponseDirectives parses a Cache-Control header value. An empty
// header yields no directives. Unknown names are dropped; order and
// duplicates are kept.
func ParseResponseDirectives(header string) []ResponseDirective {
	directives := []ResponseDirective{}
	forEachDirective(header, func(name, value string, hasValue bool) {
		switch ResponseDirectiveKind(name) {
		case ResponseMaxAge:
			seconds, ok := parseSeconds(value, hasValue)
			directives = append(directives, ResponseDirective{Kind: ResponseMaxAge, MaxAgeSeconds: seconds, Malformed: !ok})
		case ResponseNoCache:
			directives = append(directives, ResponseDirective{Kind: ResponseNoCache})
		case ResponseNoStore:
			directives = append(directives, ResponseDirective{Kind: ResponseNoStore})
		}
	})
	return directives
}

// ParseRequestDirectives parses a request Cache-Control header value with the
// same rules as ParseResponseDirectives.
func ParseRequestDirectives(header string) []RequestDirective {
	directives := []RequestDirective{}
	forEachDirective(header, func(name, value string, hasValue bool) {
		switch RequestDirectiveKind(name) {
		case RequestMaxAge, RequestMaxStale:
			seconds, ok := parseSeconds(value, hasValue)
			directives = append(directives, RequestDirective{Kind: RequestDirectiveKind(name), Seconds: seconds, Malformed: !ok})
		case RequestNoCache:
			directives = append(directives, RequestDirective{Kind: RequestNoCache})
		}
	})
	return directives
}

// FormatRequestDirectives renders directives as a Cache-Control value,
// e.g. "max-age=60, no-cache".
func FormatRequestDirectives(directives []RequestDirective) string {
	parts := make([]string, 0, len(directives))
	for _, d := range directives {
		switch d.Kind {
		case RequestMaxAge, RequestMaxStale:
			parts = append(parts, string(d.Kind)+"="+strconv.Itoa(d.Seconds))
		default:
			parts = append(parts, string(d.Kind))
		}
	}
	return strings.Join(parts, ", ")
}

func forEachDirective(header string, fn func(name, value string, hasValue bool)) {
	if header == "" {
		return
	}
	for _, token := range strings.Split(header, ",") {
		name, value, hasValue := strings.Cut(strings.TrimSpace(token), "=")
		fn(name, value, hasValue)
	}
}

// parseSeconds reads a leading, optionally signed, base-10 integer and
// ignores whatever follows it, so "60abc" is 60.
func parseSeconds(value string, hasValue bool) (int, bool) {
	if !hasValue {
		return 0, false
	}
	s := strings.TrimSpace(value)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
