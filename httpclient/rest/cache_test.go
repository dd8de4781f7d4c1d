package rest

import (
	"reflect"
	"testing"
)

func TestParseResponseDirectives(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   []ResponseDirective
	}{
		{"empty", "", []ResponseDirective{}},
		{"max-age", "max-age=60", []ResponseDirective{{Kind: ResponseMaxAge, MaxAgeSeconds: 60}}},
		{"order kept", "no-cache, max-age=0", []ResponseDirective{
			{Kind: ResponseNoCache},
			{Kind: ResponseMaxAge, MaxAgeSeconds: 0},
		}},
		{"unknown dropped", "unknown-directive=1", []ResponseDirective{}},
		{"duplicates kept", "no-store,no-store", []ResponseDirective{{Kind: ResponseNoStore}, {Kind: ResponseNoStore}}},
		{"mixed", "public, max-age=300, no-store, private", []ResponseDirective{
			{Kind: ResponseMaxAge, MaxAgeSeconds: 300},
			{Kind: ResponseNoStore},
		}},
		{"value on valueless directive", "no-cache=set-cookie", []ResponseDirective{{Kind: ResponseNoCache}}},
		{"case sensitive", "Max-Age=60", []ResponseDirective{}},
		{"trailing junk", "max-age=60abc", []ResponseDirective{{Kind: ResponseMaxAge, MaxAgeSeconds: 60}}},
		{"signed", "max-age=-5", []ResponseDirective{{Kind: ResponseMaxAge, MaxAgeSeconds: -5}}},
		{"second equals", "max-age=60=1", []ResponseDirective{{Kind: ResponseMaxAge, MaxAgeSeconds: 60}}},
		{"not a number", "max-age=soon", []ResponseDirective{{Kind: ResponseMaxAge, Malformed: true}}},
		{"no value", "max-age", []ResponseDirective{{Kind: ResponseMaxAge, Malformed: true}}},
		{"empty tokens", " , ,no-cache", []ResponseDirective{{Kind: ResponseNoCache}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResponseDirectives(tt.header)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseResponseDirectives(%q) = %+v, want %+v", tt.header, got, tt.want)
			}
		})
	}
}

func TestParseRequestDirectives(t *testing.T) {
	got := ParseRequestDirectives("max-stale=30, no-store, max-age=5, no-cache")
	want := []RequestDirective{
		{Kind: RequestMaxStale, Seconds: 30},
		{Kind: RequestMaxAge, Seconds: 5},
		{Kind: RequestNoCache},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got := ParseRequestDirectives(""); len(got) != 0 {
		t.Errorf("expected no directives, got %+v", got)
	}
}

func TestFormatRequestDirectives(t *testing.T) {
	directives := []RequestDirective{
		{Kind: RequestMaxAge, Seconds: 60},
		{Kind: RequestNoCache},
		{Kind: RequestMaxStale, Seconds: 10},
	}
	header := FormatRequestDirectives(directives)
	if header != "max-age=60, no-cache, max-stale=10" {
		t.Errorf("unexpected header %q", header)
	}
	if back := ParseRequestDirectives(header); !reflect.DeepEqual(back, directives) {
		t.Errorf("parse(format(x)) = %+v, want %+v", back, directives)
	}
	if FormatRequestDirectives(nil) != "" {
		t.Error("no directives should format to empty string")
	}
}
