package server

import "testing"

func TestFormatHandlerName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"github.com/kbukum/restkit/server.(*Demo).Echo-fm", "Demo.Echo"},
		{"github.com/kbukum/restkit/server/endpoint.Health.func1", "health"},
		{"main.handler", "handler"},
	}
	for _, tc := range tests {
		if got := formatHandlerName(tc.in); got != tc.want {
			t.Errorf("formatHandlerName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMethodOrder(t *testing.T) {
	if !(methodOrder("GET") < methodOrder("POST") && methodOrder("POST") < methodOrder("DELETE")) {
		t.Error("expected GET < POST < DELETE")
	}
	if methodOrder("OPTIONS") <= methodOrder("DELETE") {
		t.Error("unknown methods sort last")
	}
}
