package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/kbukum/restkit/httpclient/rest"
	"github.com/kbukum/restkit/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func demoConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{}
	cfg.Name = "restkit-test"
	cfg.Server.Auth.Password.BcryptCost = bcrypt.MinCost
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return cfg
}

func TestRunDemo_InProcess(t *testing.T) {
	cfg := demoConfig(t)

	var out bytes.Buffer
	if err := runDemo(context.Background(), cfg, logger.Nop(), &out); err != nil {
		t.Fatalf("runDemo() error = %v\n%s", err, out.String())
	}

	table := out.String()
	if strings.Contains(table, "FAIL") {
		t.Errorf("expected every scenario to pass:\n%s", table)
	}
	for _, want := range []string{
		"GET /echo",
		"cache=max-age=60",
		"message=hello",
		"no-content",
		"location=/items/",
		"subject=luke scheme=basic",
		"GET /private/whoami (bearer)",
		"subject=luke scheme=bearer",
	} {
		if !strings.Contains(table, want) {
			t.Errorf("expected output to contain %q:\n%s", want, table)
		}
	}
	if cfg.Server.Auth.JWT.Secret == "" {
		t.Error("expected a generated signing secret")
	}
}

func TestRunDemo_BearerClient(t *testing.T) {
	cfg := demoConfig(t)
	cfg.Client.Auth = AuthConfig{Type: AuthBearer}

	var out bytes.Buffer
	if err := runDemo(context.Background(), cfg, logger.Nop(), &out); err != nil {
		t.Fatalf("runDemo() error = %v\n%s", err, out.String())
	}
}

func TestRunDemo_WrongPassword(t *testing.T) {
	cfg := demoConfig(t)
	cfg.Client.Auth.Password = "wrong"

	var out bytes.Buffer
	err := runDemo(context.Background(), cfg, logger.Nop(), &out)
	if err == nil || !strings.Contains(err.Error(), "1 of") {
		t.Fatalf("expected one failed scenario, got %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "FAIL") {
		t.Errorf("expected a FAIL row:\n%s", out.String())
	}
}

func TestRunScenarios(t *testing.T) {
	errBoom := errors.New("boom")
	isBoom := func(err error) bool { return errors.Is(err, errBoom) }

	results := runScenarios(context.Background(), []scenario{
		{name: "ok", run: func(context.Context) (string, error) { return "fine", nil }},
		{name: "unexpected error", run: func(context.Context) (string, error) { return "", errBoom }},
		{name: "expected error", run: func(context.Context) (string, error) { return "", errBoom }, wantErr: isBoom},
		{name: "missing error", run: func(context.Context) (string, error) { return "", nil }, wantErr: isBoom},
	})

	want := []bool{true, false, true, false}
	for i, r := range results {
		if r.ok != want[i] {
			t.Errorf("%s: ok = %v, want %v", r.name, r.ok, want[i])
		}
	}
	if n := countFailed(results); n != 2 {
		t.Errorf("expected 2 failures, got %d", n)
	}

	var out bytes.Buffer
	if err := writeResults(&out, results); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "boom") || !strings.Contains(out.String(), "SCENARIO") {
		t.Errorf("unexpected table:\n%s", out.String())
	}
}

func TestFormatCache(t *testing.T) {
	tests := []struct {
		in   []rest.ResponseDirective
		want string
	}{
		{nil, "-"},
		{rest.ParseResponseDirectives("max-age=60"), "max-age=60"},
		{rest.ParseResponseDirectives("no-cache, max-age=5, no-store"), "no-cache,max-age=5,no-store"},
	}
	for _, tc := range tests {
		if got := formatCache(tc.in); got != tc.want {
			t.Errorf("formatCache(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
