package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestComponent_Lifecycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	comp := NewComponent(Config{Name: "test-http"})

	if comp.Adapter() != nil {
		t.Error("Adapter() should be nil before Start()")
	}

	if err := comp.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if comp.Adapter() == nil {
		t.Fatal("Adapter() should not be nil after Start()")
	}

	health := comp.Health(context.Background())
	if health.Status != "healthy" {
		t.Errorf("expected healthy, got %s", health.Status)
	}
	if health.Name != "test-http" {
		t.Errorf("expected name test-http, got %s", health.Name)
	}

	resp, err := comp.Adapter().Send(context.Background(), &Request{
		Method: http.MethodGet,
		URL:    srv.URL + "/",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	if err := comp.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}

func TestComponent_Name_Default(t *testing.T) {
	comp := NewComponent(Config{})
	if got := comp.Name(); got != "http" {
		t.Errorf("expected default name 'http', got %q", got)
	}
}

func TestComponent_Describe(t *testing.T) {
	comp := NewComponent(Config{Name: "my-api", Timeout: 5 * time.Second})
	desc := comp.Describe()
	if desc.Type != "http-transport" {
		t.Errorf("expected type 'http-transport', got %q", desc.Type)
	}
	if desc.Details != "5s" {
		t.Errorf("expected timeout in details, got %q", desc.Details)
	}
}

func TestComponent_Health_Unhealthy_BeforeStart(t *testing.T) {
	comp := NewComponent(Config{})
	health := comp.Health(context.Background())
	if health.Status != "unhealthy" {
		t.Errorf("expected unhealthy before Start(), got %s", health.Status)
	}
}

func TestComponent_Stop_BeforeStart(t *testing.T) {
	comp := NewComponent(Config{})
	if err := comp.Stop(context.Background()); err != nil {
		t.Errorf("Stop() before Start() should be a no-op, got %v", err)
	}
}
