package httpclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/observability"
)

func stubTransport(status int, err error) Transport {
	return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
		if err != nil {
			return nil, err
		}
		return &Response{StatusCode: status}, nil
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(inner Transport) Transport {
			return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
				order = append(order, name)
				return inner.Send(ctx, req)
			})
		}
	}

	tr := Chain(mark("a"), mark("b"), mark("c"))(stubTransport(200, nil))
	if _, err := tr.Send(context.Background(), &Request{Method: http.MethodGet}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(order, ",") != "a,b,c" {
		t.Errorf("expected outermost-first order a,b,c, got %v", order)
	}
}

func TestChain_Empty(t *testing.T) {
	tr := Chain()(stubTransport(204, nil))
	resp, err := tr.Send(context.Background(), &Request{})
	if err != nil || resp.StatusCode != 204 {
		t.Errorf("empty chain should pass through, got %v %v", resp, err)
	}
}

func TestWithLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: logger.FormatJSON}, "test", buf)

	tr := WithLogging(log)(stubTransport(201, nil))
	if _, err := tr.Send(context.Background(), &Request{Method: http.MethodPost, URL: "http://x/items"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"level":"debug"`, `"method":"POST"`, `"url":"http://x/items"`, `"status":201`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}

	buf.Reset()
	tr = WithLogging(log)(stubTransport(0, NewConnectionError(errors.New("refused"))))
	if _, err := tr.Send(context.Background(), &Request{Method: http.MethodGet, URL: "http://x"}); !IsConnection(err) {
		t.Fatalf("expected connection error to pass through, got %v", err)
	}
	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), "refused") {
		t.Errorf("expected error log line, got %s", buf.String())
	}
}

func TestWithTracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	tr := WithTracing("demo")(stubTransport(404, nil))
	if _, err := tr.Send(context.Background(), &Request{Method: http.MethodGet, URL: "http://x/gone"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name != "demo.http.send" {
		t.Errorf("unexpected span name %q", span.Name)
	}
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes {
		attrs[kv.Key] = kv.Value
	}
	if attrs[observability.AttrHTTPMethod].AsString() != "GET" {
		t.Errorf("expected method attribute, got %v", attrs)
	}
	if attrs[observability.AttrHTTPStatusCode].AsInt64() != 404 {
		t.Errorf("expected status attribute 404, got %v", attrs[observability.AttrHTTPStatusCode])
	}
}

func TestWithTracing_Error(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	tr := WithTracing("demo")(stubTransport(0, NewTimeoutError(context.DeadlineExceeded)))
	_, _ = tr.Send(context.Background(), &Request{Method: http.MethodGet, URL: "http://x"})

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if len(spans[0].Events) == 0 {
		t.Error("expected the error to be recorded on the span")
	}
}

func TestWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := observability.NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics failed: %v", err)
	}

	ok := WithMetrics(metrics)(stubTransport(200, nil))
	failing := WithMetrics(metrics)(stubTransport(0, NewConnectionError(errors.New("refused"))))
	_, _ = ok.Send(context.Background(), &Request{Method: http.MethodGet})
	_, _ = ok.Send(context.Background(), &Request{Method: http.MethodGet})
	_, _ = failing.Send(context.Background(), &Request{Method: http.MethodGet})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	totals := map[string]int64{}
	var errorCount int64
	var errorAttrs [2]string
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, isSum := m.Data.(metricdata.Sum[int64])
			if !isSum {
				continue
			}
			for _, dp := range sum.DataPoints {
				switch m.Name {
				case "http.client.request.total":
					status, _ := dp.Attributes.Value("status")
					totals[status.AsString()] += dp.Value
				case "error.total":
					errorCount += dp.Value
					errType, _ := dp.Attributes.Value("type")
					comp, _ := dp.Attributes.Value("component")
					errorAttrs = [2]string{errType.AsString(), comp.AsString()}
				}
			}
		}
	}
	if totals["200"] != 2 || totals["error"] != 1 {
		t.Errorf("unexpected request totals %v", totals)
	}
	if errorCount != 1 {
		t.Errorf("expected 1 recorded error, got %d", errorCount)
	}
	if errorAttrs != [2]string{"connection", "httpclient"} {
		t.Errorf("expected type=connection component=httpclient, got %v", errorAttrs)
	}
}
