package cli

import (
	"context"
	"errors"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/httpclient/rest"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/observability"
)

// telemetry owns the OpenTelemetry providers installed for one command run.
type telemetry struct {
	metrics  *observability.Metrics
	tracing  string
	shutdown []func(context.Context) error
}

// setupTelemetry installs OTLP tracer and meter providers when an endpoint
// is configured. Metrics instruments are always created; without an
// endpoint they record into the global no-op provider.
func setupTelemetry(ctx context.Context, cfg *Config) (*telemetry, error) {
	t := &telemetry{}
	if cfg.Tracing.Endpoint != "" {
		tp, err := observability.InitTracer(ctx, cfg.TracerConfig())
		if err != nil {
			return nil, err
		}
		t.shutdown = append(t.shutdown, tp.Shutdown)

		mp, err := observability.InitMeter(ctx, cfg.MeterConfig())
		if err != nil {
			_ = t.Shutdown(ctx)
			return nil, err
		}
		t.shutdown = append(t.shutdown, mp.Shutdown)
		t.tracing = cfg.Name
	}

	m, err := observability.NewMetrics(observability.Meter(cfg.Name))
	if err != nil {
		_ = t.Shutdown(ctx)
		return nil, err
	}
	t.metrics = m
	return t, nil
}

// clientOptions wires logging, tracing and metrics into a REST client and
// its transport.
func (t *telemetry) clientOptions(log *logger.Logger) []rest.Option {
	mw := []httpclient.Middleware{httpclient.WithLogging(log.WithComponent("http"))}
	opts := []rest.Option{rest.WithLogger(log.WithComponent("rest")), rest.WithMetrics(t.metrics)}
	if t.tracing != "" {
		mw = append(mw, httpclient.WithTracing(t.tracing))
		opts = append(opts, rest.WithTracing(t.tracing))
	}
	mw = append(mw, httpclient.WithMetrics(t.metrics))
	return append(opts, rest.WithMiddleware(mw...))
}

// Shutdown flushes and stops the providers in reverse order.
func (t *telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(t.shutdown) - 1; i >= 0; i-- {
		errs = append(errs, t.shutdown[i](ctx))
	}
	t.shutdown = nil
	return errors.Join(errs...)
}
