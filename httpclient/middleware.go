package httpclient

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/observability"
)

// Middleware wraps a Transport with cross-cutting behavior.
type Middleware func(Transport) Transport

// Chain composes middlewares. The first middleware is outermost:
// Chain(a, b, c)(t) is equivalent to a(b(c(t))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner Transport) Transport {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// WithLogging logs every exchange: method, url, status and duration.
// Transport failures are logged at error level.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
			start := time.Now()
			resp, err := inner.Send(ctx, req)
			fields := logger.DurationFields("http.send", time.Since(start))
			fields["method"] = req.Method
			fields["url"] = req.URL
			if err != nil {
				fields[logger.FieldError] = err.Error()
				log.Error("http send failed", fields)
				return nil, err
			}
			fields[logger.FieldStatus] = resp.StatusCode
			log.Debug("http send ok", fields)
			return resp, nil
		})
	}
}

// WithTracing opens an OpenTelemetry span named "{serviceName}.http.send"
// around every exchange.
func WithTracing(serviceName string) Middleware {
	return func(inner Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
			ctx, span := observability.StartSpan(ctx, serviceName+"."+observability.SpanHTTPSend)
			defer span.End()

			observability.SetSpanAttribute(ctx, observability.AttrServiceName, serviceName)
			observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, req.Method)
			observability.SetSpanAttribute(ctx, observability.AttrHTTPURL, req.URL)

			resp, err := inner.Send(ctx, req)
			if err != nil {
				observability.SetSpanError(ctx, err)
				return nil, err
			}
			observability.SetSpanAttribute(ctx, observability.AttrHTTPStatusCode, resp.StatusCode)
			return resp, nil
		})
	}
}

// WithMetrics records exchange count, duration and transport errors.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(inner Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
			metrics.RecordRequestStart(ctx)
			start := time.Now()
			resp, err := inner.Send(ctx, req)
			duration := time.Since(start)

			status := "error"
			if err != nil {
				metrics.RecordError(ctx, errorType(err), metricsComponent)
			} else {
				status = strconv.Itoa(resp.StatusCode)
			}
			metrics.RecordRequestEnd(ctx, req.Method, status, duration)
			return resp, err
		})
	}
}

const metricsComponent = "httpclient"

// errorType is the transport error code, or "send" for foreign errors.
func errorType(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code.String()
	}
	return "send"
}
