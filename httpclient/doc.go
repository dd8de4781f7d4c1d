// Package httpclient is the byte-level HTTP transport under the rest client.
//
// A Transport sends one Request (absolute URL, method, ordered headers and
// an optional body) and returns the raw status, lower-cased response headers
// and body. It never interprets status codes: a 404 is a successful exchange
// at this layer. Only network, timeout and URL failures are errors.
//
// Adapter implements Transport on net/http. Middleware adds logging,
// tracing and metrics around any Transport:
//
//	adapter, err := httpclient.New(httpclient.Config{Timeout: 10 * time.Second})
//	transport := httpclient.Chain(
//	    httpclient.WithLogging(log),
//	    httpclient.WithTracing("restkit"),
//	)(adapter)
//
//	resp, err := transport.Send(ctx, &httpclient.Request{
//	    URL:    "http://localhost:8080/echo",
//	    Method: http.MethodGet,
//	})
package httpclient
