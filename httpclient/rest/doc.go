// Package rest is a typed REST client on top of an httpclient.Transport.
//
// Each verb takes a domain request (path, ordered headers, authorize flag and,
// where it applies, a JSON body), builds a transport request, sends it and
// maps the raw response into a typed result:
//
//	client, err := rest.New(rest.Config{
//	    BaseURL:       "http://localhost:8080",
//	    Authorization: rest.BasicAuth("luke", "kaalim"),
//	})
//
//	resp, err := client.Post(ctx, rest.BodyRequest{
//	    Request: rest.Request{Path: "/echo", Authorize: true},
//	    Body:    map[string]string{"hello": "friend"},
//	})
//
// Only 200, 201, 202 and 204 are successes. Every other status returns a
// *StatusError with a closed ErrorKind and the body is left unparsed:
//
//	_, err = client.Get(ctx, rest.Request{Path: "/gone"})
//	if rest.IsNotFound(err) {
//	    // ...
//	}
//
// A 204 always yields a nil Body. GET and HEAD responses carry the parsed
// Cache-Control directives, POST responses the Location header.
//
// Typed decoding goes through Decode or the As helper:
//
//	user, err := rest.As[User](resp)
package rest
