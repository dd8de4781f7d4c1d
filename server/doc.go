// Package server is the Gin demo server the REST client is exercised
// against, served over HTTP/1.1 and cleartext HTTP/2 (h2c).
//
// Middleware (server/middleware): panic recovery, request ids, request
// logging, body size limit, and Basic/Bearer authentication.
//
// Endpoints (server/endpoint): /health and /info.
//
// Demo routes (see Demo.Register):
//
//	GET|HEAD /echo        {"hello":"world"}, Cache-Control: max-age=60
//	POST|PUT|PATCH /echo  echo of the JSON body
//	DELETE /echo          204
//	POST /items           201 echo with Location: /items/<uuid>
//	GET|DELETE /gone      404
//	GET /status/:code     the requested status
//	GET /private/whoami   authenticated principal
//
// A typical setup:
//
//	srv, _ := server.New(cfg, log)
//	creds, _ := server.NewCredentials(cfg.Auth)
//	srv.ApplyMiddleware()
//	srv.RegisterDefaultEndpoints("restkit", registry.HealthAll)
//	server.NewDemo(creds.Middleware()).Register(srv.GinEngine())
package server
