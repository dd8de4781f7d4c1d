package cli

import (
	"context"
	"errors"
	"net"

	"github.com/kbukum/restkit/component"
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/server"
)

// app is the set of components one command runs.
type app struct {
	cfg       *Config
	log       *logger.Logger
	registry  *component.Registry
	telemetry *telemetry

	// set when the demo server runs in process
	server *server.Server
	creds  *server.Credentials

	// set when a REST client is needed
	transport *httpclient.Component
}

type appOptions struct {
	withServer    bool
	withTransport bool
	listener      net.Listener
}

// newApp builds and registers the components; nothing is started yet.
func newApp(ctx context.Context, cfg *Config, log *logger.Logger, opts appOptions) (*app, error) {
	t, err := setupTelemetry(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log, registry: component.NewRegistry(log), telemetry: t}

	if opts.withServer {
		if err := a.addServer(opts.listener); err != nil {
			_ = t.Shutdown(ctx)
			return nil, err
		}
	}
	if opts.withTransport {
		a.transport = httpclient.NewComponent(cfg.Client.HTTP)
		if err := a.registry.Register(a.transport); err != nil {
			_ = t.Shutdown(ctx)
			return nil, err
		}
	}
	return a, nil
}

func (a *app) addServer(ln net.Listener) error {
	var srvOpts []server.Option
	if ln != nil {
		srvOpts = append(srvOpts, server.WithListener(ln))
	}
	srv, err := server.New(a.cfg.Server, a.log, srvOpts...)
	if err != nil {
		return err
	}
	creds, err := server.NewCredentials(a.cfg.Server.Auth)
	if err != nil {
		return err
	}
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(a.cfg.Name, a.registry.HealthAll)
	server.NewDemo(creds.Middleware()).Register(srv.GinEngine())

	a.server = srv
	a.creds = creds
	return a.registry.Register(server.NewComponent(srv))
}

// start starts every component and logs the summary.
func (a *app) start(ctx context.Context) error {
	if err := a.registry.StartAll(ctx); err != nil {
		return err
	}
	a.registry.Summary()
	return nil
}

// stop stops the components, then flushes telemetry.
func (a *app) stop(ctx context.Context) error {
	return errors.Join(a.registry.StopAll(ctx), a.telemetry.Shutdown(ctx))
}
