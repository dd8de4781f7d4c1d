package cli

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kbukum/restkit/auth/authctx"
	"github.com/kbukum/restkit/auth/password"
	"github.com/kbukum/restkit/httpclient/rest"
	"github.com/kbukum/restkit/logger"
)

var (
	okLabel   = color.New(color.FgGreen)
	failLabel = color.New(color.FgRed, color.Bold)
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the REST client scenarios and print the outcomes",
		Long: `demo sends one request per verb through the typed REST client and
prints what each call returned. Without client.base_url it starts the demo
server on an ephemeral loopback port first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), cfg, cfg.InitLogger(), cmd.OutOrStdout())
		},
	}
}

// runDemo starts the app, runs every scenario and writes the results table.
func runDemo(ctx context.Context, cfg *Config, log *logger.Logger, out io.Writer) (err error) {
	inProcess := cfg.Client.BaseURL == ""
	var ln net.Listener
	if inProcess {
		if err := ensureSigningSecret(cfg); err != nil {
			return err
		}
		if ln, err = net.Listen("tcp", "127.0.0.1:0"); err != nil {
			return fmt.Errorf("demo: listen: %w", err)
		}
	}

	a, err := newApp(ctx, cfg, log, appOptions{withServer: inProcess, withTransport: true, listener: ln})
	if err != nil {
		if ln != nil {
			_ = ln.Close()
		}
		return err
	}
	defer func() {
		if stopErr := a.stop(context.Background()); err == nil {
			err = stopErr
		}
	}()
	if err := a.start(ctx); err != nil {
		return err
	}

	baseURL := cfg.Client.BaseURL
	if inProcess {
		baseURL = a.server.URL()
	}

	clientOpts := append(a.telemetry.clientOptions(log), rest.WithTransport(a.transport.Adapter()))
	newClient := func(auth rest.Authorization) (*rest.Client, error) {
		return rest.New(rest.Config{BaseURL: baseURL, Authorization: auth}, clientOpts...)
	}

	authCfg := cfg.Client.Auth
	if authCfg.Type == AuthBearer && authCfg.Token == "" && a.creds != nil {
		if authCfg.Token, err = a.creds.IssueToken(subjectOf(authCfg)); err != nil {
			return err
		}
	}
	client, err := newClient(authCfg.Authorization())
	if err != nil {
		return err
	}

	// A second client exercises bearer tokens when the in-process server
	// can issue them.
	var bearer *rest.Client
	if a.creds != nil {
		token, err := a.creds.IssueToken(subjectOf(authCfg))
		if err != nil {
			return err
		}
		if token != "" {
			if bearer, err = newClient(rest.BearerAuth(token)); err != nil {
				return err
			}
		}
	}

	results := runScenarios(ctx, demoScenarios(client, bearer))
	if err := writeResults(out, results); err != nil {
		return err
	}
	if failed := countFailed(results); failed > 0 {
		return fmt.Errorf("demo: %d of %d scenarios failed", failed, len(results))
	}
	return nil
}

// ensureSigningSecret gives the in-process server a throwaway JWT secret so
// bearer scenarios can run without configuration.
func ensureSigningSecret(cfg *Config) error {
	jwtCfg := &cfg.Server.Auth.JWT
	if jwtCfg.Secret != "" {
		return nil
	}
	secret, err := password.GenerateToken(32)
	if err != nil {
		return err
	}
	jwtCfg.Secret = secret
	jwtCfg.ApplyDefaults()
	return nil
}

func subjectOf(a AuthConfig) string {
	if a.Username != "" {
		return a.Username
	}
	return "luke"
}

// scenario is one client call. wantErr is nil when the call must succeed,
// otherwise it reports whether the returned error is the expected one.
type scenario struct {
	name    string
	run     func(ctx context.Context) (string, error)
	wantErr func(error) bool
}

type result struct {
	name   string
	detail string
	err    error
	ok     bool
}

func demoScenarios(c, bearer *rest.Client) []scenario {
	scenarios := []scenario{
		{name: "GET /echo", run: func(ctx context.Context) (string, error) {
			resp, err := c.Get(ctx, rest.Request{Path: "/echo"})
			if err != nil {
				return "", err
			}
			body, err := rest.As[map[string]string](resp)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s hello=%s cache=%s", resp.Status, body["hello"], formatCache(resp.Cache)), nil
		}},
		{name: "HEAD /echo", run: func(ctx context.Context) (string, error) {
			resp, err := c.Head(ctx, rest.Request{Path: "/echo"})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s cache=%s", resp.Status, formatCache(resp.Cache)), nil
		}},
		{name: "POST /echo", run: func(ctx context.Context) (string, error) {
			resp, err := c.Post(ctx, rest.BodyRequest{
				Request: rest.Request{Path: "/echo"},
				Body:    map[string]string{"message": "hello"},
			})
			if err != nil {
				return "", err
			}
			body, err := rest.As[map[string]string](resp)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s message=%s", resp.Status, body["message"]), nil
		}},
		{name: "PUT /echo", run: func(ctx context.Context) (string, error) {
			resp, err := c.Put(ctx, rest.BodyRequest{Request: rest.Request{Path: "/echo"}, Body: []int{1, 2, 3}})
			if err != nil {
				return "", err
			}
			return resp.Status.String(), nil
		}},
		{name: "PATCH /echo", run: func(ctx context.Context) (string, error) {
			resp, err := c.Patch(ctx, rest.BodyRequest{Request: rest.Request{Path: "/echo"}, Body: map[string]int{"count": 2}})
			if err != nil {
				return "", err
			}
			body, err := rest.As[map[string]int](resp)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s count=%d", resp.Status, body["count"]), nil
		}},
		{name: "DELETE /echo", run: func(ctx context.Context) (string, error) {
			resp, err := c.Delete(ctx, rest.DeleteRequest{Request: rest.Request{Path: "/echo"}})
			if err != nil {
				return "", err
			}
			return resp.Status.String(), nil
		}},
		{name: "POST /items", run: func(ctx context.Context) (string, error) {
			resp, err := c.Post(ctx, rest.BodyRequest{
				Request: rest.Request{Path: "/items"},
				Body:    map[string]string{"name": "widget"},
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s location=%s", resp.Status, resp.Location), nil
		}},
		{name: "GET /gone", run: func(ctx context.Context) (string, error) {
			_, err := c.Get(ctx, rest.Request{Path: "/gone"})
			return "", err
		}, wantErr: rest.IsNotFound},
		{name: "GET /private/whoami", run: whoami(c, true)},
		{name: "GET /private/whoami (no auth)", run: whoami(c, false), wantErr: rest.IsUnauthorized},
	}
	if bearer != nil {
		scenarios = append(scenarios, scenario{name: "GET /private/whoami (bearer)", run: whoami(bearer, true)})
	}
	return scenarios
}

func whoami(c *rest.Client, authorize bool) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		resp, err := c.Get(ctx, rest.Request{Path: "/private/whoami", Authorize: authorize})
		if err != nil {
			return "", err
		}
		p, err := rest.As[authctx.Principal](resp)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s subject=%s scheme=%s", resp.Status, p.Subject, p.Scheme), nil
	}
}

// runScenarios runs every scenario in order; one failure does not stop the rest.
func runScenarios(ctx context.Context, scenarios []scenario) []result {
	results := make([]result, 0, len(scenarios))
	for _, s := range scenarios {
		detail, err := s.run(ctx)
		r := result{name: s.name, detail: detail, err: err}
		if s.wantErr == nil {
			r.ok = err == nil
		} else {
			r.ok = err != nil && s.wantErr(err)
		}
		results = append(results, r)
	}
	return results
}

func countFailed(results []result) int {
	n := 0
	for _, r := range results {
		if !r.ok {
			n++
		}
	}
	return n
}

func writeResults(out io.Writer, results []result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tDETAIL\tRESULT")
	for _, r := range results {
		detail := r.detail
		if r.err != nil {
			detail = r.err.Error()
		}
		// color codes go in the last column so they do not skew alignment
		outcome := okLabel.Sprint("ok")
		if !r.ok {
			outcome = failLabel.Sprint("FAIL")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.name, detail, outcome)
	}
	return w.Flush()
}

func formatCache(directives []rest.ResponseDirective) string {
	if len(directives) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(directives))
	for _, d := range directives {
		if d.Kind == rest.ResponseMaxAge {
			parts = append(parts, fmt.Sprintf("%s=%d", d.Kind, d.MaxAgeSeconds))
			continue
		}
		parts = append(parts, string(d.Kind))
	}
	return strings.Join(parts, ",")
}
