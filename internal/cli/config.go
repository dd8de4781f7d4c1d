package cli

import (
	"fmt"
	"time"

	"github.com/kbukum/restkit/config"
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/httpclient/rest"
	"github.com/kbukum/restkit/observability"
	"github.com/kbukum/restkit/server"
	"github.com/kbukum/restkit/validation"
)

// Authorization schemes accepted in client.auth.type.
const (
	AuthNone   = "none"
	AuthBasic  = "basic"
	AuthBearer = "bearer"
)

// Config is the restkit binary configuration, loaded from restkit.yml,
// .env and RESTKIT_* environment variables.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Client  ClientConfig  `yaml:"client" mapstructure:"client"`
	Server  server.Config `yaml:"server" mapstructure:"server"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

// ClientConfig configures the REST client used by `restkit demo`.
type ClientConfig struct {
	// BaseURL targets an external server. Empty runs the demo server in process.
	BaseURL string            `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`
	HTTP    httpclient.Config `yaml:"http" mapstructure:"http"`
	Auth    AuthConfig        `yaml:"auth" mapstructure:"auth"`
}

// AuthConfig selects the client Authorization.
type AuthConfig struct {
	Type     string `yaml:"type" mapstructure:"type"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Token    string `yaml:"token" mapstructure:"token"`
}

// TracingConfig enables OTLP export when Endpoint is set.
type TracingConfig struct {
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure       bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	MetricInterval time.Duration `yaml:"metric_interval" mapstructure:"metric_interval" validate:"gte=0"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Client.HTTP.ApplyDefaults()
	if c.Client.Auth.Type == "" {
		c.Client.Auth.Type = AuthBasic
	}
	if c.Client.Auth.Type == AuthBasic && c.Client.Auth.Username == "" && c.Client.Auth.Password == "" {
		c.Client.Auth.Username = "luke"
		c.Client.Auth.Password = "kaalim"
	}
	if len(c.Server.Auth.Users) == 0 {
		c.Server.Auth.Users = []server.User{{Username: "luke", Password: "kaalim"}}
	}
	c.Server.ApplyDefaults()
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = 1.0
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(&c.Client); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	if err := c.Client.Auth.Validate(); err != nil {
		return fmt.Errorf("client.auth: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return validation.Validate(&c.Tracing)
}

// Validate checks the scheme name and, for basic, the username. An empty
// bearer token is allowed: the in-process demo server issues one.
func (a *AuthConfig) Validate() error {
	v := validation.New().OneOf("type", a.Type, []string{AuthNone, AuthBasic, AuthBearer})
	if a.Type == AuthBasic {
		v.Required("username", a.Username)
	}
	return v.Err()
}

// Authorization converts the config into a rest.Authorization.
func (a *AuthConfig) Authorization() rest.Authorization {
	switch a.Type {
	case AuthBasic:
		return rest.BasicAuth(a.Username, a.Password)
	case AuthBearer:
		return rest.BearerAuth(a.Token)
	default:
		return rest.NoAuth()
	}
}

// TracerConfig maps the tracing section onto the observability tracer config.
func (c *Config) TracerConfig() observability.TracerConfig {
	return observability.TracerConfig{
		ServiceName:    c.Name,
		ServiceVersion: c.Version,
		Environment:    c.Environment,
		Endpoint:       c.Tracing.Endpoint,
		Insecure:       c.Tracing.Insecure,
		SampleRate:     c.Tracing.SampleRate,
	}
}

// MeterConfig maps the tracing section onto the observability meter config.
func (c *Config) MeterConfig() *observability.MeterConfig {
	return &observability.MeterConfig{
		ServiceName:    c.Name,
		ServiceVersion: c.Version,
		Environment:    c.Environment,
		Endpoint:       c.Tracing.Endpoint,
		Insecure:       c.Tracing.Insecure,
		Interval:       c.Tracing.MetricInterval,
	}
}
