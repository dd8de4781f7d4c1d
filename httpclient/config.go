package httpclient

import (
	"time"

	"github.com/kbukum/restkit/validation"
)

const (
	defaultTimeout = 30 * time.Second
	defaultName    = "http"
)

// Config configures the net/http transport adapter.
type Config struct {
	// Name identifies the adapter in logs, spans and health reports.
	Name string `yaml:"name" mapstructure:"name"`

	// Timeout bounds a whole exchange on the underlying http.Client. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// MaxIdleConnsPerHost is passed to the cloned http.Transport when positive.
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host" mapstructure:"max_idle_conns_per_host" validate:"gte=0"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
