package server

import (
	"fmt"
	"time"

	"github.com/kbukum/restkit/auth/jwt"
	"github.com/kbukum/restkit/auth/password"
	"github.com/kbukum/restkit/validation"
)

// Config holds demo server configuration.
type Config struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout" validate:"gte=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout" validate:"gte=0"`
	// MaxBodyBytes caps request bodies; 0 disables the limit.
	MaxBodyBytes int64      `yaml:"max_body_bytes" mapstructure:"max_body_bytes" validate:"gte=0"`
	Auth         AuthConfig `yaml:"auth" mapstructure:"auth"`
}

// AuthConfig configures the credentials accepted by /private routes.
type AuthConfig struct {
	// Users are accepted with Basic authorization.
	Users []User `yaml:"users" mapstructure:"users" validate:"dive"`
	// JWT configures Bearer authorization. An empty secret disables it.
	JWT      jwt.Config      `yaml:"jwt" mapstructure:"jwt"`
	Password password.Config `yaml:"password" mapstructure:"password"`
}

// User is a Basic-auth account.
type User struct {
	Username string `yaml:"username" mapstructure:"username" validate:"required"`
	Password string `yaml:"password" mapstructure:"password" validate:"required,max=72"`
}

// ApplyDefaults sets default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 15 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = 10 << 20
	}
	c.Auth.Password.ApplyDefaults()
	if c.Auth.JWT.Secret != "" {
		c.Auth.JWT.ApplyDefaults()
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Auth.Password.Validate(); err != nil {
		return fmt.Errorf("server.auth.password: %w", err)
	}
	if c.Auth.JWT.Secret != "" {
		if err := c.Auth.JWT.Validate(); err != nil {
			return fmt.Errorf("server.auth.jwt: %w", err)
		}
	}
	return nil
}

// Addr returns host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
