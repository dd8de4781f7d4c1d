package server

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/restkit/auth/jwt"
	"github.com/kbukum/restkit/auth/password"
	"github.com/kbukum/restkit/server/middleware"
)

// Credentials holds the basic-auth store and the optional token service.
type Credentials struct {
	Store  *password.Store
	Tokens *jwt.Service[*jwt.Claims]
}

// NewCredentials hashes the configured users and builds the token service
// when a JWT secret is set.
func NewCredentials(cfg AuthConfig) (*Credentials, error) {
	store := password.NewStore(password.NewHasher(cfg.Password))
	for _, u := range cfg.Users {
		if err := store.Add(u.Username, u.Password); err != nil {
			return nil, err
		}
	}
	creds := &Credentials{Store: store}
	if cfg.JWT.Secret != "" {
		jwtCfg := cfg.JWT
		svc, err := jwt.NewService(&jwtCfg, func() *jwt.Claims { return &jwt.Claims{} })
		if err != nil {
			return nil, err
		}
		creds.Tokens = svc
	}
	return creds, nil
}

// IssueToken signs an access token for subject. It returns an empty token
// when bearer authorization is disabled.
func (c *Credentials) IssueToken(subject string) (string, error) {
	if c.Tokens == nil {
		return "", nil
	}
	return c.Tokens.GenerateAccess(jwt.NewClaims(subject))
}

// Middleware returns the Gin authentication middleware for these credentials.
func (c *Credentials) Middleware() gin.HandlerFunc {
	cfg := middleware.AuthConfig{Credentials: c.Store}
	if c.Tokens != nil {
		cfg.Tokens = c.Tokens.Validator()
	}
	return middleware.Authenticate(cfg)
}
