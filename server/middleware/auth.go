package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/restkit/auth"
	"github.com/kbukum/restkit/auth/authctx"
	apperrors "github.com/kbukum/restkit/errors"
)

// AuthConfig configures Authenticate. A nil verifier disables its scheme.
type AuthConfig struct {
	Credentials auth.CredentialVerifier
	Tokens      auth.TokenValidator
	// Realm is advertised in WWW-Authenticate on failure (default "restkit").
	Realm string
}

// Authenticate accepts "Basic" and "Bearer" Authorization headers. On success
// the authctx.Principal is stored in the request context; otherwise the
// request is aborted with 401.
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	if cfg.Realm == "" {
		cfg.Realm = "restkit"
	}
	challenge := `Basic realm="` + cfg.Realm + `"`

	return func(c *gin.Context) {
		principal, err := authenticate(cfg, c.GetHeader("Authorization"))
		if err != nil {
			c.Header("WWW-Authenticate", challenge)
			AbortWithError(c, err)
			return
		}
		c.Set("principal", principal)
		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), principal))
		c.Next()
	}
}

func authenticate(cfg AuthConfig, header string) (authctx.Principal, error) {
	if header == "" {
		return authctx.Principal{}, apperrors.Unauthorized("Authorization header required")
	}
	scheme, credentials, ok := strings.Cut(header, " ")
	if !ok || credentials == "" {
		return authctx.Principal{}, apperrors.Unauthorized("Invalid authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "basic":
		if cfg.Credentials == nil {
			break
		}
		raw, err := base64.StdEncoding.DecodeString(credentials)
		if err != nil {
			return authctx.Principal{}, apperrors.Unauthorized("Invalid basic credentials").WithCause(err)
		}
		username, password, ok := strings.Cut(string(raw), ":")
		if !ok {
			return authctx.Principal{}, apperrors.Unauthorized("Invalid basic credentials")
		}
		if err := cfg.Credentials.VerifyCredentials(username, password); err != nil {
			return authctx.Principal{}, err
		}
		return authctx.Principal{Subject: username, Scheme: authctx.SchemeBasic}, nil

	case "bearer":
		if cfg.Tokens == nil {
			break
		}
		claims, err := cfg.Tokens.ValidateToken(credentials)
		if err != nil {
			return authctx.Principal{}, err
		}
		return authctx.Principal{Subject: subjectOf(claims), Scheme: authctx.SchemeBearer, Claims: claims}, nil
	}
	return authctx.Principal{}, apperrors.Unauthorized("Unsupported authorization scheme").WithDetail("scheme", scheme)
}

// subjectOf reads the "sub" claim when the claims type exposes one.
func subjectOf(claims any) string {
	if s, ok := claims.(interface{ GetSubject() (string, error) }); ok {
		if sub, err := s.GetSubject(); err == nil {
			return sub
		}
	}
	return ""
}
