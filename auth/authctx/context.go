// Package authctx carries the authenticated principal through a request context.
//
//	ctx = authctx.Set(ctx, authctx.Principal{Subject: "luke", Scheme: authctx.SchemeBasic})
//	p, ok := authctx.PrincipalFrom(ctx)
//
// Arbitrary claims values may be stored too and read back with Get[T].
package authctx

import (
	"context"
	"errors"
)

// Scheme names the authorization scheme a principal was authenticated with.
type Scheme string

const (
	SchemeBasic  Scheme = "basic"
	SchemeBearer Scheme = "bearer"
)

// Principal identifies the caller of an authenticated request.
type Principal struct {
	Subject string `json:"subject"`
	Scheme  Scheme `json:"scheme"`
	// Claims holds the parsed token claims for bearer principals.
	Claims any `json:"-"`
}

type contextKey struct{}

var principalKey = contextKey{}

// ErrNoPrincipal is returned when the context carries no principal.
var ErrNoPrincipal = errors.New("authctx: no principal in context")

// Set stores v in the context. v is usually a Principal.
func Set(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, principalKey, v)
}

// Get returns the stored value when it has type T.
func Get[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(principalKey).(T)
	return v, ok
}

// GetOrError is Get returning ErrNoPrincipal instead of a flag.
func GetOrError[T any](ctx context.Context) (T, error) {
	v, ok := Get[T](ctx)
	if !ok {
		var zero T
		return zero, ErrNoPrincipal
	}
	return v, nil
}

// PrincipalFrom returns the Principal stored by Set.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	return Get[Principal](ctx)
}
