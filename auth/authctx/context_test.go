package authctx

import (
	"context"
	"testing"
)

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := Set(context.Background(), Principal{Subject: "luke", Scheme: SchemeBasic})

	p, ok := PrincipalFrom(ctx)
	if !ok {
		t.Fatal("expected principal in context")
	}
	if p.Subject != "luke" || p.Scheme != SchemeBasic {
		t.Errorf("unexpected principal %+v", p)
	}
}

func TestGet_WrongType(t *testing.T) {
	ctx := Set(context.Background(), "not a principal")
	if _, ok := PrincipalFrom(ctx); ok {
		t.Error("expected no principal for wrong type")
	}
	if s, ok := Get[string](ctx); !ok || s != "not a principal" {
		t.Errorf("expected raw string value, got %q", s)
	}
}

func TestGetOrError(t *testing.T) {
	if _, err := GetOrError[Principal](context.Background()); err != ErrNoPrincipal {
		t.Errorf("expected ErrNoPrincipal, got %v", err)
	}
}
