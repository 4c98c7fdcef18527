package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotFound is returned by Require when a secret is missing or blank.
var ErrNotFound = errors.New("secret not found")

// Provider looks up a secret by name.
// Implementations must be safe for concurrent use.
type Provider interface {
	Lookup(ctx context.Context, name string) (string, bool)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, name string) (string, bool)

// Lookup implements Provider.
func (f ProviderFunc) Lookup(ctx context.Context, name string) (string, bool) {
	return f(ctx, name)
}

// Env returns a Provider backed by the process environment.
func Env() Provider {
	return ProviderFunc(func(_ context.Context, name string) (string, bool) {
		return os.LookupEnv(name)
	})
}

// Static is an immutable, map-backed Provider.
type Static map[string]string

// Lookup implements Provider.
func (s Static) Lookup(_ context.Context, name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// Require resolves name and treats blank values as missing.
func Require(ctx context.Context, p Provider, name string) (string, error) {
	if p == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	v, ok := p.Lookup(ctx, name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return v, nil
}
