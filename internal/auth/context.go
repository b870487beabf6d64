package auth

import "context"

type principalKey struct{}

// WithPrincipal stores the authenticated claims in context.
func WithPrincipal(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, principalKey{}, c)
}

// PrincipalFrom retrieves the authenticated claims from context (if any).
func PrincipalFrom(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(principalKey{}).(Claims)
	return c, ok
}
