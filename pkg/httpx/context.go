package httpx

import (
	"context"

	"github.com/aussiebroadwan/staffdb/pkg/jwtx"
)

type ctxKey string

const (
	ctxKeySubject ctxKey = "subject"
	ctxKeyClaims  ctxKey = "claims"
)

// WithClaims stores verified token claims on the context.
func WithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeySubject, c.Subject)
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// SubjectFromContext returns the authenticated subject, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ctxKeySubject).(string)
	return sub, ok && sub != ""
}

// ClaimsFromContext returns the verified claims placed by AuthnMiddleware.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}
