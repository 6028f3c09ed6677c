package tenant

import (
	"context"
	"errors"
)

type ctxKey struct{}

var ErrCompanyIDMissing = errors.New("company id missing from request context")

// WithCompanyID returns a context carrying the company the request acts on.
// Middleware sets it once per request; handlers read it back and pass it to
// services explicitly.
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, companyID)
}

// CompanyIDFromContext extracts the company id set by WithCompanyID.
func CompanyIDFromContext(ctx context.Context) (string, error) {
	companyID, ok := ctx.Value(ctxKey{}).(string)
	if !ok || companyID == "" {
		return "", ErrCompanyIDMissing
	}
	return companyID, nil
}
