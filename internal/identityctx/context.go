package identityctx

import "context"

type ctxKey string

const (
	keyEmail ctxKey = "identity_email"
	keyName  ctxKey = "identity_name"
)

// WithEmail stores the authenticated email for ledger partitioning.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, keyEmail, email)
}

// Email returns the authenticated email if present; empty means guest.
func Email(ctx context.Context) string {
	v, _ := ctx.Value(keyEmail).(string)
	return v
}

// WithName stores the display name from the session token.
func WithName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyName, name)
}

// Name returns the display name if present.
func Name(ctx context.Context) string {
	v, _ := ctx.Value(keyName).(string)
	return v
}
