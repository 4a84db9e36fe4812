package httpx

import "context"

type ctxKey string

const ctxKeySubject ctxKey = "subject"

// WithSubject records the authenticated user id for request-scoped helpers
// such as the per-user rate limiter.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ctxKeySubject, subject)
}

// SubjectFromContext returns the authenticated user id or "".
func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(ctxKeySubject).(string)
	return s
}
