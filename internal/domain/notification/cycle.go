// internal/domain/notification/cycle.go
package notification

import "context"

type contextKey string

const cycleIDKey contextKey = "cycle_id"

// WithCycleID annotates context with the identifier of the current poll cycle.
func WithCycleID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, cycleIDKey, id)
}

// CycleIDFromContext returns the poll cycle identifier if present.
func CycleIDFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(cycleIDKey).(string); ok && id != "" {
		return id, true
	}
	return "", false
}
