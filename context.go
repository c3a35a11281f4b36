package feedgate

import "context"

type clientIPContextKey struct{}

// WithClientIP attaches the caller's IP address to ctx. It shows up in
// audit events for the operations on that context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPContextKey{}, ip)
}

func clientIPFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(clientIPContextKey{}).(string)
	return ip
}
