package middleware

import "context"

type contextKey string

const (
	clientIPKey    contextKey = "client_ip"
	requestIDKey   contextKey = "request_id"
	requestInfoKey contextKey = "request_info"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// requestInfo is placed in the context by the outermost middleware so that
// values resolved further down the chain are visible once the request ends.
type requestInfo struct {
	clientIP string
}

func withRequestInfo(ctx context.Context) (context.Context, *requestInfo) {
	info := &requestInfo{}
	return context.WithValue(ctx, requestInfoKey, info), info
}

func requestInfoFromContext(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey).(*requestInfo)
	return info
}

// ClientIPFromContext returns the client IP stored by TrustedProxy.
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// RequestIDFromContext returns the id stored by RequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
