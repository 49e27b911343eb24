package woot

import "context"

type contextKey struct {
	name string
}

var callInfoKey = &contextKey{"call_info"}

// CallInfo identifies the action a request belongs to.
type CallInfo struct {
	Resource string
	Action   string
}

// ActionFromContext returns the resource and action of the call whose
// context ctx is. Transports, interceptors and the http.RoundTripper of
// an HTTPTransport all see it.
func ActionFromContext(ctx context.Context) (resource, action string, ok bool) {
	if info, ok := ctx.Value(callInfoKey).(*CallInfo); ok {
		return info.Resource, info.Action, true
	}
	return "", "", false
}

func newContext(ctx context.Context, req *Request) context.Context {
	return context.WithValue(ctx, callInfoKey, &CallInfo{Resource: req.Resource, Action: req.Action})
}
