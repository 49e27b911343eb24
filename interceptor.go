package woot

import "context"

// Interceptor wraps transport dispatch. It may inspect or modify the request,
// short-circuit with its own response or error, or observe the result of next.
//
//	func timing(ctx context.Context, req *woot.Request, next woot.TransportFunc) (*woot.Response, error) {
//	    start := time.Now()
//	    res, err := next(ctx, req)
//	    log.Printf("%s took %v", req.Endpoint(), time.Since(start))
//	    return res, err
//	}
type Interceptor func(ctx context.Context, req *Request, next TransportFunc) (*Response, error)

// chainInterceptors wraps t so that interceptors run before it. The first
// interceptor is the outermost.
func chainInterceptors(interceptors []Interceptor, t Transport) Transport {
	if len(interceptors) == 0 {
		return t
	}
	next := TransportFunc(t.Do)
	for i := len(interceptors) - 1; i >= 0; i-- {
		current, inner := interceptors[i], next
		next = func(ctx context.Context, req *Request) (*Response, error) {
			return current(ctx, req, inner)
		}
	}
	return next
}
