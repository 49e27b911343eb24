package woot

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dearkafka/woot/descriptor"
)

// AsyncClient is the asynchronous facade. It shares the resource tables and
// the binding rules of Client, but each call returns a Future and runs on its
// own goroutine with a transport opened for that call alone.
type AsyncClient struct {
	cfg       *Config
	resources map[string]*AsyncResource
	order     []string
}

// NewAsync binds every resource of the configured registry for asynchronous use.
func NewAsync(cfg *Config) *AsyncClient {
	dispatch := perCallDispatch(cfg)
	c := &AsyncClient{cfg: cfg, resources: make(map[string]*AsyncResource)}
	for _, desc := range cfg.getRegistry().Resources() {
		r := newAsyncResource(desc, cfg, dispatch)
		c.resources[r.Name()] = r
		c.order = append(c.order, r.Name())
	}
	return c
}

// perCallDispatch opens a transport, sends one request through the
// interceptors and releases the transport again.
func perCallDispatch(cfg *Config) dispatchFunc {
	open := cfg.transportFactory()
	logger := cfg.getLogger()
	return func(ctx context.Context, req *Request) (*Response, error) {
		t, err := open()
		if err != nil {
			return nil, &TransportError{Code: CodeConnection, Err: err}
		}
		if closer, ok := t.(io.Closer); ok {
			defer func() {
				if err := closer.Close(); err != nil {
					logger.WarnContext(ctx, "closing transport",
						slog.String("endpoint", req.Endpoint()),
						slog.Any("error", err))
				}
			}()
		}
		return chainInterceptors(cfg.interceptors, t).Do(ctx, req)
	}
}

// Resource returns the resource with attribute name name, or nil.
func (c *AsyncClient) Resource(name string) *AsyncResource {
	return c.resources[name]
}

// Resources returns the bound resources in registration order.
func (c *AsyncClient) Resources() []*AsyncResource {
	out := make([]*AsyncResource, len(c.order))
	for i, name := range c.order {
		out[i] = c.resources[name]
	}
	return out
}

// Call starts resource.action with args.
func (c *AsyncClient) Call(ctx context.Context, resource, action string, args ...any) *Future {
	r, ok := c.resources[resource]
	if !ok {
		return failed(resource, action, fmt.Errorf("%w: %s", ErrUnknownResource, resource))
	}
	return r.Call(ctx, action, args...)
}

// Describe lists every resource and action; the output matches Client.Describe.
func (c *AsyncClient) Describe() string {
	return describeAll(c.cfg.getRegistry().Resources())
}

func (c *AsyncClient) String() string { return c.Describe() }

// AsyncResource is a bound resource of an AsyncClient.
type AsyncResource struct {
	desc    descriptor.Resource
	actions map[string]*AsyncAction
}

func newAsyncResource(desc descriptor.Resource, cfg *Config, dispatch dispatchFunc) *AsyncResource {
	bound, _ := bindResource(desc, cfg, dispatch)
	actions := make(map[string]*AsyncAction, len(bound))
	for name, a := range bound {
		actions[name] = &AsyncAction{BoundAction: a}
	}
	return &AsyncResource{desc: desc, actions: actions}
}

// Name returns the attribute name.
func (r *AsyncResource) Name() string { return r.desc.AttrName() }

// Descriptor returns the static declaration of the resource.
func (r *AsyncResource) Descriptor() descriptor.Resource { return r.desc }

// Actions returns the action names in declaration order.
func (r *AsyncResource) Actions() []string { return r.desc.ActionNames() }

// Action returns the action called name, or nil.
func (r *AsyncResource) Action(name string) *AsyncAction {
	return r.actions[name]
}

// Call starts the action called name.
func (r *AsyncResource) Call(ctx context.Context, action string, args ...any) *Future {
	a, ok := r.actions[action]
	if !ok {
		return failed(r.Name(), action, fmt.Errorf("%w: %s.%s", ErrUnknownAction, r.Name(), action))
	}
	return a.Call(ctx, args...)
}

// Describe lists the actions of the resource.
func (r *AsyncResource) Describe() string {
	return describeResource(r.desc)
}

// AsyncAction is a BoundAction whose calls return a Future.
type AsyncAction struct {
	*BoundAction
}

// Call assembles the request immediately and sends it on a new goroutine.
// Argument errors are reported through the returned Future.
func (a *AsyncAction) Call(ctx context.Context, args ...any) *Future {
	req, err := a.Request(args...)
	if err != nil {
		return failed(a.resource, a.desc.Name, err)
	}
	f := newFuture(a.resource, a.desc.Name)
	go func() {
		res, err := a.dispatch(newContext(ctx, req), req)
		f.resolve(res, err)
	}()
	return f
}

// Future is the pending result of an asynchronous call.
type Future struct {
	Resource string
	Action   string

	done chan struct{}
	res  *Response
	err  error
}

func newFuture(resource, action string) *Future {
	return &Future{Resource: resource, Action: action, done: make(chan struct{})}
}

func failed(resource, action string, err error) *Future {
	f := newFuture(resource, action)
	f.resolve(nil, err)
	return f
}

func (f *Future) resolve(res *Response, err error) {
	f.res, f.err = res, err
	close(f.done)
}

// Done is closed once the result is available.
func (f *Future) Done() <-chan struct{} { return f.done }

// Await waits for the result or for ctx to end. Ending ctx stops the wait,
// not the call; cancel the context passed to Call for that.
func (f *Future) Await(ctx context.Context) (*Response, error) {
	select {
	case <-f.done:
		return f.res, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// AwaitAll waits for every future and returns the responses in order. It
// returns the first error encountered.
func AwaitAll(ctx context.Context, futures ...*Future) ([]*Response, error) {
	out := make([]*Response, len(futures))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range futures {
		g.Go(func() error {
			res, err := f.Await(gctx)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", f.Resource, f.Action, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
