package woot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dearkafka/woot/descriptor"
	"github.com/dearkafka/woot/internal/partition"
	"github.com/dearkafka/woot/internal/signature"
	"github.com/dearkafka/woot/internal/urltemplate"
)

// bindState tracks an action through binding. It only moves forward; binding
// again means building a new resource.
type bindState uint8

const (
	unbound bindState = iota
	signatureAttached
	bound
)

func (s bindState) String() string {
	switch s {
	case unbound:
		return "unbound"
	case signatureAttached:
		return "signature-attached"
	case bound:
		return "bound"
	default:
		return "invalid"
	}
}

// dispatchFunc sends an assembled request.
type dispatchFunc func(ctx context.Context, req *Request) (*Response, error)

// BoundAction is the callable form of one action of one resource.
type BoundAction struct {
	resource    string
	base        string
	appendSlash bool
	desc        descriptor.Action
	sig         signature.Signature
	state       bindState
	cfg         *Config
	logger      *slog.Logger
	dispatch    dispatchFunc
}

// bindAction synthesizes the signature of desc and installs dispatch.
func bindAction(res descriptor.Resource, desc descriptor.Action, cfg *Config, dispatch dispatchFunc) *BoundAction {
	a := &BoundAction{
		resource:    res.AttrName(),
		base:        cfg.baseURL,
		appendSlash: res.AppendSlash,
		desc:        desc,
		cfg:         cfg,
		logger:      cfg.getLogger(),
	}
	a.sig = signature.Synthesize(desc.Name, desc.PathParams(), desc.Query, desc.Body)
	a.state = signatureAttached
	a.dispatch = dispatch
	a.state = bound
	return a
}

// Name returns the action name.
func (a *BoundAction) Name() string { return a.desc.Name }

// Resource returns the attribute name of the owning resource.
func (a *BoundAction) Resource() string { return a.resource }

// Descriptor returns the static declaration of the action.
func (a *BoundAction) Descriptor() descriptor.Action { return a.desc }

// Bound reports whether the action finished binding.
func (a *BoundAction) Bound() bool { return a.state == bound }

// Doc describes the keyword parameters of the action.
func (a *BoundAction) Doc() string { return a.sig.Doc() }

// Param describes one keyword parameter.
type Param struct {
	Name     string
	Kind     string // "path", "query" or "body"
	Type     string
	Position int
	Required bool
}

// Params lists the keyword parameters in order: path, query, body.
func (a *BoundAction) Params() []Param {
	params := make([]Param, len(a.sig.Params))
	for i, p := range a.sig.Params {
		params[i] = Param{
			Name:     p.Name,
			Kind:     p.Kind.String(),
			Type:     p.Type,
			Position: p.Position,
			Required: p.Required,
		}
	}
	return params
}

// Call invokes the action and blocks until the transport returns.
//
// Every argument must be keyword arguments: Args, map[string]any or Arg.
// Anything else is rejected with an InvocationError.
//
//	res, err := contacts.Action("get").Call(ctx, woot.Args{"account_id": 1, "id": 7})
func (a *BoundAction) Call(ctx context.Context, args ...any) (*Response, error) {
	req, err := a.Request(args...)
	if err != nil {
		return nil, err
	}
	return a.dispatch(newContext(ctx, req), req)
}

// Request assembles the request a call with args would send, without sending it.
func (a *BoundAction) Request(args ...any) (*Request, error) {
	kwargs, pos, val, ok := collectArgs(args)
	if !ok {
		return nil, &InvocationError{Resource: a.resource, Action: a.desc.Name, Position: pos, Value: val}
	}

	call := partition.Partition(kwargs, a.sig)

	if a.cfg.validate {
		if failures := validateCall(a.sig, call); failures != nil {
			return nil, &ValidationError{Resource: a.resource, Action: a.desc.Name, Fields: failures}
		}
	}

	path, err := urltemplate.Render(a.desc.URL, call.Path)
	if err != nil {
		return nil, &URLMatchError{
			Resource: a.resource,
			Action:   a.desc.Name,
			URL:      a.desc.URL,
			Missing:  call.Missing,
			Err:      err,
		}
	}
	full := urltemplate.Join(a.base, path, a.appendSlash)
	full, err = urltemplate.MergeQuery(full, call.QueryValues())
	if err != nil {
		return nil, &URLMatchError{Resource: a.resource, Action: a.desc.Name, URL: a.desc.URL, Err: err}
	}

	req := &Request{
		Resource:       a.resource,
		Action:         a.desc.Name,
		Method:         a.desc.Method,
		URL:            full,
		Header:         a.cfg.header(),
		Body:           call.Body,
		JSONEncodeBody: a.cfg.jsonEncodeBody,
		Timeout:        a.cfg.timeout,
		Extras:         call.Extras,
	}
	a.logger.Debug("dispatching action",
		slog.String("endpoint", req.Endpoint()),
		slog.String("method", string(req.Method)),
		slog.String("url", urltemplate.Readable(req.URL)),
		slog.Int("body_fields", len(req.Body)),
		slog.Int("extras", len(req.Extras)))
	return req, nil
}

// IsURLMatch reports whether err is a URLMatchError.
func IsURLMatch(err error) bool { return errors.Is(err, ErrURLMatch) }

// IsInvocation reports whether err is an InvocationError.
func IsInvocation(err error) bool { return errors.Is(err, ErrInvocation) }
