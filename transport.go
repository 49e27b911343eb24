package woot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dearkafka/woot/descriptor"
	"github.com/dearkafka/woot/internal/partition"
)

// Extras the HTTP transport understands. Other extras are ignored.
const (
	// ExtraHeaders sets request headers, replacing earlier values of the same
	// key; the value is an http.Header, a map[string]string or a
	// map[string]any. The access token header is never touched.
	ExtraHeaders = "headers"
	// ExtraTimeout overrides the configured timeout; the value is a
	// time.Duration or a number of seconds.
	ExtraTimeout = "timeout"
)

// Request is one fully assembled action call.
type Request struct {
	Resource string
	Action   string
	Method   descriptor.Method
	// URL is absolute, with the query string merged in.
	URL    string
	Header http.Header
	Body   map[string]any
	// JSONEncodeBody selects JSON over form encoding for Body.
	JSONEncodeBody bool
	Timeout        time.Duration
	// Extras are the keyword arguments that matched no declared parameter.
	Extras map[string]any
}

// Endpoint identifies the action as "resource.action".
func (r *Request) Endpoint() string {
	return r.Resource + "." + r.Action
}

// Transport performs one HTTP request.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// TransportFactory opens a transport for a single asynchronous call. When the
// returned transport implements io.Closer it is closed once the call is done.
type TransportFactory func() (Transport, error)

// HTTPTransport is a Transport backed by net/http.
type HTTPTransport struct {
	client *http.Client
	logger *slog.Logger
}

// NewHTTPTransport wraps client. A nil client uses a fresh http.Client.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPTransport{client: client}
}

// WithLogger sets the logger used for ignored extras.
func (t *HTTPTransport) WithLogger(logger *slog.Logger) *HTTPTransport {
	t.logger = logger
	return t
}

// Close releases idle connections.
func (t *HTTPTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}

// Do sends req and reads the whole response. Statuses of 400 and above are
// returned as a TransportError carrying the response.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	switch req.Method {
	case descriptor.GET, descriptor.POST, descriptor.PUT, descriptor.PATCH, descriptor.DELETE:
	default:
		return nil, &TransportError{Code: CodeInvalidMethod, Err: fmt.Errorf("unsupported method %q", req.Method)}
	}

	timeout := req.Timeout
	header := req.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	for k, v := range req.Extras {
		switch k {
		case ExtraHeaders:
			mergeHeaders(header, v)
		case ExtraTimeout:
			if d, ok := asDuration(v); ok {
				timeout = d
			}
		default:
			t.log().DebugContext(ctx, "ignoring transport extra",
				slog.String("endpoint", req.Endpoint()),
				slog.String("extra", k))
		}
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, &TransportError{Code: CodeEncode, Err: err}
	}
	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, body)
	if err != nil {
		return nil, &TransportError{Code: CodeEncode, Err: err}
	}
	httpReq.Header = header
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, transportError(err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, transportError(err)
	}
	resp := &Response{
		Method:     req.Method,
		URL:        req.URL,
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Raw:        raw,
	}
	if resp.Body, err = parseBody(httpResp.Header.Get("Content-Type"), raw); err != nil {
		return nil, &TransportError{Code: CodeDecode, StatusCode: resp.StatusCode, Response: resp, Err: err}
	}
	if code := CodeForStatus(resp.StatusCode); code != "" {
		return nil, &TransportError{Code: code, StatusCode: resp.StatusCode, Response: resp}
	}
	return resp, nil
}

func (t *HTTPTransport) log() *slog.Logger {
	if t.logger == nil {
		return slog.Default()
	}
	return t.logger
}

// encodeBody serializes the body mapping as JSON or as a form. Requests
// without body values carry no body at all.
func encodeBody(req *Request) (io.Reader, string, error) {
	if len(req.Body) == 0 {
		return nil, "", nil
	}
	if req.JSONEncodeBody {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
	form := make(url.Values, len(req.Body))
	for k, v := range req.Body {
		form[k] = partition.Strings(v)
	}
	return bytes.NewBufferString(form.Encode()), "application/x-www-form-urlencoded", nil
}

func mergeHeaders(dst http.Header, v any) {
	token := http.CanonicalHeaderKey(AccessTokenHeader)
	set := func(k string, vs ...string) {
		k = http.CanonicalHeaderKey(k)
		if k == token {
			return
		}
		dst.Del(k)
		for _, s := range vs {
			dst.Add(k, s)
		}
	}
	switch h := v.(type) {
	case http.Header:
		for k, vs := range h {
			set(k, vs...)
		}
	case map[string]string:
		for k, s := range h {
			set(k, s)
		}
	case map[string]any:
		for k, s := range h {
			set(k, partition.Stringify(s))
		}
	}
}

func asDuration(v any) (time.Duration, bool) {
	switch d := v.(type) {
	case time.Duration:
		return d, true
	case int:
		return time.Duration(d) * time.Second, true
	case int64:
		return time.Duration(d) * time.Second, true
	case float64:
		return time.Duration(d * float64(time.Second)), true
	default:
		return 0, false
	}
}
