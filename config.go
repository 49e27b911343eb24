package woot

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dearkafka/woot/chatwoot"
	"github.com/dearkafka/woot/descriptor"
)

const (
	// DefaultTimeout applies to every request unless overridden.
	DefaultTimeout = 60 * time.Second

	// AccessTokenHeader carries the access key on every request.
	AccessTokenHeader = "api_access_token"
)

// Config holds everything a Client or AsyncClient is built from. Create one
// with NewConfig and adjust it with the With methods:
//
//	cfg := woot.NewConfig("https://chat.example.com", key).
//	    WithTimeout(10 * time.Second).
//	    WithLogger(logger)
//	client := woot.New(cfg)
type Config struct {
	baseURL        string
	accessKey      string
	timeout        time.Duration
	jsonEncodeBody bool
	validate       bool
	logger         *slog.Logger
	httpClient     *http.Client
	transport      Transport
	factory        TransportFactory
	interceptors   []Interceptor
	registry       *descriptor.Registry
}

// NewConfig returns a configuration for the API at baseURL authenticated with
// accessKey. Requests time out after DefaultTimeout and bodies are sent as JSON.
func NewConfig(baseURL, accessKey string) *Config {
	return &Config{
		baseURL:        baseURL,
		accessKey:      accessKey,
		timeout:        DefaultTimeout,
		jsonEncodeBody: true,
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.timeout = d
	return c
}

// WithJSONEncodeBody selects JSON (true) or form (false) encoding of bodies.
func (c *Config) WithJSONEncodeBody(enabled bool) *Config {
	c.jsonEncodeBody = enabled
	return c
}

// WithValidation checks query and body arguments against the schema rules
// before dispatch.
func (c *Config) WithValidation() *Config {
	c.validate = true
	return c
}

// WithLogger sets the logger. If not set, slog.Default() is used.
func (c *Config) WithLogger(logger *slog.Logger) *Config {
	c.logger = logger
	return c
}

// WithHTTPClient sets the http.Client used by the default HTTP transport.
func (c *Config) WithHTTPClient(client *http.Client) *Config {
	c.httpClient = client
	return c
}

// WithTransport replaces the HTTP transport. Asynchronous clients use it for
// every call unless a factory is also set.
func (c *Config) WithTransport(t Transport) *Config {
	c.transport = t
	return c
}

// WithTransportFactory sets how asynchronous clients open a transport for
// each call.
func (c *Config) WithTransportFactory(f TransportFactory) *Config {
	c.factory = f
	return c
}

// WithInterceptor adds a transport interceptor. Interceptors run in the order
// they were added, the first one outermost.
func (c *Config) WithInterceptor(i Interceptor) *Config {
	c.interceptors = append(c.interceptors, i)
	return c
}

// WithRegistry replaces the resource tables. The default is chatwoot.Registry.
func (c *Config) WithRegistry(r *descriptor.Registry) *Config {
	c.registry = r
	return c
}

// BaseURL returns the API root.
func (c *Config) BaseURL() string { return c.baseURL }

// Timeout returns the per-request timeout.
func (c *Config) Timeout() time.Duration { return c.timeout }

func (c *Config) getLogger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

func (c *Config) getRegistry() *descriptor.Registry {
	if c.registry == nil {
		return chatwoot.Registry
	}
	return c.registry
}

// header returns the fixed headers sent with every request.
func (c *Config) header() http.Header {
	h := make(http.Header)
	h.Set(AccessTokenHeader, c.accessKey)
	return h
}

// syncTransport is the transport shared by every action of a Client.
func (c *Config) syncTransport() Transport {
	t := c.transport
	if t == nil {
		client := c.httpClient
		if client == nil {
			client = &http.Client{}
		}
		t = NewHTTPTransport(client).WithLogger(c.logger)
	}
	return chainInterceptors(c.interceptors, t)
}

// transportFactory opens the per-call transport of an AsyncClient.
func (c *Config) transportFactory() TransportFactory {
	switch {
	case c.factory != nil:
		return c.factory
	case c.transport != nil:
		t := c.transport
		return func() (Transport, error) { return t, nil }
	default:
		base := c.httpClient
		logger := c.logger
		return func() (Transport, error) {
			client := &http.Client{}
			if base != nil {
				cp := *base
				client = &cp
			}
			if client.Transport == nil {
				client.Transport = http.DefaultTransport.(*http.Transport).Clone()
			}
			return NewHTTPTransport(client).WithLogger(logger), nil
		}
	}
}
