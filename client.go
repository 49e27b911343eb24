package woot

import (
	"context"
	"fmt"
	"log/slog"
)

// Client is the synchronous facade: every registered resource bound to one
// shared transport.
//
//	client := woot.New(woot.NewConfig("https://chat.example.com", key))
//	res, err := client.Call(ctx, "contacts", "list", woot.Args{"account_id": 1, "page": 2})
type Client struct {
	cfg       *Config
	resources map[string]*Resource
	order     []string
}

// New binds every resource of the configured registry.
func New(cfg *Config) *Client {
	t := cfg.syncTransport()
	c := &Client{cfg: cfg, resources: make(map[string]*Resource)}
	for _, desc := range cfg.getRegistry().Resources() {
		r := newResource(desc, cfg, t)
		c.resources[r.Name()] = r
		c.order = append(c.order, r.Name())
	}
	cfg.getLogger().Debug("client ready",
		slog.String("base_url", cfg.baseURL),
		slog.Int("resources", len(c.order)))
	return c
}

// Resource returns the resource with attribute name name, or nil.
func (c *Client) Resource(name string) *Resource {
	return c.resources[name]
}

// Resources returns the bound resources in registration order.
func (c *Client) Resources() []*Resource {
	out := make([]*Resource, len(c.order))
	for i, name := range c.order {
		out[i] = c.resources[name]
	}
	return out
}

// Call invokes resource.action with args.
func (c *Client) Call(ctx context.Context, resource, action string, args ...any) (*Response, error) {
	r, ok := c.resources[resource]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	return r.Call(ctx, action, args...)
}

// Describe lists every resource and action with its method and URL.
func (c *Client) Describe() string {
	return describeAll(c.cfg.getRegistry().Resources())
}

func (c *Client) String() string { return c.Describe() }
