package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/dearkafka/woot"
)

func TestHeaders(t *testing.T) {
	interceptor := Headers(HeadersConfig{
		UserAgent: "woot/test",
		Static: map[string]string{
			"X-Tenant":              "acme",
			"X-Keep":                "static",
			woot.AccessTokenHeader: "overridden",
		},
	})

	req := testRequest()
	req.Header = http.Header{}
	req.Header.Set(woot.AccessTokenHeader, "secret")
	req.Header.Set("X-Keep", "request")

	var seen http.Header
	next := func(ctx context.Context, req *woot.Request) (*woot.Response, error) {
		seen = req.Header.Clone()
		return &woot.Response{StatusCode: 200}, nil
	}
	if _, err := interceptor(context.Background(), req, next); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"User-Agent", "woot/test"},
		{"X-Tenant", "acme"},
		{"X-Keep", "request"},
		{woot.AccessTokenHeader, "secret"},
	}
	for _, tt := range tests {
		if got := seen.Get(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestHeaders_NilHeader(t *testing.T) {
	interceptor := Headers(HeadersConfig{UserAgent: "woot/test"})
	req := testRequest()

	next := func(ctx context.Context, req *woot.Request) (*woot.Response, error) {
		if req.Header.Get("User-Agent") != "woot/test" {
			t.Errorf("User-Agent = %q", req.Header.Get("User-Agent"))
		}
		return &woot.Response{StatusCode: 200}, nil
	}
	if _, err := interceptor(context.Background(), req, next); err != nil {
		t.Fatal(err)
	}
}

func TestHeaders_WithClient(t *testing.T) {
	var got string
	transport := woot.TransportFunc(func(ctx context.Context, req *woot.Request) (*woot.Response, error) {
		got = req.Header.Get("User-Agent")
		return &woot.Response{StatusCode: 200}, nil
	})
	c := woot.New(woot.NewConfig("https://chat.example.com", "secret").
		WithTransport(transport).
		WithInterceptor(Logging(nil)).
		WithInterceptor(Headers(HeadersConfig{UserAgent: "woot/test"})))

	if _, err := c.Call(context.Background(), "profile", "get", woot.Args{"account_id": 1}); err != nil {
		t.Fatal(err)
	}
	if got != "woot/test" {
		t.Errorf("User-Agent = %q", got)
	}
}
