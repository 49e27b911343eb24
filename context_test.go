package woot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestActionFromContext(t *testing.T) {
	t.Run("with call info", func(t *testing.T) {
		ctx := newContext(context.Background(), &Request{Resource: "contacts", Action: "get"})
		resource, action, ok := ActionFromContext(ctx)
		if !ok || resource != "contacts" || action != "get" {
			t.Errorf("ActionFromContext() = %q, %q, %v", resource, action, ok)
		}
	})

	t.Run("without call info", func(t *testing.T) {
		if _, _, ok := ActionFromContext(context.Background()); ok {
			t.Error("expected ok=false for a bare context")
		}
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestActionFromContext_RoundTripper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var mu sync.Mutex
	var seen []string
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		resource, action, _ := ActionFromContext(r.Context())
		mu.Lock()
		seen = append(seen, resource+"."+action)
		mu.Unlock()
		return http.DefaultTransport.RoundTrip(r)
	})}
	cfg := NewConfig(srv.URL, "secret").WithRegistry(testRegistry()).WithHTTPClient(client)

	if _, err := New(cfg).Call(context.Background(), "things", "list"); err != nil {
		t.Fatal(err)
	}
	if _, err := NewAsync(cfg).Call(context.Background(), "things", "get", KV("id", 1)).Await(context.Background()); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[0] != "things.list" || seen[1] != "things.get" {
		t.Errorf("seen = %v", seen)
	}
}
