package woot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// countingTransport counts how often it is opened and closed.
type countingTransport struct {
	rec    *recorder
	closed *atomic.Int32
}

func (c *countingTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	return c.rec.Do(ctx, req)
}

func (c *countingTransport) Close() error {
	c.closed.Add(1)
	return nil
}

func TestAsyncClient_TransportPerCall(t *testing.T) {
	rec := &recorder{}
	var opened, closed atomic.Int32
	cfg := NewConfig("https://api.example.com", "secret").
		WithRegistry(testRegistry()).
		WithTransportFactory(func() (Transport, error) {
			opened.Add(1)
			return &countingTransport{rec: rec, closed: &closed}, nil
		})
	c := NewAsync(cfg)

	ctx := context.Background()
	futures := []*Future{
		c.Call(ctx, "things", "get", Args{"id": 1}),
		c.Call(ctx, "things", "get", Args{"id": 2}),
		c.Resource("things").Action("list").Call(ctx, Args{"page": 3}),
	}
	res, err := AwaitAll(ctx, futures...)
	if err != nil {
		t.Fatalf("AwaitAll() error = %v", err)
	}
	wantURLs := []string{
		"https://api.example.com/things/1",
		"https://api.example.com/things/2",
		"https://api.example.com/things?page=3",
	}
	for i, r := range res {
		if r.URL != wantURLs[i] {
			t.Errorf("response %d URL = %q, want %q", i, r.URL, wantURLs[i])
		}
	}
	if opened.Load() != 3 || closed.Load() != 3 {
		t.Errorf("opened %d, closed %d transports; want 3 and 3", opened.Load(), closed.Load())
	}
}

func TestAsyncClient_ArgumentErrorsSkipTransport(t *testing.T) {
	var opened atomic.Int32
	c := NewAsync(NewConfig("https://api.example.com", "secret").
		WithRegistry(testRegistry()).
		WithTransportFactory(func() (Transport, error) {
			opened.Add(1)
			return &recorder{}, nil
		}))

	ctx := context.Background()
	tests := []struct {
		name   string
		future *Future
		want   error
	}{
		{"positional", c.Resource("things").Action("get").Call(ctx, 9), ErrInvocation},
		{"missing path", c.Resource("things").Action("get").Call(ctx), ErrURLMatch},
		{"unknown resource", c.Call(ctx, "nope", "get"), ErrUnknownResource},
		{"unknown action", c.Resource("things").Call(ctx, "nope"), ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			select {
			case <-tt.future.Done():
			default:
				t.Fatal("future not resolved immediately")
			}
			if _, err := tt.future.Await(ctx); !errors.Is(err, tt.want) {
				t.Errorf("Await() error = %v, want %v", err, tt.want)
			}
		})
	}
	if opened.Load() != 0 {
		t.Errorf("opened %d transports, want 0", opened.Load())
	}
}

func TestAsyncClient_FactoryError(t *testing.T) {
	c := NewAsync(NewConfig("https://api.example.com", "secret").
		WithRegistry(testRegistry()).
		WithTransportFactory(func() (Transport, error) {
			return nil, errors.New("dial refused")
		}))

	_, err := c.Call(context.Background(), "things", "list").Await(context.Background())
	var te *TransportError
	if !errors.As(err, &te) || te.Code != CodeConnection {
		t.Errorf("Await() error = %v, want connection error", err)
	}
}

func TestAsyncClient_SharedTransport(t *testing.T) {
	rec := &recorder{}
	c := NewAsync(NewConfig("https://api.example.com", "secret").
		WithRegistry(testRegistry()).
		WithTransport(rec))

	if _, err := c.Call(context.Background(), "things", "list").Await(context.Background()); err != nil {
		t.Fatal(err)
	}
	if rec.count() != 1 {
		t.Errorf("transport called %d times, want 1", rec.count())
	}
}

func TestFuture_AwaitContext(t *testing.T) {
	f := newFuture("things", "list")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := f.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Await() error = %v, want deadline exceeded", err)
	}

	f.resolve(&Response{StatusCode: 204}, nil)
	res, err := f.Await(context.Background())
	if err != nil || res.StatusCode != 204 {
		t.Errorf("Await() = %v, %v", res, err)
	}
}

func TestAwaitAll_FirstError(t *testing.T) {
	ok := newFuture("things", "list")
	ok.resolve(&Response{StatusCode: 200}, nil)
	bad := failed("things", "get", ErrURLMatch)

	_, err := AwaitAll(context.Background(), ok, bad)
	if !errors.Is(err, ErrURLMatch) {
		t.Errorf("AwaitAll() error = %v, want ErrURLMatch", err)
	}
}

func TestDescribe_SyncAndAsyncMatch(t *testing.T) {
	cfg := NewConfig("https://api.example.com", "secret").WithRegistry(testRegistry()).WithTransport(&recorder{})
	sc, ac := New(cfg), NewAsync(cfg)
	if sc.Describe() != ac.Describe() {
		t.Errorf("Describe() differs:\nsync:\n%s\nasync:\n%s", sc.Describe(), ac.Describe())
	}
	for _, r := range sc.Resources() {
		if r.Describe() != ac.Resource(r.Name()).Describe() {
			t.Errorf("%s: Describe() differs", r.Name())
		}
	}

	// default registry
	def := NewConfig("https://api.example.com", "secret").WithTransport(&recorder{})
	if New(def).Describe() != NewAsync(def).Describe() {
		t.Error("Describe() differs for the default registry")
	}
}
