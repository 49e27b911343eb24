// Package testutil provides a fake API server for tests of woot clients.
//
// The server routes every action of a registry with gorilla/mux, records
// each request it receives and answers with a canned reply. It does not
// import the woot runtime, so any package can use it in tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"github.com/dearkafka/woot/descriptor"
)

// TokenHeader is the header the server reads the access token from.
const TokenHeader = "api_access_token"

// Recorded is one request received by the server.
type Recorded struct {
	// Route is "resource.action" of the matched action, empty when no route
	// matched.
	Route  string
	Method string
	Path   string
	// Vars are the path placeholder values.
	Vars   map[string]string
	Query  url.Values
	Header http.Header
	Body   []byte
}

var queryDecoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.SetAliasTag("json")
	dec.IgnoreUnknownKeys(true)
	return dec
}()

// DecodeQuery decodes the query string into a struct whose fields are named
// by json tags.
func (r Recorded) DecodeQuery(dst any) error {
	return queryDecoder.Decode(dst, r.Query)
}

// DecodeJSON unmarshals the JSON body into dst.
func (r Recorded) DecodeJSON(dst any) error {
	return json.Unmarshal(r.Body, dst)
}

// Form parses a form encoded body.
func (r Recorded) Form() (url.Values, error) {
	return url.ParseQuery(string(r.Body))
}

// Reply is a canned response.
type Reply struct {
	Status int
	Body   any
}

// Server is an httptest server answering the actions of a registry.
type Server struct {
	*httptest.Server
	Router *mux.Router

	mu       sync.Mutex
	token    string
	replies  map[string]Reply
	requests []Recorded
}

// NewServer starts a server with a route for every action of reg. Actions
// sharing a path and method are served by the first one registered. Close
// the server when done.
func NewServer(reg *descriptor.Registry) *Server {
	s := &Server{
		Router:  mux.NewRouter(),
		replies: make(map[string]Reply),
	}
	for _, r := range reg.Resources() {
		for _, a := range r.Actions {
			route := r.AttrName() + "." + a.Name
			s.Router.HandleFunc(routePath(r, a), s.handle(route)).
				Methods(a.Method.String()).
				Name(route)
		}
	}
	s.Router.NotFoundHandler = s.handle("")
	s.Router.MethodNotAllowedHandler = s.handle("")
	s.Server = httptest.NewServer(s.Router)
	return s
}

// routePath is the mux path of an action: its template without the literal
// query, rooted at "/".
func routePath(r descriptor.Resource, a descriptor.Action) string {
	p, _, _ := strings.Cut(a.URL, "?")
	p = "/" + strings.TrimPrefix(p, "/")
	if r.AppendSlash && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// WithToken makes the server reject requests whose token header differs
// from token with 401.
func (s *Server) WithToken(token string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s
}

// Reply sets the response of route, e.g. "contacts.get".
func (s *Server) Reply(route string, status int, body any) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[route] = Reply{Status: status, Body: body}
	return s
}

func (s *Server) handle(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec := Recorded{
			Route:  route,
			Method: r.Method,
			Path:   r.URL.Path,
			Vars:   mux.Vars(r),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		token := s.token
		reply, ok := s.replies[route]
		s.mu.Unlock()

		switch {
		case route == "":
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "no route for " + r.Method + " " + r.URL.Path})
		case token != "" && r.Header.Get(TokenHeader) != token:
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "You need to sign in or sign up before continuing."})
		case ok:
			writeJSON(w, reply.Status, reply.Body)
		default:
			writeJSON(w, http.StatusOK, map[string]any{"route": route, "params": rec.Vars})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	if status == 0 {
		status = http.StatusOK
	}
	if s, ok := body.(string); ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		io.WriteString(w, s)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Requests returns every request received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request, failing the test if there is none.
func (s *Server) Last(t testing.TB) Recorded {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatal("no requests recorded")
	}
	return s.requests[len(s.requests)-1]
}

// URLFor builds the URL of a route from placeholder values given as
// name, value pairs.
func (s *Server) URLFor(route string, pairs ...string) (string, error) {
	r := s.Router.Get(route)
	if r == nil {
		return "", fmt.Errorf("testutil: unknown route %q", route)
	}
	u, err := r.URLPath(pairs...)
	if err != nil {
		return "", err
	}
	return s.URL + u.Path, nil
}

// AssertRoute checks that rec was served by route.
func AssertRoute(t testing.TB, rec Recorded, route string) {
	t.Helper()
	if rec.Route != route {
		t.Errorf("expected route %q, got %q (%s %s)", route, rec.Route, rec.Method, rec.Path)
	}
}

// AssertVars checks the path placeholder values of rec.
func AssertVars(t testing.TB, rec Recorded, want map[string]string) {
	t.Helper()
	if diff := cmp.Diff(want, rec.Vars); diff != "" {
		t.Errorf("path vars mismatch (-want +got):\n%s", diff)
	}
}

// AssertQuery checks the query string of rec.
func AssertQuery(t testing.TB, rec Recorded, want url.Values) {
	t.Helper()
	got := rec.Query
	if len(got) == 0 {
		got = nil
	}
	if len(want) == 0 {
		want = nil
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

// AssertHeader checks that a request header has the expected value.
func AssertHeader(t testing.TB, rec Recorded, key, want string) {
	t.Helper()
	if got := rec.Header.Get(key); got != want {
		t.Errorf("expected header %s=%s, got %s", key, want, got)
	}
}

// AssertJSONBody compares the JSON body of rec with want, ignoring
// formatting and key order.
func AssertJSONBody(t testing.TB, rec Recorded, want any) {
	t.Helper()
	if ct := rec.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("expected Content-Type to contain application/json, got %s", ct)
	}

	wantJSON, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal expected body: %v", err)
	}
	var wantData, gotData any
	if err := json.Unmarshal(wantJSON, &wantData); err != nil {
		t.Fatalf("unmarshal expected body: %v", err)
	}
	if err := json.Unmarshal(rec.Body, &gotData); err != nil {
		t.Fatalf("request body is not JSON: %v\nBody: %s", err, rec.Body)
	}
	if diff := cmp.Diff(wantData, gotData); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}
