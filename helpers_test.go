package woot

import (
	"context"
	"sync"

	"github.com/dearkafka/woot/descriptor"
)

type thingsQuery struct {
	Sort string `json:"sort,omitempty" validate:"oneof=name -name"`
	Page int    `json:"page,omitempty"`
}

type thingPayload struct {
	Name  string   `json:"name" validate:"required"`
	Email string   `json:"email,omitempty" validate:"email"`
	Tags  []string `json:"tags,omitempty"`
}

type memberPayload struct {
	UserIDs []int  `json:"user_ids" validate:"required"`
	GroupID string `json:"group_id" alias:"group_id_" validate:"required"`
}

// testRegistry declares a small API used across the tests of this package.
func testRegistry() *descriptor.Registry {
	return descriptor.NewRegistry().MustRegister(
		descriptor.Resource{Name: "Things", Actions: []descriptor.Action{
			{Name: "list", Method: descriptor.GET, URL: "things", Query: descriptor.SchemaOf(thingsQuery{})},
			{Name: "get", Method: descriptor.GET, URL: "things/{id}", Query: descriptor.SchemaOf(thingsQuery{})},
			{Name: "create", Method: descriptor.POST, URL: "things", Body: descriptor.SchemaOf(thingPayload{})},
			{Name: "paged", Method: descriptor.GET, URL: "things/{id}?page=1", Query: descriptor.SchemaOf(thingsQuery{})},
		}},
		descriptor.Resource{Name: "GroupMembers", Actions: []descriptor.Action{
			{Name: "delete", Method: descriptor.DELETE, URL: "groups/{group_id}/members", Body: descriptor.SchemaOf(memberPayload{})},
		}},
		descriptor.Resource{Name: "SlashedThings", AppendSlash: true, Actions: []descriptor.Action{
			{Name: "get", Method: descriptor.GET, URL: "slashed/{id}", Query: descriptor.SchemaOf(thingsQuery{})},
		}},
	).Seal()
}

// recorder is a Transport that records requests and answers with a fixed
// response.
type recorder struct {
	mu       sync.Mutex
	requests []*Request
	status   int
	err      error
}

func (r *recorder) Do(ctx context.Context, req *Request) (*Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	if r.err != nil {
		return nil, r.err
	}
	status := r.status
	if status == 0 {
		status = 200
	}
	return &Response{Method: req.Method, URL: req.URL, StatusCode: status}, nil
}

func (r *recorder) last() *Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return nil
	}
	return r.requests[len(r.requests)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func newTestClient(t Transport) *Client {
	return New(NewConfig("https://api.example.com", "secret").
		WithRegistry(testRegistry()).
		WithTransport(t))
}
