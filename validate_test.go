package woot

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newValidatingClient(t Transport) *Client {
	return New(NewConfig("https://api.example.com", "secret").
		WithRegistry(testRegistry()).
		WithTransport(t).
		WithValidation())
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name       string
		resource   string
		action     string
		args       Args
		wantFields map[string]string
	}{
		{
			name:     "valid body",
			resource: "things", action: "create",
			args: Args{"name": "box", "email": "box@example.com"},
		},
		{
			name:       "missing required",
			resource:   "things", action: "create",
			args:       Args{"email": "box@example.com"},
			wantFields: map[string]string{"name": "required"},
		},
		{
			name:       "bad email",
			resource:   "things", action: "create",
			args:       Args{"name": "box", "email": "nope"},
			wantFields: map[string]string{"email": "must be a valid email address"},
		},
		{
			name:       "query oneof",
			resource:   "things", action: "list",
			args:       Args{"sort": "size"},
			wantFields: map[string]string{"sort": "must be one of: name -name"},
		},
		{
			name:     "absent optional rule",
			resource: "things", action: "list",
			args: Args{},
		},
		{
			name:       "aliased required",
			resource:   "group_members", action: "delete",
			args:       Args{"group_id": "g1", "user_ids": []int{1}},
			wantFields: map[string]string{"group_id_": "required"},
		},
		{
			name:       "nil counts as absent",
			resource:   "things", action: "create",
			args:       Args{"name": nil},
			wantFields: map[string]string{"name": "required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			c := newValidatingClient(rec)
			_, err := c.Call(context.Background(), tt.resource, tt.action, tt.args)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("Call() error = %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Call() error = %v, want *ValidationError", err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("errors.Is(err, ErrValidation) = false")
			}
			if diff := cmp.Diff(tt.wantFields, ve.Fields); diff != "" {
				t.Errorf("Fields mismatch (-want +got):\n%s", diff)
			}
			if rec.count() != 0 {
				t.Error("transport was called after validation failed")
			}
		})
	}
}

func TestValidation_DisabledByDefault(t *testing.T) {
	rec := &recorder{}
	c := newTestClient(rec)
	if _, err := c.Call(context.Background(), "things", "create", Args{"email": "nope"}); err != nil {
		t.Fatalf("Call() error = %v, want none without WithValidation", err)
	}
}
