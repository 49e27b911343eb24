package chatwoot

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dearkafka/woot/descriptor"
)

func TestRegistry_Sealed(t *testing.T) {
	err := Registry.Register(descriptor.Resource{
		Name:    "Extra",
		Actions: []descriptor.Action{{Name: "get", Method: descriptor.GET, URL: "extra"}},
	})
	if err != descriptor.ErrSealed {
		t.Errorf("Register after init = %v, want ErrSealed", err)
	}
}

func TestRegistry_Resources(t *testing.T) {
	var got []string
	for _, r := range Registry.Resources() {
		got = append(got, r.AttrName())
	}
	want := []string{
		"account", "account_users", "agent_bots", "users", "account_agent_bot",
		"agents", "canned_responses", "contacts", "conversation_assignment",
		"conversation_labels", "conversations", "custom_attributes", "custom_filters",
		"inbox", "integrations", "messages", "profile", "reports", "teams",
		"webhooks", "automation_rule", "client_contacts", "client_conversations",
		"client_messages",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resources mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_EveryResourceValid(t *testing.T) {
	for _, r := range Registry.Resources() {
		if err := r.Validate(); err != nil {
			t.Errorf("%s: %v", r.Name, err)
		}
	}
}

func TestRegistry_Summaries(t *testing.T) {
	for _, r := range Registry.Resources() {
		for _, a := range r.Actions {
			if a.Summary == "" {
				t.Errorf("%s.%s has no summary", r.AttrName(), a.Name)
			}
		}
	}

	tests := []struct {
		resource, action, want string
	}{
		{"users", "get_sso_link", "Get sso link (users)."},
		{"account_agent_bot", "get", "Get (account agent bot)."},
		{"contacts", "get_conversations", "Get conversations (contacts)."},
	}
	for _, tt := range tests {
		r, ok := Registry.Lookup(tt.resource)
		if !ok {
			t.Fatalf("%s not registered", tt.resource)
		}
		a, ok := r.Action(tt.action)
		if !ok {
			t.Fatalf("%s.%s not declared", tt.resource, tt.action)
		}
		if a.Summary != tt.want {
			t.Errorf("%s.%s summary = %q, want %q", tt.resource, tt.action, a.Summary, tt.want)
		}
	}
}

func TestContacts(t *testing.T) {
	r, ok := Registry.Lookup("contacts")
	if !ok {
		t.Fatal("contacts not registered")
	}
	want := []string{"list", "create", "update", "delete", "get", "get_conversations", "search", "filter"}
	if diff := cmp.Diff(want, r.ActionNames()); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}

	get, _ := r.Action("get")
	if get.Method != descriptor.GET {
		t.Errorf("get method = %s", get.Method)
	}
	if diff := cmp.Diff([]string{"account_id", "id"}, get.PathParams()); diff != "" {
		t.Errorf("get path params mismatch (-want +got):\n%s", diff)
	}

	list, _ := r.Action("list")
	if diff := cmp.Diff([]string{"sort", "page"}, list.Query.Names()); diff != "" {
		t.Errorf("list query mismatch (-want +got):\n%s", diff)
	}
	if list.Body != nil {
		t.Errorf("list body = %v, want nil", list.Body)
	}

	create, _ := r.Action("create")
	f, ok := create.Body.Field("inbox_id")
	if !ok || !f.Required {
		t.Errorf("create inbox_id = %+v, %v; want required field", f, ok)
	}
}

func TestInboxDeleteAgentAlias(t *testing.T) {
	r, _ := Registry.Lookup("inbox")
	a, ok := r.Action("delete_agent")
	if !ok {
		t.Fatal("inbox.delete_agent not registered")
	}
	if diff := cmp.Diff([]string{"account_id", "inbox_id"}, a.PathParams()); diff != "" {
		t.Errorf("path params mismatch (-want +got):\n%s", diff)
	}
	f, ok := a.Body.Field("inbox_id")
	if !ok {
		t.Fatal("body has no inbox_id")
	}
	if f.ExternalName() != "inbox_id_" {
		t.Errorf("ExternalName = %q, want inbox_id_", f.ExternalName())
	}
}

func TestTeamsDeleteAgentURL(t *testing.T) {
	r, _ := Registry.Lookup("teams")
	a, _ := r.Action("delete_agent")
	if a.URL != "api/v1/accounts/{account_id}/teams/{team_id}/team_members" {
		t.Errorf("URL = %q", a.URL)
	}
}

func TestSchemaTypes(t *testing.T) {
	tests := []struct {
		schema any
		field  string
		want   string
	}{
		{ContactsListQuery{}, "sort", "Sort"},
		{ContactsListQuery{}, "page", "int"},
		{InboxMembers{}, "user_ids", "[]int"},
		{ContactCreate{}, "custom_attributes", "map[string]any"},
		{InboxCreate{}, "channel", "Channel"},
		{WebhookPayload{}, "subscriptions", "[]Subscription"},
	}
	for _, tt := range tests {
		s := descriptor.SchemaOf(tt.schema)
		f, ok := s.Field(tt.field)
		if !ok {
			t.Errorf("%s has no field %s", s.Name, tt.field)
			continue
		}
		if f.Type != tt.want {
			t.Errorf("%s.%s type = %q, want %q", s.Name, tt.field, f.Type, tt.want)
		}
	}
}
