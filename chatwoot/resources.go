// Package chatwoot declares the resources and actions of the Chatwoot API.
//
// The tables are plain data: the woot package binds them into callables.
// Platform resources live under platform/api/v1, application resources under
// api/v1 and the public client API under public/api/v1.
package chatwoot

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/dearkafka/woot/descriptor"
)

// Registry holds every Chatwoot resource. It is sealed once init finishes.
var Registry = descriptor.NewRegistry()

func init() {
	Registry.MustRegister(summarize(resources())...).Seal()
}

const (
	get   = descriptor.GET
	post  = descriptor.POST
	patch = descriptor.PATCH
	del   = descriptor.DELETE
)

// act declares one action. query and body are schema structs or nil.
func act(name string, method descriptor.Method, url string, query, body any) descriptor.Action {
	a := descriptor.Action{Name: name, Method: method, URL: url}
	if query != nil {
		a.Query = descriptor.SchemaOf(query)
	}
	if body != nil {
		a.Body = descriptor.SchemaOf(body)
	}
	return a
}

// summarize fills the summary of every action from its own and its
// resource's name, e.g. "Get sso link (users)."
func summarize(rs []descriptor.Resource) []descriptor.Resource {
	for _, r := range rs {
		noun := strcase.ToDelimited(r.Name, ' ')
		for i, a := range r.Actions {
			if a.Summary != "" {
				continue
			}
			verb := strings.ReplaceAll(a.Name, "_", " ")
			r.Actions[i].Summary = strings.ToUpper(verb[:1]) + verb[1:] + " (" + noun + ")."
		}
	}
	return rs
}

func resources() []descriptor.Resource {
	return []descriptor.Resource{
		{Name: "Account", Actions: []descriptor.Action{
			act("create", post, "platform/api/v1/accounts", nil, AccountPayload{}),
			act("get", get, "platform/api/v1/accounts/{account_id}", nil, nil),
			act("update", patch, "platform/api/v1/accounts/{account_id}", nil, AccountPayload{}),
			act("delete", del, "platform/api/v1/accounts/{account_id}", nil, nil),
		}},
		{Name: "AccountUsers", Actions: []descriptor.Action{
			act("list", get, "platform/api/v1/accounts/{account_id}/account_users", nil, nil),
			act("create", post, "platform/api/v1/accounts/{account_id}/account_users", nil, AccountUserCreate{}),
			act("delete", del, "platform/api/v1/accounts/{account_id}/account_users/", nil, AccountUserDelete{}),
		}},
		{Name: "AgentBots", Actions: []descriptor.Action{
			act("list", get, "platform/api/v1/agent_bots", nil, nil),
			act("create", post, "platform/api/v1/agent_bots", nil, AgentBotPayload{}),
			act("get", get, "platform/api/v1/agent_bots/{id}", nil, nil),
			act("update", patch, "platform/api/v1/agent_bots/{id}", nil, AgentBotPayload{}),
			act("delete", del, "platform/api/v1/agent_bots/{id}", nil, nil),
		}},
		{Name: "Users", Actions: []descriptor.Action{
			act("list", get, "platform/api/v1/users", nil, nil),
			act("create", post, "platform/api/v1/users/", nil, UserPayload{}),
			act("get", get, "platform/api/v1/users/{id}", nil, nil),
			act("update", patch, "platform/api/v1/users/{id}", nil, UserPayload{}),
			act("delete", del, "platform/api/v1/users/{id}", nil, nil),
			act("get_sso_link", get, "platform/api/v1/users/{id}/login", nil, nil),
		}},
		{Name: "AccountAgentBot", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/agent_bots", nil, nil),
			act("create", post, "api/v1/accounts/{account_id}/agent_bots", nil, AgentBotPayload{}),
			act("delete", del, "api/v1/accounts/{account_id}/agent_bots/{id}", nil, nil),
			act("get", get, "api/v1/accounts/{account_id}/agent_bots/{id}", nil, nil),
			act("update", patch, "api/v1/accounts/{account_id}/agent_bots/{id}", nil, AgentBotPayload{}),
		}},
		{Name: "Agents", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/agents", nil, nil),
			act("create", post, "api/v1/accounts/{account_id}/agents", nil, AgentCreate{}),
			act("update", patch, "api/v1/accounts/{account_id}/agents/{id}", nil, AgentUpdate{}),
			act("delete", del, "api/v1/accounts/{account_id}/agents/{id}", nil, nil),
		}},
		{Name: "CannedResponses", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/canned_responses", nil, nil),
			act("create", post, "api/v1/accounts/{account_id}/canned_responses", nil, CannedResponsePayload{}),
			act("delete", del, "api/v1/accounts/{account_id}/canned_responses/{id}", nil, nil),
		}},
		{Name: "Contacts", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/contacts", ContactsListQuery{}, nil),
			act("create", post, "api/v1/accounts/{account_id}/contacts", nil, ContactCreate{}),
			act("update", patch, "api/v1/accounts/{account_id}/contacts/{id}", nil, ContactUpdate{}),
			act("delete", del, "api/v1/accounts/{account_id}/contacts/{id}", nil, nil),
			act("get", get, "api/v1/accounts/{account_id}/contacts/{id}", nil, nil),
			act("get_conversations", get, "api/v1/accounts/{account_id}/contacts/{id}/conversations", nil, nil),
			act("search", get, "api/v1/accounts/{account_id}/contacts/search", ContactsSearchQuery{}, nil),
			act("filter", get, "api/v1/accounts/{account_id}/contacts/filter", PageQuery{}, FilterPayload{}),
		}},
		{Name: "ConversationAssignment", Actions: []descriptor.Action{
			act("assign", post, "api/v1/accounts/{account_id}/conversations/{conversation_id}/assignments", nil, ConversationAssignment{}),
		}},
		{Name: "ConversationLabels", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/conversations/{conversation_id}/labels", nil, nil),
			act("create", post, "api/v1/accounts/{account_id}/conversations/{conversation_id}/labels", nil, LabelsPayload{}),
		}},
		{Name: "Conversations", Actions: []descriptor.Action{
			act("get_meta", get, "api/v1/accounts/{account_id}/conversations/meta", ConversationsMetaQuery{}, nil),
			act("list", get, "api/v1/accounts/{account_id}/conversations", ConversationsListQuery{}, nil),
			act("create", post, "api/v1/accounts/{account_id}/conversations", nil, ConversationCreate{}),
			act("get", get, "api/v1/accounts/{account_id}/conversations/{conversation_id}", nil, nil),
			act("filter", get, "api/v1/accounts/{account_id}/conversations/filter", PageQuery{}, FilterPayload{}),
			act("toggle_status", post, "api/v1/accounts/{account_id}/conversations/{conversation_id}/toggle_status", nil, ToggleStatus{}),
		}},
		{Name: "CustomAttributes", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/custom_attribute_definitions", CustomAttributesQuery{}, nil),
			act("create", post, "api/v1/accounts/{account_id}/custom_attribute_definitions", nil, CustomAttributePayload{}),
			act("get", get, "api/v1/accounts/{account_id}/custom_attribute_definitions/{id}", nil, nil),
			act("update", patch, "api/v1/accounts/{account_id}/custom_attribute_definitions/{id}", nil, CustomAttributePayload{}),
			act("delete", del, "api/v1/accounts/{account_id}/custom_attribute_definitions/{id}", nil, nil),
		}},
		{Name: "CustomFilters", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/custom_filters", CustomFiltersQuery{}, nil),
			act("create", post, "api/v1/accounts/{account_id}/custom_filters", CustomFiltersQuery{}, CustomFilterPayload{}),
			act("get", get, "api/v1/accounts/{account_id}/custom_filters/{custom_filter_id}", nil, nil),
			act("update", patch, "api/v1/accounts/{account_id}/custom_filters/{custom_filter_id}", nil, CustomFilterPayload{}),
			act("delete", del, "api/v1/accounts/{account_id}/custom_filters/{custom_filter_id}", nil, nil),
		}},
		{Name: "Inbox", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/inboxes", nil, nil),
			act("create", post, "api/v1/accounts/{account_id}/inboxes", nil, InboxCreate{}),
			act("get", get, "api/v1/accounts/{account_id}/inboxes/{id}", nil, nil),
			act("update", patch, "api/v1/accounts/{account_id}/inboxes/{id}", nil, InboxUpdate{}),
			act("delete", del, "api/v1/accounts/{account_id}/inboxes/{id}", nil, nil),
			act("get_associated_agent_bot", get, "api/v1/accounts/{account_id}/inboxes/{id}/agent_bot", nil, nil),
			act("set_agent_bot", post, "api/v1/accounts/{account_id}/inboxes/{id}/set_agent_bot", nil, SetAgentBot{}),
			act("list_agents", get, "api/v1/accounts/{account_id}/inbox_members/{inbox_id}", nil, nil),
			act("delete_agent", del, "api/v1/accounts/{account_id}/inbox_members/{inbox_id}", nil, InboxMembersDelete{}),
			act("add_agent", post, "api/v1/accounts/{account_id}/inbox_members", nil, InboxMembers{}),
			act("update_agent", patch, "api/v1/accounts/{account_id}/inbox_members", nil, InboxMembers{}),
		}},
		{Name: "Integrations", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/integrations/apps", nil, nil),
			act("create", post, "api/v1/accounts/{account_id}/integrations/hooks", nil, IntegrationHookCreate{}),
			act("update", patch, "api/v1/accounts/{account_id}/integrations/hooks/{hook_id}", nil, IntegrationHookUpdate{}),
			act("delete", del, "api/v1/accounts/{account_id}/integrations/hooks/{hook_id}", nil, nil),
		}},
		{Name: "Messages", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/conversations/{conversation_id}/messages", nil, nil),
			act("create", post, "api/v1/accounts/{account_id}/conversations/{conversation_id}/messages", nil, MessageCreate{}),
			act("delete", del, "api/v1/accounts/{account_id}/conversations/{conversation_id}/messages/{message_id}", nil, nil),
			act("create_attachment", post, "api/v1/accounts/{account_id}/conversations/{conversation_id}/messages", nil, MessageAttachmentCreate{}),
		}},
		{Name: "Profile", Actions: []descriptor.Action{
			act("get", get, "api/v1/accounts/{account_id}/profile", nil, nil),
		}},
		{Name: "Reports", Actions: []descriptor.Action{
			act("get_accounts_report", get, "api/v1/accounts/{account_id}/reports", ReportsQuery{}, nil),
			act("get_account_report_summary", get, "api/v1/accounts/{account_id}/reports/summary", ReportSummaryQuery{}, nil),
			act("get_conversation_metrics_for_account", get, "api/v1/accounts/{account_id}/reports/conversations", AccountConversationMetricsQuery{}, nil),
			act("get_conversation_metrics_for_agent", get, "api/v1/accounts/{account_id}/reports/conversations", AgentConversationMetricsQuery{}, nil),
		}},
		{Name: "Teams", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/teams", nil, nil),
			act("create", post, "api/v1/accounts/{account_id}/teams", nil, TeamPayload{}),
			act("get", get, "api/v1/accounts/{account_id}/teams/{team_id}", nil, nil),
			act("update", patch, "api/v1/accounts/{account_id}/teams/{team_id}", nil, TeamPayload{}),
			act("delete", del, "api/v1/accounts/{account_id}/teams/{team_id}", nil, nil),
			act("list_agents", get, "api/v1/accounts/{account_id}/teams/{team_id}/team_members", nil, nil),
			act("delete_agent", del, "api/v1/accounts/{account_id}/teams/{team_id}/team_members", nil, TeamMembers{}),
			act("add_agent", post, "api/v1/accounts/{account_id}/teams/{team_id}/team_members", nil, TeamMembers{}),
			act("update_agent", patch, "api/v1/accounts/{account_id}/teams/{team_id}/team_members", nil, TeamMembers{}),
		}},
		{Name: "Webhooks", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/webhooks", nil, nil),
			act("create", post, "api/v1/accounts/{account_id}/webhooks", nil, WebhookPayload{}),
			act("update", patch, "api/v1/accounts/{account_id}/webhooks/{webhook_id}", nil, WebhookPayload{}),
			act("delete", del, "api/v1/accounts/{account_id}/webhooks/{webhook_id}", nil, nil),
		}},
		{Name: "AutomationRule", Actions: []descriptor.Action{
			act("list", get, "api/v1/accounts/{account_id}/automation_rules", PageQuery{}, nil),
			act("create", post, "api/v1/accounts/{account_id}/automation_rules", nil, AutomationRulePayload{}),
			act("get", get, "api/v1/accounts/{account_id}/automation_rules/{id}", nil, nil),
			act("update", patch, "api/v1/accounts/{account_id}/automation_rules/{id}", nil, AutomationRulePayload{}),
			act("delete", del, "api/v1/accounts/{account_id}/automation_rules/{id}", nil, nil),
		}},
		{Name: "ClientContacts", Actions: []descriptor.Action{
			act("create", post, "public/api/v1/inboxes/{inbox_identifier}/contacts", nil, PublicContactPayload{}),
			act("get", get, "public/api/v1/inboxes/{inbox_identifier}/contacts/{contact_identifier}", nil, nil),
			act("update", patch, "public/api/v1/inboxes/{inbox_identifier}/contacts/{contact_identifier}", nil, PublicContactPayload{}),
		}},
		{Name: "ClientConversations", Actions: []descriptor.Action{
			act("list", get, "public/api/v1/inboxes/{inbox_identifier}/contacts/{contact_identifier}/conversations", nil, nil),
			act("create", post, "public/api/v1/inboxes/{inbox_identifier}/contacts/{contact_identifier}/conversations", nil, nil),
		}},
		{Name: "ClientMessages", Actions: []descriptor.Action{
			act("list", get, "public/api/v1/inboxes/{inbox_identifier}/contacts/{contact_identifier}/conversations/{conversation_id}/messages", nil, nil),
			act("create", post, "public/api/v1/inboxes/{inbox_identifier}/contacts/{contact_identifier}/conversations/{conversation_id}/messages", nil, PublicMessageCreate{}),
			act("update", patch, "public/api/v1/inboxes/{inbox_identifier}/contacts/{contact_identifier}/conversations/{conversation_id}/messages/{message_id}", nil, PublicMessageUpdate{}),
		}},
	}
}
