package chatwoot

// Request bodies and query strings of the Chatwoot API. Only field names,
// declared types and validation rules matter to the binder; the structs can
// also be turned into keyword arguments with woot.StructArgs and
// woot.QueryArgs.

// Sort orders contact listings. A leading "-" sorts descending.
type Sort string

const (
	SortName               Sort = "name"
	SortEmail              Sort = "email"
	SortPhoneNumber        Sort = "phone_number"
	SortLastActivityAt     Sort = "last_activity_at"
	SortNameDesc           Sort = "-name"
	SortEmailDesc          Sort = "-email"
	SortPhoneNumberDesc    Sort = "-phone_number"
	SortLastActivityAtDesc Sort = "-last_activity_at"
)

// ConversationStatus is the state of a conversation.
type ConversationStatus string

const (
	StatusOpen     ConversationStatus = "open"
	StatusResolved ConversationStatus = "resolved"
	StatusPending  ConversationStatus = "pending"
	StatusSnoozed  ConversationStatus = "snoozed"
)

// AssigneeType filters conversation listings by assignee.
type AssigneeType string

const (
	AssigneeMe         AssigneeType = "me"
	AssigneeUnassigned AssigneeType = "unassigned"
	AssigneeAll        AssigneeType = "all"
	AssigneeAssigned   AssigneeType = "assigned"
)

// Role of an agent within an account.
type Role string

const (
	RoleAgent         Role = "agent"
	RoleAdministrator Role = "administrator"
)

// Availability of an agent.
type Availability string

const (
	Available Availability = "available"
	Busy      Availability = "busy"
	Offline   Availability = "offline"
)

// MessageType of a message created through the API.
type MessageType string

const (
	MessageOutgoing MessageType = "outgoing"
	MessageIncoming MessageType = "incoming"
)

// ContentType of a message created through the API.
type ContentType string

const (
	ContentInputEmail  ContentType = "input_email"
	ContentCards       ContentType = "cards"
	ContentInputSelect ContentType = "input_select"
	ContentForm        ContentType = "form"
	ContentArticle     ContentType = "article"
)

// FilterType selects which custom filters to list.
type FilterType string

const (
	FilterConversation FilterType = "conversation"
	FilterContact      FilterType = "contact"
	FilterReport       FilterType = "report"
)

// EventName triggers an automation rule.
type EventName string

const (
	EventConversationCreated EventName = "conversation_created"
	EventConversationUpdated EventName = "conversation_updated"
	EventMessageCreated      EventName = "message_created"
)

// Subscription is a webhook event.
type Subscription string

const (
	SubConversationCreated       Subscription = "conversation_created"
	SubConversationStatusChanged Subscription = "conversation_status_changed"
	SubConversationUpdated       Subscription = "conversation_updated"
	SubMessageCreated            Subscription = "message_created"
	SubMessageUpdated            Subscription = "message_updated"
	SubWebwidgetTriggered        Subscription = "webwidget_triggered"
)

// ReportMetric is a reported quantity.
type ReportMetric string

const (
	MetricConversationsCount     ReportMetric = "conversations_count"
	MetricIncomingMessagesCount  ReportMetric = "incoming_messages_count"
	MetricOutgoingMessagesCount  ReportMetric = "outgoing_messages_count"
	MetricAvgFirstResponseTime   ReportMetric = "avg_first_response_time"
	MetricAvgResolutionTime      ReportMetric = "avg_resolution_time"
	MetricResolutionsCount       ReportMetric = "resolutions_count"
)

// ReportType is the entity a report is about.
type ReportType string

const (
	ReportAccount ReportType = "account"
	ReportAgent   ReportType = "agent"
	ReportInbox   ReportType = "inbox"
	ReportLabel   ReportType = "label"
	ReportTeam    ReportType = "team"
)

// FilterOperator compares an attribute in a filter payload.
type FilterOperator string

const (
	OpEqualTo        FilterOperator = "equal_to"
	OpNotEqualTo     FilterOperator = "not_equal_to"
	OpContains       FilterOperator = "contains"
	OpDoesNotContain FilterOperator = "does_not_contain"
)

// QueryOperator joins filter conditions.
type QueryOperator string

const (
	QueryAnd QueryOperator = "AND"
	QueryOr  QueryOperator = "OR"
)

// Platform API

type AccountPayload struct {
	Name string `json:"name,omitempty"`
}

type AccountUserCreate struct {
	UserID int    `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

type AccountUserDelete struct {
	UserID int `json:"user_id" validate:"required"`
}

type AgentBotPayload struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	OutgoingURL string `json:"outgoing_url,omitempty" validate:"url"`
}

type UserPayload struct {
	Name             string         `json:"name,omitempty"`
	Email            string         `json:"email,omitempty" validate:"email"`
	Password         string         `json:"password,omitempty"`
	CustomAttributes map[string]any `json:"custom_attributes,omitempty"`
}

// Application API

type AgentCreate struct {
	Name               string       `json:"name" validate:"required"`
	Email              string       `json:"email" validate:"required,email"`
	Role               Role         `json:"role" validate:"required,oneof=agent administrator"`
	AvailabilityStatus Availability `json:"availability_status,omitempty" validate:"oneof=available busy offline"`
	AutoOffline        bool         `json:"auto_offline,omitempty"`
}

type AgentUpdate struct {
	Role         Role         `json:"role" validate:"required,oneof=agent administrator"`
	Availability Availability `json:"availability,omitempty" validate:"oneof=available busy offline"`
	AutoOffline  bool         `json:"auto_offline,omitempty"`
}

type CannedResponsePayload struct {
	Content   string `json:"content,omitempty"`
	ShortCode string `json:"short_code,omitempty"`
}

type ContactsListQuery struct {
	Sort Sort `json:"sort,omitempty" validate:"oneof=name email phone_number last_activity_at -name -email -phone_number -last_activity_at"`
	Page int  `json:"page,omitempty"`
}

type ContactsSearchQuery struct {
	Q    string `json:"q,omitempty"`
	Sort Sort   `json:"sort,omitempty" validate:"oneof=name email phone_number last_activity_at -name -email -phone_number -last_activity_at"`
	Page int    `json:"page,omitempty"`
}

type PageQuery struct {
	Page int `json:"page,omitempty"`
}

type ContactCreate struct {
	InboxID          float64        `json:"inbox_id" validate:"required"`
	Name             string         `json:"name,omitempty"`
	Email            string         `json:"email,omitempty" validate:"email"`
	PhoneNumber      string         `json:"phone_number,omitempty"`
	Avatar           []byte         `json:"avatar,omitempty"`
	AvatarURL        string         `json:"avatar_url,omitempty"`
	Identifier       string         `json:"identifier,omitempty"`
	CustomAttributes map[string]any `json:"custom_attributes,omitempty"`
}

type ContactUpdate struct {
	Name             string         `json:"name,omitempty"`
	Email            string         `json:"email,omitempty" validate:"email"`
	PhoneNumber      string         `json:"phone_number,omitempty"`
	Avatar           []byte         `json:"avatar,omitempty"`
	AvatarURL        string         `json:"avatar_url,omitempty"`
	Identifier       string         `json:"identifier,omitempty"`
	CustomAttributes map[string]any `json:"custom_attributes,omitempty"`
}

type FilterPayload struct {
	AttributeKey   string         `json:"attribute_key,omitempty"`
	FilterOperator FilterOperator `json:"filter_operator,omitempty" validate:"oneof=equal_to not_equal_to contains does_not_contain"`
	Values         []string       `json:"values,omitempty"`
	QueryOperator  QueryOperator  `json:"query_operator,omitempty" validate:"oneof=AND OR"`
}

type ConversationAssignment struct {
	AssigneeID float64 `json:"assignee_id,omitempty"`
	TeamID     float64 `json:"team_id,omitempty"`
}

type LabelsPayload struct {
	Labels []string `json:"labels,omitempty"`
}

type ConversationsMetaQuery struct {
	Q       string             `json:"q,omitempty"`
	InboxID int                `json:"inbox_id,omitempty"`
	TeamID  int                `json:"team_id,omitempty"`
	Labels  []string           `json:"labels,omitempty"`
	Status  ConversationStatus `json:"status,omitempty" validate:"oneof=open resolved pending snoozed"`
}

type ConversationsListQuery struct {
	Q            string             `json:"q,omitempty"`
	InboxID      int                `json:"inbox_id,omitempty"`
	TeamID       int                `json:"team_id,omitempty"`
	Labels       []string           `json:"labels,omitempty"`
	AssigneeType AssigneeType       `json:"assignee_type,omitempty" validate:"oneof=me unassigned all assigned"`
	Status       ConversationStatus `json:"status,omitempty" validate:"oneof=open resolved pending snoozed"`
	Page         int                `json:"page,omitempty"`
}

type ConversationCreate struct {
	SourceID             string             `json:"source_id,omitempty"`
	InboxID              string             `json:"inbox_id,omitempty"`
	ContactID            string             `json:"contact_id,omitempty"`
	AdditionalAttributes map[string]any     `json:"additional_attributes,omitempty"`
	CustomAttributes     map[string]any     `json:"custom_attributes,omitempty"`
	Status               ConversationStatus `json:"status,omitempty" validate:"oneof=open resolved pending"`
	AssigneeID           string             `json:"assignee_id,omitempty"`
	TeamID               string             `json:"team_id,omitempty"`
}

type ToggleStatus struct {
	Status ConversationStatus `json:"status" validate:"required,oneof=open resolved pending"`
}

type CustomAttributesQuery struct {
	AttributeModel string `json:"attribute_model" validate:"required,oneof=0 1"`
}

type CustomAttributePayload struct {
	AttributeDisplayName string   `json:"attribute_display_name,omitempty"`
	AttributeDisplayType int      `json:"attribute_display_type,omitempty"`
	AttributeDescription string   `json:"attribute_description,omitempty"`
	AttributeKey         string   `json:"attribute_key,omitempty"`
	AttributeValues      []string `json:"attribute_values,omitempty"`
	AttributeModel       int      `json:"attribute_model,omitempty"`
}

type CustomFiltersQuery struct {
	FilterType FilterType `json:"filter_type,omitempty" validate:"oneof=conversation contact report"`
}

type CustomFilterPayload struct {
	Name  string         `json:"name,omitempty"`
	Type  FilterType     `json:"type,omitempty" validate:"oneof=conversation contact report"`
	Query map[string]any `json:"query,omitempty"`
}

type Channel struct {
	Type             string `json:"type,omitempty"`
	WebsiteURL       string `json:"website_url,omitempty"`
	WelcomeTitle     string `json:"welcome_title,omitempty"`
	WelcomeTagline   string `json:"welcome_tagline,omitempty"`
	AgentAwayMessage string `json:"agent_away_message,omitempty"`
	WidgetColor      string `json:"widget_color,omitempty"`
}

type InboxCreate struct {
	Name    string   `json:"name,omitempty"`
	Avatar  []byte   `json:"avatar,omitempty"`
	Channel *Channel `json:"channel,omitempty"`
}

type InboxUpdate struct {
	EnableAutoAssignment bool     `json:"enable_auto_assignment"`
	Name                 string   `json:"name,omitempty"`
	Avatar               []byte   `json:"avatar,omitempty"`
	Channel              *Channel `json:"channel,omitempty"`
}

type SetAgentBot struct {
	AgentBot float64 `json:"agent_bot" validate:"required"`
}

// InboxMembersDelete carries the inbox id in the body as well as in the path;
// callers pass the body copy as inbox_id_.
type InboxMembersDelete struct {
	UserIDs []int  `json:"user_ids" validate:"required"`
	InboxID string `json:"inbox_id" alias:"inbox_id_" validate:"required"`
}

type InboxMembers struct {
	InboxID string `json:"inbox_id" validate:"required"`
	UserIDs []int  `json:"user_ids" validate:"required"`
}

type IntegrationHookCreate struct {
	AppID    string         `json:"app_id,omitempty"`
	InboxID  string         `json:"inbox_id,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

type IntegrationHookUpdate struct {
	Settings map[string]any `json:"settings,omitempty"`
}

type MessageCreate struct {
	Content           string         `json:"content" validate:"required"`
	MessageType       MessageType    `json:"message_type,omitempty" validate:"oneof=outgoing incoming"`
	Private           bool           `json:"private,omitempty"`
	ContentType       ContentType    `json:"content_type,omitempty" validate:"oneof=input_email cards input_select form article"`
	ContentAttributes map[string]any `json:"content_attributes,omitempty"`
}

type MessageAttachmentCreate struct {
	Content     string         `json:"content" validate:"required"`
	Files       map[string]any `json:"files,omitempty"`
	MessageType MessageType    `json:"message_type,omitempty" validate:"oneof=outgoing incoming"`
	FileType    string         `json:"file_type,omitempty"`
}

type ReportsQuery struct {
	Metric ReportMetric `json:"metric" validate:"required,oneof=conversations_count incoming_messages_count outgoing_messages_count avg_first_response_time avg_resolution_time resolutions_count"`
	Type   ReportType   `json:"type" validate:"required,oneof=account agent inbox label team"`
	ID     string       `json:"id,omitempty"`
	Since  string       `json:"since,omitempty"`
	Until  string       `json:"until,omitempty"`
}

type ReportSummaryQuery struct {
	Type  ReportType `json:"type" validate:"required,oneof=account agent inbox label team"`
	ID    string     `json:"id,omitempty"`
	Since string     `json:"since,omitempty"`
	Until string     `json:"until,omitempty"`
}

type AccountConversationMetricsQuery struct {
	Type ReportType `json:"type" validate:"required,oneof=account"`
}

type AgentConversationMetricsQuery struct {
	Type   ReportType `json:"type" validate:"required,oneof=agent"`
	UserID string     `json:"user_id,omitempty"`
}

type TeamPayload struct {
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
	AllowAutoAssign bool   `json:"allow_auto_assign,omitempty"`
}

type TeamMembers struct {
	UserIDs []int `json:"user_ids" validate:"required"`
}

type WebhookPayload struct {
	URL           string         `json:"url,omitempty" validate:"url"`
	Subscriptions []Subscription `json:"subscriptions,omitempty"`
}

type AutomationRulePayload struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	EventName   EventName        `json:"event_name,omitempty" validate:"oneof=conversation_created conversation_updated message_created"`
	Active      bool             `json:"active,omitempty"`
	Actions     []map[string]any `json:"actions,omitempty"`
	Conditions  []map[string]any `json:"conditions,omitempty"`
}

// Public client API

type PublicContactPayload struct {
	Identifier       string         `json:"identifier,omitempty"`
	IdentifierHash   string         `json:"identifier_hash,omitempty"`
	Email            string         `json:"email,omitempty" validate:"email"`
	Name             string         `json:"name,omitempty"`
	PhoneNumber      string         `json:"phone_number,omitempty"`
	AvatarURL        string         `json:"avatar_url,omitempty"`
	CustomAttributes map[string]any `json:"custom_attributes,omitempty"`
}

type PublicMessageCreate struct {
	Content string `json:"content,omitempty"`
	EchoID  string `json:"echo_id,omitempty"`
}

type PublicMessageUpdate struct {
	SubmittedValues map[string]any `json:"submitted_values,omitempty"`
}
