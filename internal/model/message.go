package model

// Message roles used across the conversation store and the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MessageKind classifies a normalized inbound WhatsApp event.
type MessageKind string

const (
	KindText   MessageKind = "text"
	KindButton MessageKind = "interactive_button"
	KindList   MessageKind = "interactive_list"
	KindImage  MessageKind = "image"
)

// InboundMessage is the transport-agnostic event handed to the agent.
// For button and list events Text already carries the equivalent utterance.
type InboundMessage struct {
	UserID    string
	UserName  string
	MessageID string
	Kind      MessageKind
	Text      string
}

// ReplyButton is one interactive quick-reply choice attached to a reply.
type ReplyButton struct {
	ID    string
	Title string
}

// Location is a map pin attached to a reply.
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
	Address   string
}

// OutboundMessage is one reply unit: text plus optional attachments. The
// transport decides how each attachment maps onto the delivery channel.
type OutboundMessage struct {
	UserID   string
	Text     string
	ImageRef string
	Buttons  []ReplyButton
	Location *Location
}
