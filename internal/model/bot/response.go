package bot

// QuickReply is a one-click follow-up suggestion rendered by the storefront.
// Text is shown on the button; Prompt is the message sent when tapped.
type QuickReply struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Prompt string `json:"prompt"`
}

// Response is the assistant's output for a single user turn.
type Response struct {
	Answer       string       `json:"answer"`
	QuickReplies []QuickReply `json:"quickReplies"`
}

// DefaultQuickReplies returns the standard suggestion set used for greetings,
// acknowledgments, and fallback answers.
func DefaultQuickReplies() []QuickReply {
	return []QuickReply{
		{ID: "qr-paracetamol", Text: "Paracetamol info", Prompt: "Tell me about paracetamol"},
		{ID: "qr-delivery", Text: "Delivery options", Prompt: "How does delivery work?"},
		{ID: "qr-payment", Text: "Mobile money payment", Prompt: "How do I pay with mobile money?"},
		{ID: "qr-branches", Text: "Find a branch", Prompt: "Where are your branches located?"},
	}
}
