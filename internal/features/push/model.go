package push

// Payload is the notification template handed to the composer
type Payload struct {
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	ClickAction string            `json:"clickAction,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
}

// Target selects exactly one addressing mode for a delivery
type Target struct {
	Token    string
	Tokens   []string
	Platform string // ios | android | all
	Topic    string // e.g. audience_<name>
}

// Result classifies the provider response for one delivery
type Result struct {
	MessageID    string `json:"messageId,omitempty"`
	SuccessCount int    `json:"success"`
	FailureCount int    `json:"failure"`
	TotalTokens  int    `json:"totalTokens,omitempty"`
	ValidTokens  int    `json:"validTokens,omitempty"`
}

// Recipients is the per-delivery recipient count recorded in rule history
func (r *Result) Recipients() int {
	if r == nil {
		return 0
	}
	if r.TotalTokens > 0 {
		return r.SuccessCount
	}
	// single token / topic / condition sends count as one logical recipient
	return 1
}

// SendRequest is the body of POST /api/notifications/send
type SendRequest struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	ImageURL string            `json:"imageUrl"`
	Data     map[string]string `json:"data"`
	Token    string            `json:"token"`
	Tokens   []string          `json:"tokens"`
	Platform string            `json:"platform"`
}
