package llm

// RoleUser is the only message role the planner sends
const RoleUser = "user"

// Message is a single turn of the conversation sent to the model
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one generation exchange: a model, an output bound and the messages.
type Request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// NewUserRequest builds a request carrying a single user message
func NewUserRequest(model string, maxTokens int, text string) Request {
	return Request{
		Model:     model,
		MaxTokens: maxTokens,
		Messages:  []Message{{Role: RoleUser, Content: text}},
	}
}

// Prompt returns the text of the first user message, or "" if there is none.
func (r Request) Prompt() string {
	for _, m := range r.Messages {
		if m.Role == RoleUser {
			return m.Content
		}
	}
	return ""
}
