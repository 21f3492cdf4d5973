package domain

// Chat roles understood by OpenAI-compatible completion APIs.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is a single role-tagged message sent to or received from the
// completion API.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
