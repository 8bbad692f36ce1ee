package domain

// ChatRole type
type ChatRole string

const (
	// ChatRoleSystem const
	ChatRoleSystem ChatRole = "system"
	// ChatRoleUser const
	ChatRoleUser ChatRole = "user"
	// ChatRoleAssistant const
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage struct - One element of an instruction sequence
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// ChatCompletionRequest struct - Domain request for reply generation
type ChatCompletionRequest struct {
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float64
}

// ChatCompletionResponse struct - Domain response from reply generation
type ChatCompletionResponse struct {
	Content     string
	Model       string
	TotalTokens int
}
