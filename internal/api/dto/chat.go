package dto

// ChatMessage is one conversation turn, oldest first.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// ChatFile is an attached document whose text rides along as context.
type ChatFile struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ProductRequest is the structured multi-agent "build me a product" payload.
// Accepted for forward compatibility; the pipeline treats it as extra context.
type ProductRequest struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Messages        []ChatMessage   `json:"messages" binding:"required,min=1"`
	SelectedAgent   string          `json:"selectedAgent"`
	ConversationID  string          `json:"conversationId"`
	Files           []ChatFile      `json:"files"`
	EnableWebSearch bool            `json:"enableWebSearch"`
	ProductRequest  *ProductRequest `json:"productRequest"`
}

// ChatResponse is the success payload.
type ChatResponse struct {
	Message          string `json:"message"`
	Agent            string `json:"agent"`
	RecommendedAgent string `json:"recommendedAgent,omitempty"`
	ConversationID   string `json:"conversationId"`
	TokensUsed       int64  `json:"tokensUsed"`
}

// QuotaRejection is the structured 429-equivalent payload.
type QuotaRejection struct {
	Error           string `json:"error"`
	LimitType       string `json:"limitType"`
	Current         int64  `json:"current"`
	Limit           int64  `json:"limit"`
	UpgradeRequired bool   `json:"upgradeRequired"`
}

// SafetyRejection is the structured 400-equivalent payload.
type SafetyRejection struct {
	Error       string   `json:"error"`
	Violations  []string `json:"violations"`
	Suggestions []string `json:"suggestions"`
}

// AgentDTO is the public persona listing. System prompts stay server side.
type AgentDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ChatHistoryItem is one transcript entry returned by the history endpoint.
type ChatHistoryItem struct {
	Role      string `json:"role"`
	Agent     string `json:"agent,omitempty"`
	Content   string `json:"content"`
	Tokens    int64  `json:"tokens"`
	CreatedAt string `json:"createdAt"`
}
