package mongo

import (
	"time"
)

// TranscriptEntry is one user/assistant exchange inside a conversation.
type TranscriptEntry struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversationId"`
	UserID         uint64    `bson:"user_id,omitempty" json:"userId"`
	AgentID        string    `bson:"agent_id" json:"agentId"`
	UserMessage    string    `bson:"user_message" json:"userMessage"`
	AssistantReply string    `bson:"assistant_reply" json:"assistantReply"`
	TokensUsed     int64     `bson:"tokens_used" json:"tokensUsed"`
	RiskLevel      string    `bson:"risk_level" json:"riskLevel"`
	DemoMode       bool      `bson:"demo_mode" json:"demoMode"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}
