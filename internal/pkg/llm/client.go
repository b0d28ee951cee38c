package llm

import (
	"context"
	"errors"

	"mysonai/internal/api/config"
	"mysonai/internal/pkg/agent"

	"github.com/tmc/langchaingo/llms"
)

// Message is one conversation turn handed to the chat client.
type Message struct {
	Role    string
	Content string
}

// Completion is the upstream answer plus its token cost.
type Completion struct {
	Content    string
	TokensUsed int64
}

// ChatClient is the single capability the orchestrator talks to. The real
// and demo implementations are chosen at construction time, so the request
// pipeline never branches on whether a key is configured.
type ChatClient interface {
	Complete(ctx context.Context, agentID string, systemPrompt string, history []Message) (*Completion, error)
}

// NewChatClient picks the implementation matching the process configuration.
func NewChatClient(registry *agent.Registry) ChatClient {
	if Configured() {
		return &openAIChatClient{}
	}
	return &demoChatClient{registry: registry}
}

type openAIChatClient struct{}

func (c *openAIChatClient) Complete(ctx context.Context, agentID string, systemPrompt string, history []Message) (*Completion, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)

	messages := make([]llms.MessageContent, 0, len(history)+1)
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
	})
	for _, m := range history {
		role := llms.ChatMessageTypeHuman
		if m.Role == "assistant" {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(m.Content)},
		})
	}

	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion from upstream")
	}

	choice := resp.Choices[0]
	return &Completion{
		Content:    choice.Content,
		TokensUsed: totalTokens(choice.GenerationInfo),
	}, nil
}

// totalTokens digs the token count out of the provider metadata. Providers
// differ on key casing, so both spellings are checked.
func totalTokens(info map[string]any) int64 {
	for _, key := range []string{"TotalTokens", "total_tokens"} {
		switch v := info[key].(type) {
		case int:
			return int64(v)
		case int64:
			return v
		case float64:
			return int64(v)
		}
	}
	return 0
}

// demoChatClient answers with canned persona-flavored text and charges no
// tokens. It keeps redirect and safety behaviour testable without a key.
type demoChatClient struct {
	registry *agent.Registry
}

func (c *demoChatClient) Complete(ctx context.Context, agentID string, systemPrompt string, history []Message) (*Completion, error) {
	a, ok := c.registry.Get(agentID)
	if !ok {
		return &Completion{
			Content:    "Merhaba! Şu anda demo modundayız; gerçek yanıtlar için sistemin yapılandırılması gerekiyor.",
			TokensUsed: 0,
		}, nil
	}
	return &Completion{Content: a.DemoReply, TokensUsed: 0}, nil
}
