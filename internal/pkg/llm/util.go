package llm

import (
	"context"
	"errors"
	log "log/slog"

	"mysonai/internal/api/config"

	"github.com/tmc/langchaingo/llms"
)

// fetchModel runs a single system+user exchange against the upstream model.
func fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userPrompt)},
		},
	}
	return llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(temp),
	)
}

// GenerateText is the one-shot helper used by the blog draft generator.
// It returns an error when no real client is configured.
func GenerateText(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	if !Configured() {
		return "", errors.New("no LLM api key configured")
	}

	resp, err := fetchModel(ctx, systemPrompt, userPrompt, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "LLM request failed", "err", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion from upstream")
	}
	return resp.Choices[0].Content, nil
}
