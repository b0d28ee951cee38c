package llm

import (
	log "log/slog"

	"mysonai/internal/api/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

// InitLLM connects to the OpenAI-compatible upstream. With no API key
// configured the process stays in demo mode and no client is created.
func InitLLM() error {
	cfg := config.Cfg.LLM

	if cfg.ApiKey == "" {
		log.Warn("no LLM api key configured, chat runs in demo mode")
		return nil
	}

	llm, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("failed to initialize LLM client", "err", err)
		return err
	}

	llmClient = llm
	return nil
}

// Configured reports whether a real upstream client exists.
func Configured() bool {
	return llmClient != nil
}
