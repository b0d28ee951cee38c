package llm_test

import (
	"context"
	"strings"
	"testing"

	"mysonai/internal/pkg/agent"
	"mysonai/internal/pkg/llm"
)

// Without InitLLM the constructor must hand back the canned demo client.
func TestNewChatClientDemoWhenUnconfigured(t *testing.T) {
	registry := agent.DefaultRegistry()
	client := llm.NewChatClient(registry)

	persona, ok := registry.Get("tacettin")
	if !ok {
		t.Fatal("tacettin missing from default registry")
	}

	completion, err := client.Complete(context.Background(), "tacettin", persona.SystemPrompt, nil)
	if err != nil {
		t.Fatalf("demo completion failed: %v", err)
	}
	if completion.Content != persona.DemoReply {
		t.Fatalf("expected tacettin demo reply, got %q", completion.Content)
	}
	if completion.TokensUsed != 0 {
		t.Fatalf("demo replies are free, got %d tokens", completion.TokensUsed)
	}
}

func TestDemoClientUnknownAgentFallback(t *testing.T) {
	client := llm.NewChatClient(agent.DefaultRegistry())

	completion, err := client.Complete(context.Background(), "nobody", "", nil)
	if err != nil {
		t.Fatalf("demo completion failed: %v", err)
	}
	if completion.Content == "" || !strings.Contains(completion.Content, "demo") {
		t.Fatalf("expected generic demo fallback, got %q", completion.Content)
	}
	if completion.TokensUsed != 0 {
		t.Fatalf("demo replies are free, got %d tokens", completion.TokensUsed)
	}
}
