package promptguard

import (
	"context"
	log "log/slog"
	"unicode/utf8"
)

// Monitor records validation outcomes for the security audit trail.
// Logging failures must never block a chat response, so implementations are
// fire-and-forget.
type Monitor interface {
	LogPromptUsage(ctx context.Context, agentID string, userMessage string, result ValidationResult, context string)
}

type slogMonitor struct{}

// NewMonitor returns the default monitor writing to the structured log.
func NewMonitor() Monitor {
	return &slogMonitor{}
}

func (m *slogMonitor) LogPromptUsage(ctx context.Context, agentID string, userMessage string, result ValidationResult, usageContext string) {
	preview := truncatePreview(userMessage, 200)

	fields := []any{
		log.String("agent", agentID),
		log.String("risk", string(result.RiskLevel)),
		log.Int("violation_count", len(result.Violations)),
		log.String("context", usageContext),
		log.String("message_preview", preview),
	}

	if result.RiskLevel == RiskHigh {
		log.WarnContext(ctx, "prompt blocked", fields...)
		return
	}
	log.InfoContext(ctx, "prompt validated", fields...)
}

// truncatePreview shortens the message for logging without splitting a
// multi-byte rune, Turkish text lands on one regularly.
func truncatePreview(message string, limit int) string {
	if len(message) <= limit {
		return message
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}
	return message[:cut] + "...[truncated]"
}
