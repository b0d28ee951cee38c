package service

import (
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"mysonai/internal/api/config"
	"mysonai/internal/api/dto"
	"mysonai/internal/model"
	"mysonai/internal/pkg/agent"
	"mysonai/internal/pkg/consts"
	"mysonai/internal/pkg/kafka"
	"mysonai/internal/pkg/llm"
	"mysonai/internal/pkg/mongo"
	"mysonai/internal/pkg/promptguard"
	"mysonai/internal/repository"

	"github.com/google/uuid"
)

const (
	maxSearchResults = 5
	maxHistoryTurns  = 20
	maxConversations = 50
)

type ChatService interface {
	Chat(ctx context.Context, userID uint64, req *dto.ChatRequest) (*dto.ChatResponse, error)
	ListAgents(ctx context.Context) []*agent.Agent
	GetHistory(ctx context.Context, userID uint64, conversationID string) ([]*dto.ChatHistoryItem, error)
	ListConversations(ctx context.Context, userID uint64) ([]string, error)
}

type ChatServiceImpl struct {
	registry       *agent.Registry
	chatClient     llm.ChatClient
	monitor        promptguard.Monitor
	usageService   UsageService
	userRepo       repository.UserRepo
	transcriptRepo mongo.TranscriptRepo
	usageProducer  kafka.UsageProducer
	webTools       *llm.WebTools
	cfg            *config.Config
	demoMode       bool
}

func NewChatService(
	registry *agent.Registry,
	chatClient llm.ChatClient,
	monitor promptguard.Monitor,
	usageService UsageService,
	userRepo repository.UserRepo,
	transcriptRepo mongo.TranscriptRepo,
	usageProducer kafka.UsageProducer,
	webTools *llm.WebTools,
	cfg *config.Config,
) ChatService {
	return &ChatServiceImpl{
		registry:       registry,
		chatClient:     chatClient,
		monitor:        monitor,
		usageService:   usageService,
		userRepo:       userRepo,
		transcriptRepo: transcriptRepo,
		usageProducer:  usageProducer,
		webTools:       webTools,
		cfg:            cfg,
		demoMode:       !llm.Configured(),
	}
}

// Chat runs the full request pipeline: resolve agent, usage gate, redirect
// check, safety validation, completion, then metering on success only.
func (s *ChatServiceImpl) Chat(ctx context.Context, userID uint64, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	userMessage := latestUserMessage(req.Messages)
	if userMessage == "" {
		return nil, ErrParamInvalid
	}

	agentID := req.SelectedAgent
	if agentID == "" {
		agentID = consts.DefaultAgentID
	}
	persona, ok := s.registry.Get(agentID)
	if !ok {
		return nil, ErrAgentNotFound
	}

	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan := consts.PlanFree
	if user != nil {
		if user.IsBan {
			return nil, ErrUserBan
		}
		plan = user.Plan
	}

	rejection, err := s.usageService.CheckLimits(ctx, userID, plan)
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return nil, &QuotaExceededError{Rejection: rejection}
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	// redirect before any model work: a confident match for another persona
	// costs the user nothing
	if rec := s.registry.Recommend(agentID, userMessage); rec != nil {
		return &dto.ChatResponse{
			Message:          s.registry.RedirectMessage(persona, rec, userMessage),
			Agent:            agentID,
			RecommendedAgent: rec.ID,
			ConversationID:   conversationID,
			TokensUsed:       0,
		}, nil
	}

	result := promptguard.Validate(agentID, persona.SystemPrompt, userMessage)
	s.monitor.LogPromptUsage(ctx, agentID, userMessage, result, "chat")
	if result.RiskLevel == promptguard.RiskHigh {
		return nil, &PromptRejectedError{Rejection: &dto.SafetyRejection{
			Error:       "Mesajınız güvenlik kontrolünden geçemedi. Lütfen sorunuzu farklı şekilde ifade edin.",
			Violations:  result.Violations,
			Suggestions: result.Suggestions,
		}}
	}

	systemPrompt := promptguard.SecurePrompt(agentID, persona.SystemPrompt, userMessage)
	systemPrompt = s.enrichPrompt(ctx, systemPrompt, req, userMessage)

	history := toLLMHistory(req.Messages)

	completion, err := s.chatClient.Complete(ctx, agentID, systemPrompt, history)
	if err != nil {
		log.ErrorContext(ctx, "chat completion failed", "agent", agentID, "err", err)
		return nil, err
	}

	// metering happens only after a successful completion
	if err = s.usageService.AddUsage(ctx, userID, 1, completion.TokensUsed); err != nil {
		log.ErrorContext(ctx, "failed to record usage", "userID", userID, "err", err)
	}

	s.recordExchange(ctx, userID, agentID, conversationID, userMessage, completion, result)

	return &dto.ChatResponse{
		Message:        completion.Content,
		Agent:          agentID,
		ConversationID: conversationID,
		TokensUsed:     completion.TokensUsed,
	}, nil
}

func (s *ChatServiceImpl) ListAgents(ctx context.Context) []*agent.Agent {
	return s.registry.List()
}

func (s *ChatServiceImpl) GetHistory(ctx context.Context, userID uint64, conversationID string) ([]*dto.ChatHistoryItem, error) {
	entries, err := s.transcriptRepo.GetConversation(ctx, conversationID, maxHistoryTurns)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrConversationNotFound
	}
	if entries[0].UserID != userID {
		return nil, UnauthorizedError
	}

	items := make([]*dto.ChatHistoryItem, 0, len(entries)*2)
	for _, e := range entries {
		items = append(items, &dto.ChatHistoryItem{
			Role:      "user",
			Content:   e.UserMessage,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
		items = append(items, &dto.ChatHistoryItem{
			Role:      "assistant",
			Agent:     e.AgentID,
			Content:   e.AssistantReply,
			Tokens:    e.TokensUsed,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return items, nil
}

func (s *ChatServiceImpl) ListConversations(ctx context.Context, userID uint64) ([]string, error) {
	return s.transcriptRepo.ListUserConversations(ctx, userID, maxConversations)
}

func (s *ChatServiceImpl) resolveUser(ctx context.Context, userID uint64) (*model.User, error) {
	if userID == 0 {
		return nil, nil
	}
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		if s.cfg.Usage.StrictEnforcement {
			return nil, err
		}
		// fail open: a broken user store must not take the chat surface
		// down, the request proceeds on the free plan
		log.WarnContext(ctx, "user lookup failed, allowing request", "userID", userID, "err", err)
		return nil, nil
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// enrichPrompt appends optional context: attached file text, the structured
// product request, and live search snippets when the user asked for them.
func (s *ChatServiceImpl) enrichPrompt(ctx context.Context, systemPrompt string, req *dto.ChatRequest, userMessage string) string {
	var builder strings.Builder
	builder.WriteString(systemPrompt)

	for _, f := range req.Files {
		if f.Content == "" {
			continue
		}
		builder.WriteString(fmt.Sprintf("\n\nKullanıcının eklediği dosya (%s):\n%s", f.Name, f.Content))
	}

	if pr := req.ProductRequest; pr != nil && pr.Description != "" {
		builder.WriteString(fmt.Sprintf("\n\nKullanıcının ürün talebi (%s): %s", pr.Kind, pr.Description))
	}

	if req.EnableWebSearch && s.webTools != nil {
		if snippets := s.webTools.Search(ctx, userMessage, maxSearchResults); snippets != "" {
			builder.WriteString("\n\nGüncel web arama sonuçları:\n")
			builder.WriteString(snippets)
		}
	}

	return builder.String()
}

// recordExchange persists the transcript and emits the usage event. Both are
// best effort; the reply is already on its way to the user.
func (s *ChatServiceImpl) recordExchange(ctx context.Context, userID uint64, agentID string, conversationID string, userMessage string, completion *llm.Completion, result promptguard.ValidationResult) {
	entry := &mongo.TranscriptEntry{
		ConversationID: conversationID,
		UserID:         userID,
		AgentID:        agentID,
		UserMessage:    userMessage,
		AssistantReply: completion.Content,
		TokensUsed:     completion.TokensUsed,
		RiskLevel:      string(result.RiskLevel),
		DemoMode:       s.demoMode,
		CreatedAt:      time.Now(),
	}
	if err := s.transcriptRepo.SaveEntry(ctx, entry); err != nil {
		log.WarnContext(ctx, "failed to save transcript entry", "conversationID", conversationID, "err", err)
	}

	event := &kafka.UsageEvent{
		UserID:    userID,
		AgentID:   agentID,
		Messages:  1,
		Tokens:    completion.TokensUsed,
		DemoMode:  s.demoMode,
		Timestamp: time.Now(),
	}
	if err := s.usageProducer.Publish(ctx, event); err != nil {
		log.WarnContext(ctx, "failed to publish usage event", "userID", userID, "err", err)
	}
}

// latestUserMessage walks the turns back to front for the newest user entry.
func latestUserMessage(messages []dto.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return strings.TrimSpace(messages[i].Content)
		}
	}
	return ""
}

func toLLMHistory(messages []dto.ChatMessage) []llm.Message {
	start := 0
	if len(messages) > maxHistoryTurns {
		start = len(messages) - maxHistoryTurns
	}

	history := make([]llm.Message, 0, len(messages)-start)
	for _, m := range messages[start:] {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}
	return history
}
