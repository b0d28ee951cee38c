package handler

import (
	"mysonai/internal/api/dto"
	"mysonai/internal/pkg/response"
	"mysonai/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatSvc  service.ChatService
	usageSvc service.UsageService
	userSvc  service.UserService
}

func NewChatHandler(chatSvc service.ChatService, usageSvc service.UsageService, userSvc service.UserService) *ChatHandler {
	return &ChatHandler{
		chatSvc:  chatSvc,
		usageSvc: usageSvc,
		userSvc:  userSvc,
	}
}

// Chat runs one exchange through the request pipeline. Works for anonymous
// visitors too; only signed-in users are metered.
func (s *ChatHandler) Chat(c *gin.Context) {
	var chatDTO dto.ChatRequest
	if err := c.ShouldBind(&chatDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	resp, err := s.chatSvc.Chat(c.Request.Context(), userID, &chatDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (s *ChatHandler) ListAgents(c *gin.Context) {
	agents := s.chatSvc.ListAgents(c.Request.Context())

	items := make([]*dto.AgentDTO, 0, len(agents))
	for _, a := range agents {
		items = append(items, &dto.AgentDTO{ID: a.ID, Name: a.Name, Role: a.Role})
	}
	response.Success(c, items)
}

func (s *ChatHandler) GetHistory(c *gin.Context) {
	conversationID := c.Param("id")
	if conversationID == "" {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	userID := c.GetUint64("user_id")
	items, err := s.chatSvc.GetHistory(c.Request.Context(), userID, conversationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *ChatHandler) ListConversations(c *gin.Context) {
	userID := c.GetUint64("user_id")

	ids, err := s.chatSvc.ListConversations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ids)
}

func (s *ChatHandler) GetUsage(c *gin.Context) {
	userID := c.GetUint64("user_id")

	info, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	usage, err := s.usageSvc.GetUsage(c.Request.Context(), userID, info.Plan)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, usage)
}
