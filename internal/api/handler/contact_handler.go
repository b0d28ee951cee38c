package handler

import (
	"mysonai/internal/api/dto"
	"mysonai/internal/pkg/response"
	"mysonai/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

func (s *ContactHandler) Submit(c *gin.Context) {
	var contactDTO dto.ContactDTO
	if err := c.ShouldBind(&contactDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.contactSvc.Submit(c.Request.Context(), &contactDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
