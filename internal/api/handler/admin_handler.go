package handler

import (
	"strconv"
	"strings"

	"mysonai/internal/api/dto"
	"mysonai/internal/pkg/consts"
	"mysonai/internal/pkg/response"
	"mysonai/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	blogSvc      service.BlogService
	userSvc      service.UserService
	contactSvc   service.ContactService
	analyticsSvc service.AnalyticsService
}

func NewAdminHandler(
	blogSvc service.BlogService,
	userSvc service.UserService,
	contactSvc service.ContactService,
	analyticsSvc service.AnalyticsService,
) *AdminHandler {
	return &AdminHandler{
		blogSvc:      blogSvc,
		userSvc:      userSvc,
		contactSvc:   contactSvc,
		analyticsSvc: analyticsSvc,
	}
}

func (s *AdminHandler) ListAllPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	posts, total, err := s.blogSvc.ListAll(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"posts": posts,
		"total": total,
	})
}

func (s *AdminHandler) CreatePost(c *gin.Context) {
	var createDTO dto.CreateBlogPostDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	post, err := s.blogSvc.Create(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *AdminHandler) UpdatePost(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	var createDTO dto.CreateBlogPostDTO
	if err = c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.blogSvc.Update(c.Request.Context(), id, &createDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) DeletePost(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	if err = s.blogSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) PublishPost(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	if err = s.blogSvc.Publish(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) GeneratePost(c *gin.Context) {
	var genDTO dto.GenerateBlogPostDTO
	if err := c.ShouldBind(&genDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	draft, err := s.blogSvc.GenerateDraft(c.Request.Context(), userID, &genDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, draft)
}

func (s *AdminHandler) UploadCover(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), consts.MimePrefixImage) {
		response.Fail(c, response.BadRequest, service.ErrFileNotSupported.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	url, err := s.blogSvc.UploadCover(c.Request.Context(), id, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"cover_url": url})
}

func (s *AdminHandler) UpdateUserPlan(c *gin.Context) {
	var planDTO dto.UpdatePlanDTO
	if err := c.ShouldBind(&planDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userSvc.UpdatePlan(c.Request.Context(), &planDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) BanUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err = s.userSvc.BanUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) UnBanUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err = s.userSvc.UnBanUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) GetDailyMetrics(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	metrics, err := s.analyticsSvc.GetDailyMetrics(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}

func (s *AdminHandler) GetPlanLimits(c *gin.Context) {
	response.Success(c, s.analyticsSvc.GetPlanLimits(c.Request.Context()))
}

func (s *AdminHandler) ListContactMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	unreadOnly := c.Query("unread") == "true"

	messages, total, err := s.contactSvc.ListMessages(c.Request.Context(), page, size, unreadOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"messages": messages,
		"total":    total,
	})
}

func (s *AdminHandler) GetContactMessage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	message, err := s.contactSvc.GetMessage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, message)
}

func (s *AdminHandler) MarkContactRead(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err = s.contactSvc.MarkRead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func parseIDParam(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
