package api

import (
	"net/http"

	"mysonai/internal/api/middleware"
	"mysonai/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// chat surface is open to visitors, metering kicks in when signed in
		chatGroup := apiGroup.Group("")
		chatGroup.Use(middleware.AuthOptionalMiddleware())
		{
			chatGroup.POST("/chat", group.ChatHandler.Chat)
		}

		apiGroup.GET("/agents", group.ChatHandler.ListAgents)
		apiGroup.POST("/contact", group.ContactHandler.Submit)

		blogGroup := apiGroup.Group("/blog")
		{
			blogGroup.GET("/posts", group.BlogHandler.ListPublished)
			blogGroup.GET("/posts/:slug", group.BlogHandler.GetBySlug)
			blogGroup.GET("/search", group.BlogHandler.Search)
		}

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/me", group.UserHandler.Me)
				authGroup.GET("/usage", group.ChatHandler.GetUsage)
				authGroup.GET("/conversations", group.ChatHandler.ListConversations)
				authGroup.GET("/conversations/:id", group.ChatHandler.GetHistory)
			}
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("admin"))
		{
			adminGroup.GET("/posts", group.AdminHandler.ListAllPosts)
			adminGroup.POST("/posts", group.AdminHandler.CreatePost)
			adminGroup.PUT("/posts/:id", group.AdminHandler.UpdatePost)
			adminGroup.DELETE("/posts/:id", group.AdminHandler.DeletePost)
			adminGroup.POST("/posts/:id/publish", group.AdminHandler.PublishPost)
			adminGroup.POST("/posts/:id/cover", group.AdminHandler.UploadCover)
			adminGroup.POST("/posts/generate", group.AdminHandler.GeneratePost)

			adminGroup.PUT("/users/plan", group.AdminHandler.UpdateUserPlan)
			adminGroup.POST("/users/:id/ban", group.AdminHandler.BanUser)
			adminGroup.POST("/users/:id/unban", group.AdminHandler.UnBanUser)

			adminGroup.GET("/metrics/daily", group.AdminHandler.GetDailyMetrics)
			adminGroup.GET("/plans", group.AdminHandler.GetPlanLimits)

			adminGroup.GET("/contact", group.AdminHandler.ListContactMessages)
			adminGroup.GET("/contact/:id", group.AdminHandler.GetContactMessage)
			adminGroup.POST("/contact/:id/read", group.AdminHandler.MarkContactRead)
		}
	}

	return r
}
