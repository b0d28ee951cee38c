package wire

import (
	"mysonai/internal/api"
	"mysonai/internal/api/config"
	"mysonai/internal/api/handler"
	"mysonai/internal/job"
	"mysonai/internal/pkg/agent"
	"mysonai/internal/pkg/cron"
	"mysonai/internal/pkg/es"
	"mysonai/internal/pkg/kafka"
	"mysonai/internal/pkg/llm"
	mongopkg "mysonai/internal/pkg/mongo"
	"mysonai/internal/pkg/promptguard"
	"mysonai/internal/repository"
	"mysonai/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer holds the top level components the process runs.
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	usageRepo := repository.NewUsageRepo(db)
	blogRepo := repository.NewBlogRepo(db)
	metricRepo := repository.NewMetricRepo(db)
	contactRepo := repository.NewContactRepo(db)

	transcriptRepo := mongopkg.NewTranscriptRepo(mongoDB)
	blogSearchRepo := es.NewBlogSearchRepo(es.Client)

	registry := agent.DefaultRegistry()
	chatClient := llm.NewChatClient(registry)
	monitor := promptguard.NewMonitor()
	webTools := llm.NewWebTools()

	usageProducer, err := kafka.NewUsageProducer(cfg)
	if err != nil {
		return nil, err
	}

	usageService := service.NewUsageService(usageRepo, cfg)
	userService := service.NewUserService(userRepo)
	chatService := service.NewChatService(
		registry, chatClient, monitor,
		usageService, userRepo, transcriptRepo, usageProducer, webTools, cfg,
	)
	blogService := service.NewBlogService(blogRepo, blogSearchRepo, webTools)
	contactService := service.NewContactService(contactRepo)
	analyticsService := service.NewAnalyticsService(metricRepo, cfg)

	handlers := &api.HandlersGroup{
		ChatHandler:    handler.NewChatHandler(chatService, usageService, userService),
		UserHandler:    handler.NewUserHandler(userService),
		BlogHandler:    handler.NewBlogHandler(blogService),
		ContactHandler: handler.NewContactHandler(contactService),
		AdminHandler:   handler.NewAdminHandler(blogService, userService, contactService, analyticsService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		cfg,
		job.NewMetricRollupJob(metricRepo),
		job.NewUsageResetJob(usageRepo),
		job.NewAutoBlogJob(blogService, blogRepo, cfg),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
