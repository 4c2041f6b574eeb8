package bootstrap

import (
	"log"

	"survey-interview-be/internal/config"
	"survey-interview-be/internal/controller"
	"survey-interview-be/internal/metrics"
	"survey-interview-be/internal/pkg/logger"
	"survey-interview-be/internal/repository/contract"
	"survey-interview-be/internal/repository/implementation"
	"survey-interview-be/internal/repository/memory"
	"survey-interview-be/internal/service"
	"survey-interview-be/pkg/elevenlabs"
	"survey-interview-be/pkg/segment"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WebhookController   controller.IWebhookController
	InterviewController controller.IInterviewController
	HealthController    controller.IHealthController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

// NewContainer wires the dependency graph. db may be nil, in which case the
// in-memory session store backs the service (local development without
// Postgres).
func NewContainer(db *gorm.DB, surveyCfg *segment.SurveyConfig, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)
	collector := metrics.NewMetrics()

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Session store
	var sessionRepo contract.SessionRepository
	if db != nil {
		sessionRepo = implementation.NewSessionRepository(db)
	} else {
		log.Println("[WARN] No database configured, using in-memory session store")
		sessionRepo = memory.NewSessionRepository()
	}

	// 4. External collaborators
	var conversationProvider elevenlabs.ConversationProvider
	if cfg.ElevenLabs.BaseURL != "" {
		conversationProvider = elevenlabs.NewClientWithBaseURL(cfg.ElevenLabs.APIKey, cfg.ElevenLabs.BaseURL)
	} else {
		conversationProvider = elevenlabs.NewClient(cfg.ElevenLabs.APIKey)
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.SessionEventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.SessionEventsTopic, collector, eventLogger)

	webhookService := service.NewWebhookService(sessionRepo, surveyCfg, publisherService, collector, sysLogger)
	interviewService := service.NewInterviewService(sessionRepo, conversationProvider, publisherService, collector, sysLogger)

	// 6. Controllers
	return &Container{
		WebhookController:   controller.NewWebhookController(webhookService, sysLogger),
		InterviewController: controller.NewInterviewController(interviewService, surveyCfg.Interview, cfg.ElevenLabs.AgentId),
		HealthController:    controller.NewHealthController(collector),

		ConsumerService: consumerService,
	}
}
