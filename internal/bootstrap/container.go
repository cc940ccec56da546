package bootstrap

import (
	"context"
	"log"

	"sbl-onboarding-be/internal/config"
	"sbl-onboarding-be/internal/controller"
	"sbl-onboarding-be/internal/pkg/logger"
	"sbl-onboarding-be/internal/pkg/mailer"
	"sbl-onboarding-be/internal/repository/cache"
	"sbl-onboarding-be/internal/repository/unitofwork"
	"sbl-onboarding-be/internal/service"
	"sbl-onboarding-be/pkg/storage"
	"sbl-onboarding-be/pkg/webhook"

	pkgNats "sbl-onboarding-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	OnboardingController controller.IOnboardingController
	DocumentController   controller.IDocumentController
	ReviewController     controller.IReviewController

	// Background Services (Exposed for main.go to run)
	ConsumerService    service.IConsumerService
	AbandonmentService service.IAbandonmentService
	AutomationService  *service.AutomationService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Progress cache: Redis by default, in-memory when running local only.
	var progressCache cache.ProgressCache
	if cfg.Onboarding.LocalOnly {
		progressCache = cache.NewMemoryProgressCache(cfg.Onboarding.InactivityTimeout * 24)
		log.Printf("[INFO] Using in-memory progress cache (local only mode)")
	} else {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		progressCache = cache.NewRedisProgressCache(rdb, 0) // sessions do not expire server side
	}

	// Object storage for candidate documents
	objectStore, err := storage.NewMinioStore(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.UseSSL,
		cfg.Storage.Bucket,
		cfg.Storage.PublicURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}

	webhookClient := webhook.NewClient(cfg.Automation.WebhookURL)
	if !webhookClient.Enabled() {
		log.Printf("[WARN] N8N_WEBHOOK_URL not configured, automation notifications disabled")
	}

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Onboarding.SyncTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Onboarding.SyncTopic,
		uowFactory,
	)

	onboardingService := service.NewOnboardingService(
		uowFactory,
		progressCache,
		publisherService,
		natsPub,
	)
	documentService := service.NewDocumentService(
		uowFactory,
		progressCache,
		objectStore,
		natsPub,
	)

	sweeperLogger := logger.NewIsolatedLogger("logs/abandonment.log")
	abandonmentService := service.NewAbandonmentService(
		uowFactory,
		natsPub,
		sweeperLogger,
		cfg.Onboarding.InactivityTimeout,
		cfg.Onboarding.SweepInterval,
		cfg.App.ClientURL,
	)

	var automationService *service.AutomationService
	if natsSub != nil {
		automationService = service.NewAutomationService(
			natsSub,
			webhookClient,
			emailService,
			abandonmentService,
			sysLogger,
		)
		go automationService.Start()
	}

	// 4. Controllers
	return &Container{
		OnboardingController: controller.NewOnboardingController(onboardingService),
		DocumentController:   controller.NewDocumentController(documentService),
		ReviewController:     controller.NewReviewController(documentService, abandonmentService),

		ConsumerService:    consumerService,
		AbandonmentService: abandonmentService,
		AutomationService:  automationService,
	}
}
