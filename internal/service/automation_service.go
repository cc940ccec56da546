// FILE: internal/service/automation_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"sbl-onboarding-be/internal/pkg/logger"
	"sbl-onboarding-be/internal/pkg/mailer"
	"sbl-onboarding-be/pkg/events"
	pkgNats "sbl-onboarding-be/pkg/nats"
	"sbl-onboarding-be/pkg/webhook"

	"github.com/google/uuid"
)

// AutomationService is the background worker that fans terminal domain
// events out to the n8n webhook and the mailer. It consumes from the
// durable event stream so a restart never drops a notification.
type AutomationService struct {
	subscriber         *pkgNats.Subscriber
	webhookClient      *webhook.Client
	emailService       mailer.IEmailService
	abandonmentService IAbandonmentService
	logger             logger.ILogger
}

func NewAutomationService(
	subscriber *pkgNats.Subscriber,
	webhookClient *webhook.Client,
	emailService mailer.IEmailService,
	abandonmentService IAbandonmentService,
	log logger.ILogger,
) *AutomationService {
	return &AutomationService{
		subscriber:         subscriber,
		webhookClient:      webhookClient,
		emailService:       emailService,
		abandonmentService: abandonmentService,
		logger:             log,
	}
}

// Start begins listening to the event bus.
func (s *AutomationService) Start() {
	err := s.subscriber.Subscribe(pkgNats.SubjectPrefix+">", "automation-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("AutomationService", "Failed to start automation subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("AutomationService", "Automation service started, listening to events.>", nil)
}

func (s *AutomationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), pkgNats.SubjectPrefix)
	s.logger.Info("AutomationService", fmt.Sprintf("Processing event: %s", typeCode), map[string]interface{}{"type": typeCode})

	switch typeCode {
	case EventFormAbandoned:
		return s.handleAbandonment(ctx, event.Payload())
	case EventFormCompleted:
		return s.handleCompletion(ctx, event.Payload())
	case EventDocumentReviewed:
		return s.notifyWebhook(ctx, "document_reviewed", event.Payload())
	default:
		return nil
	}
}

func (s *AutomationService) handleAbandonment(ctx context.Context, payload map[string]interface{}) error {
	if err := s.notifyWebhook(ctx, "form_abandoned", payload); err != nil {
		// The webhook feeds the automation workflows; without it the
		// message must be retried.
		return err
	}

	email, _ := payload["email"].(string)
	fullName, _ := payload["full_name"].(string)
	returnURL, _ := payload["return_url"].(string)
	if email != "" {
		if err := s.emailService.SendAbandonmentFollowup(email, fullName, returnURL); err != nil {
			s.logger.Warn("AutomationService", "Followup email failed", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
			// Email failure is not retriable via the stream, the webhook
			// already triggered the external automation.
		} else {
			s.recordFollowup(ctx, payload, "email")
		}
	}
	return nil
}

func (s *AutomationService) handleCompletion(ctx context.Context, payload map[string]interface{}) error {
	if err := s.notifyWebhook(ctx, "form_completed", payload); err != nil {
		return err
	}

	email, _ := payload["email"].(string)
	fullName, _ := payload["full_name"].(string)
	if email != "" {
		if err := s.emailService.SendCompletionConfirmation(email, fullName); err != nil {
			s.logger.Warn("AutomationService", "Confirmation email failed", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
		}
	}
	return nil
}

func (s *AutomationService) notifyWebhook(ctx context.Context, event string, payload map[string]interface{}) error {
	if s.webhookClient == nil || !s.webhookClient.Enabled() {
		return nil
	}
	if err := s.webhookClient.Notify(ctx, event, payload); err != nil {
		s.logger.Error("AutomationService", "Webhook delivery failed", map[string]interface{}{
			"event": event,
			"error": err.Error(),
		})
		return err
	}
	return nil
}

func (s *AutomationService) recordFollowup(ctx context.Context, payload map[string]interface{}, followupType string) {
	idStr, _ := payload["abandonment_id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}
	if err := s.abandonmentService.MarkFollowupSent(ctx, id, followupType); err != nil {
		s.logger.Warn("AutomationService", "Failed to record followup", map[string]interface{}{
			"abandonment_id": idStr,
			"error":          err.Error(),
		})
	}
}
