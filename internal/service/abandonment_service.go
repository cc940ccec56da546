// FILE: internal/service/abandonment_service.go
package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"sbl-onboarding-be/internal/dto"
	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/pkg/logger"
	"sbl-onboarding-be/internal/pkg/serverutils"
	"sbl-onboarding-be/internal/repository/specification"
	"sbl-onboarding-be/internal/repository/unitofwork"
	"sbl-onboarding-be/pkg/events"
	pkgNats "sbl-onboarding-be/pkg/nats"

	"github.com/google/uuid"
)

type IAbandonmentService interface {
	Run(ctx context.Context)
	Sweep(ctx context.Context) (int, error)
	List(ctx context.Context, pendingOnly bool) ([]*dto.AbandonmentResponse, error)
	MarkFollowupSent(ctx context.Context, id uuid.UUID, followupType string) error
}

// abandonmentService periodically marks stale submissions as abandoned
// and queues them for follow up.
type abandonmentService struct {
	uowFactory        unitofwork.RepositoryFactory
	eventPublisher    *pkgNats.Publisher
	logger            logger.ILogger
	inactivityTimeout time.Duration
	sweepInterval     time.Duration
	appURL            string
}

func NewAbandonmentService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
	inactivityTimeout time.Duration,
	sweepInterval time.Duration,
	appURL string,
) IAbandonmentService {
	return &abandonmentService{
		uowFactory:        uowFactory,
		eventPublisher:    eventPublisher,
		logger:            log,
		inactivityTimeout: inactivityTimeout,
		sweepInterval:     sweepInterval,
		appURL:            appURL,
	}
}

// Run blocks until the context is cancelled, sweeping on every tick.
// Callers start it in its own goroutine.
func (s *abandonmentService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := s.Sweep(ctx)
			if err != nil {
				s.logger.Error("abandonment", "Sweep failed", map[string]interface{}{"error": err.Error()})
				continue
			}
			if count > 0 {
				s.logger.Info("abandonment", "Sweep marked submissions abandoned", map[string]interface{}{"count": count})
			}
		}
	}
}

// Sweep marks every in-flight submission whose last activity predates the
// inactivity cutoff. Returns how many rows were marked.
func (s *abandonmentService) Sweep(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cutoff := time.Now().Add(-s.inactivityTimeout)

	stale, err := uow.SubmissionRepository().FindAll(ctx,
		specification.InFlight{},
		specification.InactiveSince{Cutoff: cutoff},
	)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, submission := range stale {
		if err := s.markAbandoned(ctx, submission); err != nil {
			s.logger.Error("abandonment", "Failed to mark submission abandoned", map[string]interface{}{
				"submission_id": submission.Id.String(),
				"error":         err.Error(),
			})
			continue
		}
		marked++
	}
	return marked, nil
}

func (s *abandonmentService) markAbandoned(ctx context.Context, submission *entity.FormSubmission) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	now := time.Now()
	submission.IsAbandoned = true
	submission.AbandonedAt = &now
	if err := uow.SubmissionRepository().Update(ctx, submission); err != nil {
		return err
	}

	abandonment := &entity.FormAbandonment{
		Id:              uuid.New(),
		SubmissionId:    submission.Id,
		Email:           submission.Email,
		Phone:           submission.Phone,
		FullName:        submission.FullName,
		AbandonedAtStep: submission.CurrentStep,
		CreatedAt:       now,
	}
	if err := uow.AbandonmentRepository().Create(ctx, abandonment); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(EventFormAbandoned, map[string]interface{}{
			"abandonment_id":    abandonment.Id,
			"submission_id":     submission.Id,
			"email":             submission.Email,
			"full_name":         submission.FullName,
			"phone":             submission.Phone,
			"language":          submission.Language,
			"selected_depot":    submission.SelectedDepot,
			"abandoned_at_step": submission.CurrentStep,
			"completed_steps":   submission.CompletedSteps,
			"last_activity":     submission.LastActivity.Format(time.RFC3339),
			"return_url":        s.resumeURL(submission.Email),
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("abandonment", "Failed to publish abandonment event", map[string]interface{}{
				"submission_id": submission.Id.String(),
				"error":         err.Error(),
			})
		}
	}

	return nil
}

func (s *abandonmentService) List(ctx context.Context, pendingOnly bool) ([]*dto.AbandonmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if pendingOnly {
		specs = append(specs, specification.FollowupPending{})
	}

	rows, err := uow.AbandonmentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AbandonmentResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, &dto.AbandonmentResponse{
			Id:              row.Id,
			SubmissionId:    row.SubmissionId,
			Email:           row.Email,
			Phone:           row.Phone,
			FullName:        row.FullName,
			AbandonedAtStep: row.AbandonedAtStep,
			FollowupSent:    row.FollowupSent,
			FollowupType:    row.FollowupType,
			FollowupSentAt:  row.FollowupSentAt,
			CreatedAt:       row.CreatedAt,
		})
	}
	return res, nil
}

func (s *abandonmentService) MarkFollowupSent(ctx context.Context, id uuid.UUID, followupType string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AbandonmentRepository()

	row, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if row == nil {
		return serverutils.NewAppError(404, fmt.Sprintf("abandonment %s not found", id))
	}

	now := time.Now()
	row.FollowupSent = true
	row.FollowupType = followupType
	row.FollowupSentAt = &now
	return repo.Update(ctx, row)
}

func (s *abandonmentService) resumeURL(email string) string {
	return fmt.Sprintf("%s/onboarding?resume=%s", s.appURL, url.QueryEscape(email))
}
