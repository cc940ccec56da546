// FILE: internal/service/onboarding_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sbl-onboarding-be/internal/constant"
	"sbl-onboarding-be/internal/dto"
	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/repository/cache"
	"sbl-onboarding-be/internal/repository/specification"
	"sbl-onboarding-be/internal/repository/unitofwork"
	"sbl-onboarding-be/pkg/completion"
	"sbl-onboarding-be/pkg/events"
	pkgNats "sbl-onboarding-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	remoteWriteAttempts = 3
	remoteWriteBackoff  = time.Second
)

type IOnboardingService interface {
	Initialize(ctx context.Context, req *dto.InitializeRequest) (*dto.InitializeResponse, error)
	GetProgress(ctx context.Context, sessionToken string) (*dto.ProgressResponse, error)
	SaveStep(ctx context.Context, sessionToken string, req *dto.SaveStepRequest) (*dto.SaveStepResponse, error)
	RegisterContact(ctx context.Context, sessionToken string, req *dto.RegisterContactRequest) (*dto.RegisterContactResponse, error)
	PreviousStep(ctx context.Context, sessionToken string) (*dto.PreviousStepResponse, error)
	CompletionSummary(ctx context.Context, sessionToken string) (*dto.CompletionSummaryResponse, error)
	Finalize(ctx context.Context, sessionToken string) (*dto.FinalizeResponse, error)
}

type onboardingService struct {
	uowFactory       unitofwork.RepositoryFactory
	progressCache    cache.ProgressCache
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
}

func NewOnboardingService(
	uowFactory unitofwork.RepositoryFactory,
	progressCache cache.ProgressCache,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
) IOnboardingService {
	return &onboardingService{
		uowFactory:       uowFactory,
		progressCache:    progressCache,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *onboardingService) Initialize(ctx context.Context, req *dto.InitializeRequest) (*dto.InitializeResponse, error) {
	// A resume token restores the earlier session if it still resolves.
	// A miss is not an error, the candidate just starts over.
	if req.ResumeToken != "" {
		progress, err := s.loadProgress(ctx, req.ResumeToken)
		if err != nil && !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		if progress != nil {
			return &dto.InitializeResponse{
				SessionToken: progress.SessionToken,
				CurrentStep:  int(progress.CurrentStep),
				TotalSteps:   constant.TotalSteps,
			}, nil
		}
	}

	progress := entity.NewCandidateProgress(uuid.NewString())

	language := req.Language
	if language == "" {
		language = constant.DefaultLanguage
	}
	progress.MergeFields(map[string]interface{}{
		"language": language,
	})
	if req.UtmSource != "" {
		progress.MergeFields(map[string]interface{}{"utm_source": req.UtmSource})
	}
	if req.UtmMedium != "" {
		progress.MergeFields(map[string]interface{}{"utm_medium": req.UtmMedium})
	}

	if err := s.progressCache.Save(ctx, progress); err != nil {
		return nil, err
	}

	return &dto.InitializeResponse{
		SessionToken: progress.SessionToken,
		CurrentStep:  int(progress.CurrentStep),
		TotalSteps:   constant.TotalSteps,
	}, nil
}

func (s *onboardingService) GetProgress(ctx context.Context, sessionToken string) (*dto.ProgressResponse, error) {
	progress, err := s.loadProgress(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	return &dto.ProgressResponse{
		SessionToken:   progress.SessionToken,
		Email:          progress.Email,
		CurrentStep:    int(progress.CurrentStep),
		TotalSteps:     constant.TotalSteps,
		CompletedSteps: progress.CompletedSteps,
		Fields:         progress.Fields,
		IsCompleted:    progress.IsCompleted,
		LastActivity:   progress.LastActivity,
	}, nil
}

func (s *onboardingService) SaveStep(ctx context.Context, sessionToken string, req *dto.SaveStepRequest) (*dto.SaveStepResponse, error) {
	progress, err := s.loadProgress(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	step := constant.Step(req.Step)
	if !step.IsValid() {
		return nil, NewSequenceError(int(progress.CurrentStep), req.Step)
	}
	if req.Step != int(progress.CurrentStep) {
		return nil, NewSequenceError(int(progress.CurrentStep), req.Step)
	}
	// The contact step binds the identity and requires a remote write
	// before advancing; the generic path must not let it through.
	if step == constant.StepContact {
		return nil, ErrContactStepBlocked
	}

	progress.MergeFields(req.Fields)
	progress.MarkStepCompleted(step)

	if err := s.progressCache.Save(ctx, progress); err != nil {
		return nil, err
	}

	s.publishStepSync(ctx, progress, req.Step)

	return &dto.SaveStepResponse{
		CurrentStep:    int(progress.CurrentStep),
		CompletedSteps: progress.CompletedSteps,
		IsCompleted:    progress.IsCompleted,
	}, nil
}

func (s *onboardingService) RegisterContact(ctx context.Context, sessionToken string, req *dto.RegisterContactRequest) (*dto.RegisterContactResponse, error) {
	progress, err := s.loadProgress(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	if progress.CurrentStep != constant.StepContact {
		return nil, NewSequenceError(int(progress.CurrentStep), int(constant.StepContact))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	progress.MergeFields(map[string]interface{}{
		"full_name": req.FullName,
		"email":     email,
		"phone":     req.Phone,
	})

	// Contact registration is a required remote write: the identity row
	// must exist before the step can advance.
	err = s.withRetry(ctx, func() error {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		repo := uow.SubmissionRepository()

		submission, err := repo.FindOne(ctx, specification.ByEmail{Email: email})
		if err != nil {
			return err
		}
		if submission == nil {
			submission = &entity.FormSubmission{
				Id:        uuid.New(),
				Email:     email,
				Fields:    make(map[string]interface{}),
				CreatedAt: time.Now(),
			}
		}

		submission.FullName = req.FullName
		submission.Phone = req.Phone
		if lang, ok := progress.Fields["language"].(string); ok {
			submission.Language = lang
		}
		for k, v := range progress.Fields {
			submission.Fields[k] = v
		}
		if int(progress.CurrentStep) > submission.CurrentStep {
			submission.CurrentStep = int(progress.CurrentStep)
		}
		submission.CompletedSteps = mergeCompletedSteps(submission.CompletedSteps, progress.CompletedSteps)
		submission.LastActivity = time.Now()

		return repo.Upsert(ctx, submission)
	})
	if err != nil {
		// Keep the contact data in the cache so nothing is lost, but do
		// not advance: the identity write is a hard requirement.
		progress.LastActivity = time.Now()
		if cacheErr := s.progressCache.Save(ctx, progress); cacheErr != nil {
			log.Printf("[ERROR] Failed to cache progress after contact write failure: %v", cacheErr)
		}
		return nil, fmt.Errorf("contact registration failed: %w", err)
	}

	progress.Email = &email
	progress.MarkStepCompleted(constant.StepContact)

	if err := s.progressCache.Save(ctx, progress); err != nil {
		return nil, err
	}

	return &dto.RegisterContactResponse{
		CurrentStep:    int(progress.CurrentStep),
		CompletedSteps: progress.CompletedSteps,
	}, nil
}

func (s *onboardingService) PreviousStep(ctx context.Context, sessionToken string) (*dto.PreviousStepResponse, error) {
	progress, err := s.loadProgress(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	if progress.CurrentStep > constant.StepWelcome {
		progress.CurrentStep--
	}
	progress.LastActivity = time.Now()

	if err := s.progressCache.Save(ctx, progress); err != nil {
		return nil, err
	}

	return &dto.PreviousStepResponse{
		CurrentStep: int(progress.CurrentStep),
	}, nil
}

func (s *onboardingService) CompletionSummary(ctx context.Context, sessionToken string) (*dto.CompletionSummaryResponse, error) {
	progress, err := s.loadProgress(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	if progress.Email == nil {
		return nil, ErrContactRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission, err := uow.SubmissionRepository().FindOne(ctx, specification.ByEmail{Email: *progress.Email})
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSessionNotFound
	}

	summary, documents, err := s.evaluateCompletion(ctx, uow, submission.Id)
	if err != nil {
		return nil, err
	}

	res := &dto.CompletionSummaryResponse{
		Summary:   summary,
		Documents: make([]dto.DocumentResponse, 0, len(documents)),
	}
	for _, doc := range documents {
		res.Documents = append(res.Documents, toDocumentResponse(doc))
	}
	return res, nil
}

func (s *onboardingService) Finalize(ctx context.Context, sessionToken string) (*dto.FinalizeResponse, error) {
	progress, err := s.loadProgress(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	if progress.Email == nil {
		return nil, ErrContactRequired
	}
	if int(progress.CurrentStep) != constant.TotalSteps {
		return nil, ErrNotReady
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission, err := uow.SubmissionRepository().FindOne(ctx, specification.ByEmail{Email: *progress.Email})
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSessionNotFound
	}

	summary, _, err := s.evaluateCompletion(ctx, uow, submission.Id)
	if err != nil {
		return nil, err
	}
	if !summary.IsComplete {
		return nil, ErrNotReady
	}

	now := time.Now()

	// Finalization is the second required remote write of the flow.
	err = s.withRetry(ctx, func() error {
		repo := s.uowFactory.NewUnitOfWork(ctx).SubmissionRepository()
		current, err := repo.FindOne(ctx, specification.ByEmail{Email: *progress.Email})
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("submission disappeared for %s", *progress.Email)
		}
		for k, v := range progress.Fields {
			if current.Fields == nil {
				current.Fields = make(map[string]interface{})
			}
			current.Fields[k] = v
		}
		liftKnownFields(current)
		current.CurrentStep = constant.TotalSteps
		current.CompletedSteps = mergeCompletedSteps(current.CompletedSteps, progress.CompletedSteps)
		current.IsCompleted = true
		current.CompletedAt = &now
		current.LastActivity = now
		submission = current
		return repo.Upsert(ctx, current)
	})
	if err != nil {
		return nil, fmt.Errorf("finalization failed: %w", err)
	}

	progress.IsCompleted = true
	progress.CompletedAt = &now
	progress.LastActivity = now
	if err := s.progressCache.Save(ctx, progress); err != nil {
		log.Printf("[WARN] Failed to cache finalized progress: %v", err)
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(EventFormCompleted, map[string]interface{}{
			"submission_id":     submission.Id,
			"email":             submission.Email,
			"full_name":         submission.FullName,
			"phone":             submission.Phone,
			"language":          submission.Language,
			"depot_location":    submission.SelectedDepot,
			"depot_code":        submission.DepotCode,
			"employment_status": submission.EmploymentStatus,
			"completed_at":      now.Format(time.RFC3339),
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish %s event: %v", EventFormCompleted, err)
		}
	}

	return &dto.FinalizeResponse{
		SubmissionId: submission.Id,
		IsCompleted:  true,
		CompletedAt:  &now,
	}, nil
}

// loadProgress resolves a session token to cached progress. Tokens that
// look like an email address fall back to rebuilding progress from the
// remote submission, which is how resume links work.
func (s *onboardingService) loadProgress(ctx context.Context, sessionToken string) (*entity.CandidateProgress, error) {
	progress, err := s.progressCache.Load(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		return progress, nil
	}

	if strings.Contains(sessionToken, "@") {
		return s.resumeFromSubmission(ctx, strings.ToLower(sessionToken))
	}
	return nil, ErrSessionNotFound
}

func (s *onboardingService) resumeFromSubmission(ctx context.Context, email string) (*entity.CandidateProgress, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	submission, err := uow.SubmissionRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSessionNotFound
	}

	progress := entity.NewCandidateProgress(email)
	progress.Email = &submission.Email
	progress.CurrentStep = constant.Step(submission.CurrentStep)
	if !progress.CurrentStep.IsValid() {
		progress.CurrentStep = constant.StepWelcome
	}
	progress.CompletedSteps = append(progress.CompletedSteps, submission.CompletedSteps...)
	progress.MergeFields(submission.Fields)
	progress.IsCompleted = submission.IsCompleted
	progress.CompletedAt = submission.CompletedAt

	if err := s.progressCache.Save(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// publishStepSync hands the accepted step to the async sync pipeline.
// Failures are logged and swallowed, step saves never block on the remote.
func (s *onboardingService) publishStepSync(ctx context.Context, progress *entity.CandidateProgress, step int) {
	msg := dto.StepSyncMessage{
		SessionToken:   progress.SessionToken,
		Email:          progress.Email,
		Step:           step,
		CompletedSteps: progress.CompletedSteps,
		Fields:         progress.Fields,
		OccurredAt:     time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal step sync message: %v", err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish step sync for step %d: %v", step, err)
	}
}

func (s *onboardingService) evaluateCompletion(ctx context.Context, uow unitofwork.UnitOfWork, submissionId uuid.UUID) (completion.Summary, []*entity.CandidateDocument, error) {
	types, err := uow.DocumentTypeRepository().FindAll(ctx, specification.OrderBy{Field: "display_order"})
	if err != nil {
		return completion.Summary{}, nil, err
	}
	documents, err := uow.CandidateDocumentRepository().FindAll(ctx, specification.BySubmissionID{SubmissionID: submissionId})
	if err != nil {
		return completion.Summary{}, nil, err
	}

	requiredTypes := make([]completion.RequiredDocumentType, 0, len(types))
	for _, t := range types {
		requiredTypes = append(requiredTypes, completion.RequiredDocumentType{
			Code:         t.Code,
			DisplayName:  t.DisplayName,
			IsRequired:   t.IsRequired,
			DisplayOrder: t.DisplayOrder,
		})
	}

	records := make([]completion.DocumentRecord, 0, len(documents))
	for _, d := range documents {
		records = append(records, completion.DocumentRecord{
			DocumentTypeCode: d.DocumentTypeCode,
			Status:           d.Status,
			UploadedAt:       d.UploadedAt,
			ReviewNotes:      d.ReviewNotes,
		})
	}

	return completion.Evaluate(requiredTypes, records), documents, nil
}

// withRetry runs fn up to remoteWriteAttempts times with linear backoff.
func (s *onboardingService) withRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= remoteWriteAttempts; attempt++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if attempt == remoteWriteAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * remoteWriteBackoff):
		}
	}
	return lastErr
}

func toDocumentResponse(doc *entity.CandidateDocument) dto.DocumentResponse {
	res := dto.DocumentResponse{
		Id:               doc.Id,
		DocumentTypeCode: doc.DocumentTypeCode,
		FileURL:          doc.FileURL,
		FileName:         doc.FileName,
		ContentType:      doc.ContentType,
		SizeBytes:        doc.SizeBytes,
		Status:           string(doc.Status),
		ReviewedAt:       doc.ReviewedAt,
	}
	if doc.UploadedAt != nil {
		res.UploadedAt = *doc.UploadedAt
	}
	if doc.ReviewNotes != "" {
		notes := doc.ReviewNotes
		res.ReviewNotes = &notes
	}
	return res
}
