package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sbl-onboarding-be/internal/constant"
	"sbl-onboarding-be/internal/dto"
	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/pkg/serverutils"
	"sbl-onboarding-be/internal/repository/contract"
	"sbl-onboarding-be/internal/repository/specification"
	"sbl-onboarding-be/internal/repository/unitofwork"
	"sbl-onboarding-be/pkg/completion"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ---- Fakes ----

type fakeProgressCache struct {
	store map[string]*entity.CandidateProgress
}

func newFakeProgressCache() *fakeProgressCache {
	return &fakeProgressCache{store: make(map[string]*entity.CandidateProgress)}
}

func (c *fakeProgressCache) Save(_ context.Context, progress *entity.CandidateProgress) error {
	clone := *progress
	c.store[progress.SessionToken] = &clone
	return nil
}

func (c *fakeProgressCache) Load(_ context.Context, sessionToken string) (*entity.CandidateProgress, error) {
	progress, ok := c.store[sessionToken]
	if !ok {
		return nil, nil
	}
	clone := *progress
	return &clone, nil
}

func (c *fakeProgressCache) Clear(_ context.Context, sessionToken string) error {
	delete(c.store, sessionToken)
	return nil
}

type fakeSubmissionRepo struct {
	byEmail    map[string]*entity.FormSubmission
	upsertErr  error
	upsertHits int
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{byEmail: make(map[string]*entity.FormSubmission)}
}

func (r *fakeSubmissionRepo) Upsert(_ context.Context, submission *entity.FormSubmission) error {
	r.upsertHits++
	if r.upsertErr != nil {
		return r.upsertErr
	}
	clone := *submission
	r.byEmail[submission.Email] = &clone
	return nil
}

func (r *fakeSubmissionRepo) Update(_ context.Context, submission *entity.FormSubmission) error {
	clone := *submission
	r.byEmail[submission.Email] = &clone
	return nil
}

func (r *fakeSubmissionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for email, sub := range r.byEmail {
		if sub.Id == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

func (r *fakeSubmissionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.FormSubmission, error) {
	for _, spec := range specs {
		if byEmail, ok := spec.(specification.ByEmail); ok {
			if sub, found := r.byEmail[byEmail.Email]; found {
				clone := *sub
				return &clone, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeSubmissionRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.FormSubmission, error) {
	out := make([]*entity.FormSubmission, 0, len(r.byEmail))
	for _, sub := range r.byEmail {
		clone := *sub
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.byEmail)), nil
}

type fakeDocumentTypeRepo struct {
	types []*entity.DocumentType
}

func (r *fakeDocumentTypeRepo) Create(_ context.Context, docType *entity.DocumentType) error {
	r.types = append(r.types, docType)
	return nil
}

func (r *fakeDocumentTypeRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.DocumentType, error) {
	for _, spec := range specs {
		if filter, ok := spec.(specification.FilterBy); ok && filter.Field == "code" {
			for _, t := range r.types {
				if t.Code == filter.Value {
					return t, nil
				}
			}
			return nil, nil
		}
	}
	if len(r.types) > 0 {
		return r.types[0], nil
	}
	return nil, nil
}

func (r *fakeDocumentTypeRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.DocumentType, error) {
	return r.types, nil
}

func (r *fakeDocumentTypeRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.types)), nil
}

type fakeCandidateDocumentRepo struct {
	docs []*entity.CandidateDocument
}

func (r *fakeCandidateDocumentRepo) Create(_ context.Context, doc *entity.CandidateDocument) error {
	r.docs = append(r.docs, doc)
	return nil
}

func (r *fakeCandidateDocumentRepo) Update(_ context.Context, doc *entity.CandidateDocument) error {
	for i, d := range r.docs {
		if d.Id == doc.Id {
			r.docs[i] = doc
		}
	}
	return nil
}

func (r *fakeCandidateDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, d := range r.docs {
		if d.Id == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCandidateDocumentRepo) AssignCandidate(_ context.Context, submissionId, candidateId uuid.UUID) error {
	for _, d := range r.docs {
		if d.SubmissionId == submissionId {
			id := candidateId
			d.CandidateId = &id
		}
	}
	return nil
}

func (r *fakeCandidateDocumentRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.CandidateDocument, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			for _, d := range r.docs {
				if d.Id == byID.ID {
					return d, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeCandidateDocumentRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.CandidateDocument, error) {
	return r.docs, nil
}

func (r *fakeCandidateDocumentRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.docs)), nil
}

type fakeUnitOfWork struct {
	submissions *fakeSubmissionRepo
	docTypes    *fakeDocumentTypeRepo
	documents   *fakeCandidateDocumentRepo
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                 { return nil }
func (u *fakeUnitOfWork) Rollback() error               { return nil }

func (u *fakeUnitOfWork) SubmissionRepository() contract.SubmissionRepository { return u.submissions }
func (u *fakeUnitOfWork) CandidateRepository() contract.CandidateRepository   { return nil }
func (u *fakeUnitOfWork) DocumentTypeRepository() contract.DocumentTypeRepository {
	return u.docTypes
}
func (u *fakeUnitOfWork) CandidateDocumentRepository() contract.CandidateDocumentRepository {
	return u.documents
}
func (u *fakeUnitOfWork) AbandonmentRepository() contract.AbandonmentRepository { return nil }

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakePublisher struct {
	published [][]byte
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	p.published = append(p.published, payload)
	return nil
}

func newTestUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		submissions: newFakeSubmissionRepo(),
		docTypes:    &fakeDocumentTypeRepo{},
		documents:   &fakeCandidateDocumentRepo{},
	}
}

func newTestOnboardingService() (IOnboardingService, *fakeProgressCache, *fakeSubmissionRepo, *fakePublisher) {
	svc, progressCache, uow, publisher := newTestOnboardingServiceWithUow()
	return svc, progressCache, uow.submissions, publisher
}

func newTestOnboardingServiceWithUow() (IOnboardingService, *fakeProgressCache, *fakeUnitOfWork, *fakePublisher) {
	progressCache := newFakeProgressCache()
	uow := newTestUnitOfWork()
	publisher := &fakePublisher{}
	factory := &fakeRepositoryFactory{uow: uow}
	svc := NewOnboardingService(factory, progressCache, publisher, nil)
	return svc, progressCache, uow, publisher
}

// ---- Tests ----

func TestInitialize(t *testing.T) {
	svc, progressCache, _, _ := newTestOnboardingService()

	res, err := svc.Initialize(context.Background(), &dto.InitializeRequest{
		Language:  "bg",
		UtmSource: "facebook",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.SessionToken)
	assert.Equal(t, int(constant.StepWelcome), res.CurrentStep)
	assert.Equal(t, constant.TotalSteps, res.TotalSteps)

	cached, err := progressCache.Load(context.Background(), res.SessionToken)
	assert.NoError(t, err)
	if assert.NotNil(t, cached) {
		assert.Equal(t, "bg", cached.Fields["language"])
		assert.Equal(t, "facebook", cached.Fields["utm_source"])
	}
}

func TestInitializeDefaultsLanguage(t *testing.T) {
	svc, progressCache, _, _ := newTestOnboardingService()

	res, err := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	assert.NoError(t, err)

	cached, _ := progressCache.Load(context.Background(), res.SessionToken)
	assert.Equal(t, constant.DefaultLanguage, cached.Fields["language"])
}

func TestInitializeWithResumeToken(t *testing.T) {
	svc, _, _, _ := newTestOnboardingService()

	first, err := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	assert.NoError(t, err)

	_, err = svc.SaveStep(context.Background(), first.SessionToken, &dto.SaveStepRequest{
		Step:   1,
		Fields: map[string]interface{}{},
	})
	assert.NoError(t, err)

	// Resuming with a live token restores the session instead of minting
	// a new one.
	resumed, err := svc.Initialize(context.Background(), &dto.InitializeRequest{
		ResumeToken: first.SessionToken,
	})
	assert.NoError(t, err)
	assert.Equal(t, first.SessionToken, resumed.SessionToken)
	assert.Equal(t, 2, resumed.CurrentStep)
}

func TestInitializeWithStaleResumeTokenStartsFresh(t *testing.T) {
	svc, _, _, _ := newTestOnboardingService()

	res, err := svc.Initialize(context.Background(), &dto.InitializeRequest{
		ResumeToken: "expired-token",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, "expired-token", res.SessionToken)
	assert.Equal(t, int(constant.StepWelcome), res.CurrentStep)
}

func TestGetProgressUnknownToken(t *testing.T) {
	svc, _, _, _ := newTestOnboardingService()

	_, err := svc.GetProgress(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSaveStepOutOfSequence(t *testing.T) {
	svc, _, _, publisher := newTestOnboardingService()

	res, err := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	assert.NoError(t, err)

	// Candidate is on step 1, a save against step 5 must be rejected.
	_, err = svc.SaveStep(context.Background(), res.SessionToken, &dto.SaveStepRequest{
		Step:   5,
		Fields: map[string]interface{}{"selected_depot": "Sofia"},
	})

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.Contains(t, appErr.Message, "expected step 1")
	assert.Empty(t, publisher.published)
}

func TestSaveStepAdvancesAndPublishes(t *testing.T) {
	svc, progressCache, _, publisher := newTestOnboardingService()

	init, err := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	assert.NoError(t, err)

	res, err := svc.SaveStep(context.Background(), init.SessionToken, &dto.SaveStepRequest{
		Step:   1,
		Fields: map[string]interface{}{"consent": true},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.CurrentStep)
	assert.Equal(t, []int{1}, res.CompletedSteps)
	assert.Len(t, publisher.published, 1)

	cached, _ := progressCache.Load(context.Background(), init.SessionToken)
	assert.Equal(t, true, cached.Fields["consent"])
}

func TestSaveStepCompletedStepsStayMonotone(t *testing.T) {
	svc, progressCache, _, _ := newTestOnboardingService()

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})

	_, err := svc.SaveStep(context.Background(), init.SessionToken, &dto.SaveStepRequest{
		Step:   1,
		Fields: map[string]interface{}{"a": 1},
	})
	assert.NoError(t, err)

	// Go back and resubmit step 1. The step list must not grow a duplicate
	// and the earlier field must survive the merge.
	_, err = svc.PreviousStep(context.Background(), init.SessionToken)
	assert.NoError(t, err)

	res, err := svc.SaveStep(context.Background(), init.SessionToken, &dto.SaveStepRequest{
		Step:   1,
		Fields: map[string]interface{}{"b": 2},
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, res.CompletedSteps)

	cached, _ := progressCache.Load(context.Background(), init.SessionToken)
	assert.Equal(t, 1, cached.Fields["a"])
	assert.Equal(t, 2, cached.Fields["b"])
}

func TestPreviousStepClampsAtFirstStep(t *testing.T) {
	svc, _, _, _ := newTestOnboardingService()

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})

	res, err := svc.PreviousStep(context.Background(), init.SessionToken)
	assert.NoError(t, err)
	assert.Equal(t, int(constant.StepWelcome), res.CurrentStep)
}

func advanceToContactStep(t *testing.T, svc IOnboardingService, token string) {
	t.Helper()
	for step := 1; step < int(constant.StepContact); step++ {
		_, err := svc.SaveStep(context.Background(), token, &dto.SaveStepRequest{
			Step:   step,
			Fields: map[string]interface{}{},
		})
		assert.NoError(t, err)
	}
}

func TestSaveStepRejectsContactStep(t *testing.T) {
	svc, progressCache, submissions, _ := newTestOnboardingService()

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	advanceToContactStep(t, svc, init.SessionToken)

	// The identity write only happens on the contact endpoint. Submitting
	// step 3 through the generic path must not advance past it.
	_, err := svc.SaveStep(context.Background(), init.SessionToken, &dto.SaveStepRequest{
		Step:   int(constant.StepContact),
		Fields: map[string]interface{}{"email": "ana@example.com", "full_name": "Ana Petrova"},
	})
	assert.ErrorIs(t, err, ErrContactStepBlocked)
	assert.Equal(t, 0, submissions.upsertHits)

	cached, _ := progressCache.Load(context.Background(), init.SessionToken)
	assert.Equal(t, constant.StepContact, cached.CurrentStep)
	assert.Nil(t, cached.Email)
}

func TestRegisterContactWrongStep(t *testing.T) {
	svc, _, _, _ := newTestOnboardingService()

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})

	_, err := svc.RegisterContact(context.Background(), init.SessionToken, &dto.RegisterContactRequest{
		FullName: "Ana Petrova",
		Email:    "ana@example.com",
		Phone:    "+447911123456",
	})

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestRegisterContactPersistsAndAdvances(t *testing.T) {
	svc, progressCache, submissions, _ := newTestOnboardingService()

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{Language: "en"})
	advanceToContactStep(t, svc, init.SessionToken)

	res, err := svc.RegisterContact(context.Background(), init.SessionToken, &dto.RegisterContactRequest{
		FullName: "Ana Petrova",
		Email:    "  Ana@Example.COM ",
		Phone:    "+447911123456",
	})
	assert.NoError(t, err)
	assert.Equal(t, int(constant.StepContact)+1, res.CurrentStep)

	// The identity row is keyed by the normalized email.
	sub, findErr := submissions.FindOne(context.Background(), specification.ByEmail{Email: "ana@example.com"})
	assert.NoError(t, findErr)
	if assert.NotNil(t, sub) {
		assert.Equal(t, "Ana Petrova", sub.FullName)
		assert.Equal(t, "en", sub.Language)
	}

	cached, _ := progressCache.Load(context.Background(), init.SessionToken)
	if assert.NotNil(t, cached.Email) {
		assert.Equal(t, "ana@example.com", *cached.Email)
	}
}

func TestRegisterContactDoesNotAdvanceOnWriteFailure(t *testing.T) {
	svc, progressCache, submissions, _ := newTestOnboardingService()

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	advanceToContactStep(t, svc, init.SessionToken)

	submissions.upsertErr = errors.New("connection refused")

	// Canceled context short circuits the retry backoff.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RegisterContact(ctx, init.SessionToken, &dto.RegisterContactRequest{
		FullName: "Ana Petrova",
		Email:    "ana@example.com",
		Phone:    "+447911123456",
	})
	assert.Error(t, err)
	assert.GreaterOrEqual(t, submissions.upsertHits, 1)

	// The step must not advance, but the submitted data stays cached.
	cached, _ := progressCache.Load(context.Background(), init.SessionToken)
	assert.Equal(t, constant.StepContact, cached.CurrentStep)
	assert.Nil(t, cached.Email)
	assert.Equal(t, "ana@example.com", cached.Fields["email"])
}

func TestResumeFromSubmissionByEmail(t *testing.T) {
	svc, _, submissions, _ := newTestOnboardingService()

	email := "resume@example.com"
	submissions.byEmail[email] = &entity.FormSubmission{
		Id:             uuid.New(),
		Email:          email,
		FullName:       "Resumed Candidate",
		CurrentStep:    6,
		CompletedSteps: []int{1, 2, 3, 4, 5},
		Fields:         map[string]interface{}{"language": "ro", "selected_depot": "Bucharest"},
	}

	res, err := svc.GetProgress(context.Background(), email)
	assert.NoError(t, err)
	assert.Equal(t, 6, res.CurrentStep)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.CompletedSteps)
	assert.Equal(t, "Bucharest", res.Fields["selected_depot"])
	if assert.NotNil(t, res.Email) {
		assert.Equal(t, email, *res.Email)
	}
}

func TestFinalizeRejectsIncompleteFlow(t *testing.T) {
	svc, _, _, _ := newTestOnboardingService()

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	advanceToContactStep(t, svc, init.SessionToken)

	_, err := svc.RegisterContact(context.Background(), init.SessionToken, &dto.RegisterContactRequest{
		FullName: "Ana Petrova",
		Email:    "ana@example.com",
		Phone:    "+447911123456",
	})
	assert.NoError(t, err)

	// Still mid flow, finalization must be refused.
	_, err = svc.Finalize(context.Background(), init.SessionToken)
	assert.ErrorIs(t, err, ErrNotReady)
}

func advanceToFinalStep(t *testing.T, svc IOnboardingService, token string) {
	t.Helper()
	advanceToContactStep(t, svc, token)

	_, err := svc.RegisterContact(context.Background(), token, &dto.RegisterContactRequest{
		FullName: "Ana Petrova",
		Email:    "ana@example.com",
		Phone:    "+447911123456",
	})
	assert.NoError(t, err)

	for step := int(constant.StepContact) + 1; step <= constant.TotalSteps; step++ {
		_, err := svc.SaveStep(context.Background(), token, &dto.SaveStepRequest{
			Step:   step,
			Fields: map[string]interface{}{},
		})
		assert.NoError(t, err)
	}
}

func TestFinalizeRefusedWithMissingRequiredDocument(t *testing.T) {
	svc, _, uow, _ := newTestOnboardingServiceWithUow()

	uow.docTypes.types = []*entity.DocumentType{
		{Id: uuid.New(), Code: "id_card", DisplayName: "ID Card", IsRequired: true, DisplayOrder: 1},
	}

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	advanceToFinalStep(t, svc, init.SessionToken)

	// The candidate reached the last step but never uploaded the required
	// document, so finalization must be refused.
	_, err := svc.Finalize(context.Background(), init.SessionToken)
	assert.ErrorIs(t, err, ErrNotReady)

	sub, _ := uow.submissions.FindOne(context.Background(), specification.ByEmail{Email: "ana@example.com"})
	if assert.NotNil(t, sub) {
		assert.False(t, sub.IsCompleted)
	}
}

func TestFinalizeRefusedWithRejectedDocument(t *testing.T) {
	svc, _, uow, _ := newTestOnboardingServiceWithUow()

	uow.docTypes.types = []*entity.DocumentType{
		{Id: uuid.New(), Code: "id_card", DisplayName: "ID Card", IsRequired: true, DisplayOrder: 1},
	}

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	advanceToFinalStep(t, svc, init.SessionToken)

	sub, _ := uow.submissions.FindOne(context.Background(), specification.ByEmail{Email: "ana@example.com"})
	now := time.Now()
	uow.documents.docs = []*entity.CandidateDocument{
		{
			Id:               uuid.New(),
			SubmissionId:     sub.Id,
			DocumentTypeCode: "id_card",
			Status:           completion.StatusRejected,
			UploadedAt:       &now,
		},
	}

	_, err := svc.Finalize(context.Background(), init.SessionToken)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestFinalizeCompletesWhenDocumentsSatisfied(t *testing.T) {
	svc, progressCache, uow, _ := newTestOnboardingServiceWithUow()

	uow.docTypes.types = []*entity.DocumentType{
		{Id: uuid.New(), Code: "id_card", DisplayName: "ID Card", IsRequired: true, DisplayOrder: 1},
	}

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})
	advanceToFinalStep(t, svc, init.SessionToken)

	sub, _ := uow.submissions.FindOne(context.Background(), specification.ByEmail{Email: "ana@example.com"})
	now := time.Now()
	uow.documents.docs = []*entity.CandidateDocument{
		{
			Id:               uuid.New(),
			SubmissionId:     sub.Id,
			DocumentTypeCode: "id_card",
			Status:           completion.StatusUploaded,
			UploadedAt:       &now,
		},
	}

	res, err := svc.Finalize(context.Background(), init.SessionToken)
	assert.NoError(t, err)
	assert.True(t, res.IsCompleted)
	assert.NotNil(t, res.CompletedAt)

	saved, _ := uow.submissions.FindOne(context.Background(), specification.ByEmail{Email: "ana@example.com"})
	if assert.NotNil(t, saved) {
		assert.True(t, saved.IsCompleted)
		assert.Equal(t, constant.TotalSteps, saved.CurrentStep)
	}

	cached, _ := progressCache.Load(context.Background(), init.SessionToken)
	assert.True(t, cached.IsCompleted)
}

func TestFinalizeRequiresContact(t *testing.T) {
	svc, _, _, _ := newTestOnboardingService()

	init, _ := svc.Initialize(context.Background(), &dto.InitializeRequest{})

	_, err := svc.Finalize(context.Background(), init.SessionToken)
	assert.ErrorIs(t, err, ErrContactRequired)
}

func TestMergeCompletedSteps(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		incoming []int
		want     []int
	}{
		{name: "disjoint", existing: []int{1, 2}, incoming: []int{3}, want: []int{1, 2, 3}},
		{name: "overlap", existing: []int{1, 2, 3}, incoming: []int{2, 3, 4}, want: []int{1, 2, 3, 4}},
		{name: "empty existing", existing: nil, incoming: []int{1}, want: []int{1}},
		{name: "empty incoming", existing: []int{1}, incoming: nil, want: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeCompletedSteps(tt.existing, tt.incoming)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}
