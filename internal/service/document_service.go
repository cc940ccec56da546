// FILE: internal/service/document_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path"
	"time"

	"sbl-onboarding-be/internal/constant"
	"sbl-onboarding-be/internal/dto"
	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/pkg/serverutils"
	"sbl-onboarding-be/internal/repository/cache"
	"sbl-onboarding-be/internal/repository/specification"
	"sbl-onboarding-be/internal/repository/unitofwork"
	"sbl-onboarding-be/pkg/completion"
	"sbl-onboarding-be/pkg/events"
	pkgNats "sbl-onboarding-be/pkg/nats"
	"sbl-onboarding-be/pkg/storage"
	"sbl-onboarding-be/pkg/validation"

	"github.com/google/uuid"
)

type IDocumentService interface {
	ListTypes(ctx context.Context) ([]*dto.DocumentTypeResponse, error)
	Upload(ctx context.Context, sessionToken, typeCode string, file *multipart.FileHeader) (*dto.UploadDocumentResponse, error)
	UploadAsset(ctx context.Context, sessionToken, kind string, file *multipart.FileHeader) (*dto.UploadAssetResponse, error)
	List(ctx context.Context, sessionToken string) ([]*dto.DocumentResponse, error)
	Review(ctx context.Context, req *dto.ReviewDocumentRequest) (*dto.ReviewDocumentResponse, error)
}

// assetKinds maps the step asset uploads (profile photo, licence scans)
// to their bucket path and the form field their URL lands in.
var assetKinds = map[string]struct {
	pathPrefix string
	fieldKey   string
}{
	"profile_photo":         {constant.StoragePathProfilePhotos, "profile_photo_url"},
	"driving_licence_front": {constant.StoragePathDrivingLicences, "driving_licence_front_url"},
	"driving_licence_back":  {constant.StoragePathDrivingLicences, "driving_licence_back_url"},
}

type documentService struct {
	uowFactory     unitofwork.RepositoryFactory
	progressCache  cache.ProgressCache
	objectStore    storage.ObjectStore
	eventPublisher *pkgNats.Publisher
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	progressCache cache.ProgressCache,
	objectStore storage.ObjectStore,
	eventPublisher *pkgNats.Publisher,
) IDocumentService {
	return &documentService{
		uowFactory:     uowFactory,
		progressCache:  progressCache,
		objectStore:    objectStore,
		eventPublisher: eventPublisher,
	}
}

func (s *documentService) ListTypes(ctx context.Context) ([]*dto.DocumentTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	types, err := uow.DocumentTypeRepository().FindAll(ctx, specification.OrderBy{Field: "display_order"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DocumentTypeResponse, 0, len(types))
	for _, t := range types {
		res = append(res, &dto.DocumentTypeResponse{
			Code:         t.Code,
			DisplayName:  t.DisplayName,
			IsRequired:   t.IsRequired,
			DisplayOrder: t.DisplayOrder,
		})
	}
	return res, nil
}

func (s *documentService) Upload(ctx context.Context, sessionToken, typeCode string, file *multipart.FileHeader) (*dto.UploadDocumentResponse, error) {
	submission, err := s.resolveSubmission(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	docType, err := uow.DocumentTypeRepository().FindOne(ctx, specification.FilterBy{Field: "code", Value: typeCode})
	if err != nil {
		return nil, err
	}
	if docType == nil {
		return nil, NewUploadError(fmt.Sprintf("unknown document type %q", typeCode))
	}

	contentType := file.Header.Get("Content-Type")
	if !validation.IsAllowedUpload(contentType, file.Size, constant.MaxUploadSizeBytes, constant.AllowedUploadContentTypes) {
		return nil, NewUploadError("file must be a jpeg, png or pdf up to 10MB")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	objectKey := path.Join(
		constant.StoragePathDocuments,
		submission.Id.String(),
		fmt.Sprintf("%s-%d-%s", typeCode, time.Now().UnixMilli(), file.Filename),
	)
	fileURL, err := s.objectStore.Put(ctx, objectKey, contentType, file.Size, src)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	now := time.Now()
	doc := &entity.CandidateDocument{
		Id:               uuid.New(),
		SubmissionId:     submission.Id,
		DocumentTypeCode: typeCode,
		FileURL:          fileURL,
		FileName:         file.Filename,
		ContentType:      contentType,
		SizeBytes:        file.Size,
		Status:           completion.StatusUploaded,
		UploadedAt:       &now,
		CreatedAt:        now,
	}
	if err := uow.CandidateDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	return &dto.UploadDocumentResponse{
		Id:               doc.Id,
		DocumentTypeCode: doc.DocumentTypeCode,
		FileURL:          doc.FileURL,
		FileName:         doc.FileName,
		Status:           string(doc.Status),
		UploadedAt:       now,
	}, nil
}

// UploadAsset stores a step file (profile photo or driving licence scan)
// and binds its URL into the session's fields, so the next step save
// carries it into the submission row.
func (s *documentService) UploadAsset(ctx context.Context, sessionToken, kind string, file *multipart.FileHeader) (*dto.UploadAssetResponse, error) {
	asset, ok := assetKinds[kind]
	if !ok {
		return nil, NewUploadError(fmt.Sprintf("unknown asset kind %q", kind))
	}

	progress, err := s.progressCache.Load(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, ErrSessionNotFound
	}

	contentType := file.Header.Get("Content-Type")
	if !validation.IsAllowedUpload(contentType, file.Size, constant.MaxUploadSizeBytes, constant.AllowedUploadContentTypes) {
		return nil, NewUploadError("file must be a jpeg, png or pdf up to 10MB")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	objectKey := path.Join(
		asset.pathPrefix,
		progress.SessionToken,
		fmt.Sprintf("%s-%d-%s", kind, time.Now().UnixMilli(), file.Filename),
	)
	fileURL, err := s.objectStore.Put(ctx, objectKey, contentType, file.Size, src)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	progress.MergeFields(map[string]interface{}{asset.fieldKey: fileURL})
	progress.LastActivity = time.Now()
	if err := s.progressCache.Save(ctx, progress); err != nil {
		return nil, err
	}

	return &dto.UploadAssetResponse{
		Kind:     kind,
		FieldKey: asset.fieldKey,
		FileURL:  fileURL,
	}, nil
}

func (s *documentService) List(ctx context.Context, sessionToken string) ([]*dto.DocumentResponse, error) {
	submission, err := s.resolveSubmission(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	documents, err := uow.CandidateDocumentRepository().FindAll(ctx,
		specification.BySubmissionID{SubmissionID: submission.Id},
		specification.OrderBy{Field: "uploaded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DocumentResponse, 0, len(documents))
	for _, doc := range documents {
		r := toDocumentResponse(doc)
		res = append(res, &r)
	}
	return res, nil
}

func (s *documentService) Review(ctx context.Context, req *dto.ReviewDocumentRequest) (*dto.ReviewDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CandidateDocumentRepository()

	doc, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, serverutils.NewAppError(404, "document not found")
	}

	now := time.Now()
	doc.Status = completion.DocumentStatus(req.Status)
	doc.ReviewedAt = &now
	if req.ReviewNotes != nil {
		doc.ReviewNotes = *req.ReviewNotes
	}

	if err := repo.Update(ctx, doc); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(EventDocumentReviewed, map[string]interface{}{
			"document_id":        doc.Id,
			"submission_id":      doc.SubmissionId,
			"document_type_code": doc.DocumentTypeCode,
			"status":             req.Status,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish %s event: %v", EventDocumentReviewed, err)
		}
	}

	return &dto.ReviewDocumentResponse{
		Id:         doc.Id,
		Status:     string(doc.Status),
		ReviewedAt: doc.ReviewedAt,
	}, nil
}

// resolveSubmission maps a session token to its remote submission. Uploads
// require a registered contact so the row always exists by then.
func (s *documentService) resolveSubmission(ctx context.Context, sessionToken string) (*entity.FormSubmission, error) {
	progress, err := s.progressCache.Load(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, ErrSessionNotFound
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
	return submission, nil
}
