package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"sbl-onboarding-be/internal/constant"
	"sbl-onboarding-be/internal/dto"
	"sbl-onboarding-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
)

type fakeObjectStore struct {
	objects map[string][]byte
	keys    []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (s *fakeObjectStore) Put(_ context.Context, objectKey, _ string, _ int64, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.objects[objectKey] = data
	s.keys = append(s.keys, objectKey)
	return s.PublicURL(objectKey), nil
}

func (s *fakeObjectStore) Remove(_ context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	return nil
}

func (s *fakeObjectStore) PublicURL(objectKey string) string {
	return "https://cdn.test/uploads/" + objectKey
}

// multipartFile builds a *multipart.FileHeader the way fiber hands one to
// the service layer.
func multipartFile(t *testing.T, fieldName, fileName, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[fieldName]
	if !assert.Len(t, files, 1) {
		t.FailNow()
	}
	return files[0]
}

func newTestDocumentService() (IDocumentService, IOnboardingService, *fakeProgressCache, *fakeUnitOfWork, *fakeObjectStore) {
	progressCache := newFakeProgressCache()
	uow := newTestUnitOfWork()
	factory := &fakeRepositoryFactory{uow: uow}
	store := newFakeObjectStore()

	onboarding := NewOnboardingService(factory, progressCache, &fakePublisher{}, nil)
	documents := NewDocumentService(factory, progressCache, store, nil)
	return documents, onboarding, progressCache, uow, store
}

func TestUploadAssetBindsFieldIntoSession(t *testing.T) {
	documents, onboarding, progressCache, _, store := newTestDocumentService()

	init, err := onboarding.Initialize(context.Background(), &dto.InitializeRequest{})
	assert.NoError(t, err)

	file := multipartFile(t, "file", "selfie.jpg", "image/jpeg", []byte("jpeg-bytes"))

	res, err := documents.UploadAsset(context.Background(), init.SessionToken, "profile_photo", file)
	assert.NoError(t, err)
	assert.Equal(t, "profile_photo", res.Kind)
	assert.Equal(t, "profile_photo_url", res.FieldKey)
	assert.NotEmpty(t, res.FileURL)

	// The object lands under the profile photo prefix, keyed by session.
	if assert.Len(t, store.keys, 1) {
		assert.True(t, strings.HasPrefix(store.keys[0], constant.StoragePathProfilePhotos+"/"+init.SessionToken+"/"))
	}

	// The URL is merged into the session fields so the later step save
	// carries it into the submission.
	cached, _ := progressCache.Load(context.Background(), init.SessionToken)
	assert.Equal(t, res.FileURL, cached.Fields["profile_photo_url"])
}

func TestUploadAssetLicenceSides(t *testing.T) {
	documents, onboarding, progressCache, _, store := newTestDocumentService()

	init, _ := onboarding.Initialize(context.Background(), &dto.InitializeRequest{})

	front := multipartFile(t, "file", "front.png", "image/png", []byte("front"))
	back := multipartFile(t, "file", "back.png", "image/png", []byte("back"))

	_, err := documents.UploadAsset(context.Background(), init.SessionToken, "driving_licence_front", front)
	assert.NoError(t, err)
	_, err = documents.UploadAsset(context.Background(), init.SessionToken, "driving_licence_back", back)
	assert.NoError(t, err)

	for _, key := range store.keys {
		assert.True(t, strings.HasPrefix(key, constant.StoragePathDrivingLicences+"/"))
	}

	cached, _ := progressCache.Load(context.Background(), init.SessionToken)
	assert.NotEmpty(t, cached.Fields["driving_licence_front_url"])
	assert.NotEmpty(t, cached.Fields["driving_licence_back_url"])
}

func TestUploadAssetUnknownKind(t *testing.T) {
	documents, onboarding, _, _, store := newTestDocumentService()

	init, _ := onboarding.Initialize(context.Background(), &dto.InitializeRequest{})

	file := multipartFile(t, "file", "selfie.jpg", "image/jpeg", []byte("jpeg-bytes"))

	_, err := documents.UploadAsset(context.Background(), init.SessionToken, "passport_scan", file)

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, store.keys)
}

func TestUploadAssetUnknownSession(t *testing.T) {
	documents, _, _, _, _ := newTestDocumentService()

	file := multipartFile(t, "file", "selfie.jpg", "image/jpeg", []byte("jpeg-bytes"))

	_, err := documents.UploadAsset(context.Background(), "no-such-session", "profile_photo", file)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUploadAssetRejectsDisallowedContentType(t *testing.T) {
	documents, onboarding, progressCache, _, store := newTestDocumentService()

	init, _ := onboarding.Initialize(context.Background(), &dto.InitializeRequest{})

	file := multipartFile(t, "file", "script.svg", "image/svg+xml", []byte("<svg/>"))

	_, err := documents.UploadAsset(context.Background(), init.SessionToken, "profile_photo", file)

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, store.keys)

	cached, _ := progressCache.Load(context.Background(), init.SessionToken)
	assert.NotContains(t, cached.Fields, "profile_photo_url")
}
