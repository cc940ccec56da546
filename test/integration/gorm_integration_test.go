package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/repository/specification"
	"sbl-onboarding-be/internal/repository/unitofwork"
	"sbl-onboarding-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.SubmissionRepository())
	assert.NotNil(t, uow.CandidateRepository())
	assert.NotNil(t, uow.DocumentTypeRepository())
	assert.NotNil(t, uow.CandidateDocumentRepository())
	assert.NotNil(t, uow.AbandonmentRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Submission Repository", func(t *testing.T) {
		count, err := uow.SubmissionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Submission count: %d", count)
	})

	t.Run("Check Document Type Repository", func(t *testing.T) {
		count, err := uow.DocumentTypeRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document type count: %d", count)
	})

	t.Run("Upsert Submission Roundtrip", func(t *testing.T) {
		ctx := context.Background()
		email := "test-integration-" + uuid.New().String() + "@example.com"

		submission := &entity.FormSubmission{
			Id:           uuid.New(),
			Email:        email,
			FullName:     "Integration Test Candidate",
			CurrentStep:  3,
			Fields:       map[string]interface{}{"language": "en"},
			LastActivity: time.Now(),
			CreatedAt:    time.Now(),
		}

		err := uow.SubmissionRepository().Upsert(ctx, submission)
		assert.NoError(t, err)

		// Upsert again on the same email must not create a second row.
		submission.CurrentStep = 4
		err = uow.SubmissionRepository().Upsert(ctx, submission)
		assert.NoError(t, err)

		found, err := uow.SubmissionRepository().FindOne(ctx, specification.ByEmail{Email: email})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, 4, found.CurrentStep)
			assert.Equal(t, "en", found.Fields["language"])

			// Cleanup
			assert.NoError(t, uow.SubmissionRepository().Delete(ctx, found.Id))
		}
	})
}
