package main

import (
	"context"
	"log"
	"os"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/model"
	"sbl-onboarding-be/internal/repository/specification"
	"sbl-onboarding-be/internal/repository/unitofwork"
	"sbl-onboarding-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	color.White("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	color.White("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.FormSubmission{},
		&model.FormAbandonment{},
		&model.DocumentType{},
		&model.CandidateDocument{},
		&model.Candidate{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Promotion: fold completed submissions into the normalized schema
	color.White("Step 3: Promoting completed submissions to candidates...")

	promoted, err := promoteCompletedSubmissions(context.Background(), unitofwork.NewRepositoryFactory(db))
	if err != nil {
		log.Fatalf("Error: Promotion failed: %v", err)
	}
	color.Green("Promoted %d completed submission(s).", promoted)

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}

// promoteCompletedSubmissions creates a Candidate row for every completed
// submission that does not have one yet and links its documents over.
// Runs in one transaction per submission so a single bad row cannot stall
// the whole batch.
func promoteCompletedSubmissions(ctx context.Context, factory unitofwork.RepositoryFactory) (int, error) {
	uow := factory.NewUnitOfWork(ctx)
	submissions, err := uow.SubmissionRepository().FindAll(ctx, specification.CompletedOnly{})
	if err != nil {
		return 0, err
	}

	promoted := 0
	for _, sub := range submissions {
		existing, err := uow.CandidateRepository().FindOne(ctx, specification.ByEmail{Email: sub.Email})
		if err != nil {
			return promoted, err
		}
		if existing != nil {
			continue // already promoted
		}

		candidate := candidateFromSubmission(sub)

		txUow := factory.NewUnitOfWork(ctx)
		if err := txUow.Begin(ctx); err != nil {
			return promoted, err
		}
		promoteErr := txUow.CandidateRepository().Create(ctx, candidate)
		if promoteErr == nil {
			promoteErr = txUow.CandidateDocumentRepository().AssignCandidate(ctx, sub.Id, candidate.Id)
		}
		if promoteErr != nil {
			_ = txUow.Rollback()
			color.Yellow("Warn: Failed to promote %s: %v", sub.Email, promoteErr)
			continue
		}
		if err := txUow.Commit(); err != nil {
			color.Yellow("Warn: Failed to promote %s: %v", sub.Email, err)
			continue
		}
		color.White("  promoted %s", sub.Email)
		promoted++
	}
	return promoted, nil
}

func candidateFromSubmission(sub *entity.FormSubmission) *entity.Candidate {
	return &entity.Candidate{
		Id:                      uuid.New(),
		Email:                   sub.Email,
		FullName:                sub.FullName,
		Phone:                   sub.Phone,
		Language:                sub.Language,
		SelectedDepot:           sub.SelectedDepot,
		DepotCode:               sub.DepotCode,
		BirthDate:               sub.BirthDate,
		BirthCity:               sub.BirthCity,
		MotherName:              sub.MotherName,
		MotherSurname:           sub.MotherSurname,
		NextOfKinName:           sub.NextOfKinName,
		NextOfKinRelationship:   sub.NextOfKinRelationship,
		NextOfKinPhone:          sub.NextOfKinPhone,
		NationalInsuranceNumber: sub.NationalInsuranceNumber,
		UtrNumber:               sub.UtrNumber,
		EmploymentStatus:        sub.EmploymentStatus,
		VatNumber:               sub.VatNumber,
		ProfilePhotoURL:         sub.ProfilePhotoURL,
		DrivingLicenceFrontURL:  sub.DrivingLicenceFrontURL,
		DrivingLicenceBackURL:   sub.DrivingLicenceBackURL,
		BankAccountNumber:       sub.BankAccountNumber,
		BankSortCode:            sub.BankSortCode,
		Status:                  entity.CandidateStatusComplete,
		OnboardingCompletedAt:   sub.CompletedAt,
	}
}
