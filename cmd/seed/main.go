package main

import (
	"log"
	"os"

	"sbl-onboarding-be/internal/constant"
	"sbl-onboarding-be/internal/model"
	"sbl-onboarding-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Document Type Policy...")

	// The required-document policy. The VAT certificate is the only
	// optional entry; completion ignores it.
	types := []model.DocumentType{
		{Code: constant.DocRightToWork, DisplayName: constant.DocumentLabels[constant.DocRightToWork], IsRequired: true, DisplayOrder: 1},
		{Code: constant.DocProofOfAddress, DisplayName: constant.DocumentLabels[constant.DocProofOfAddress], IsRequired: true, DisplayOrder: 2},
		{Code: constant.DocNationalInsurance, DisplayName: constant.DocumentLabels[constant.DocNationalInsurance], IsRequired: true, DisplayOrder: 3},
		{Code: constant.DocBankStatement, DisplayName: constant.DocumentLabels[constant.DocBankStatement], IsRequired: true, DisplayOrder: 4},
		{Code: constant.DocVatCertificate, DisplayName: constant.DocumentLabels[constant.DocVatCertificate], IsRequired: false, DisplayOrder: 5},
	}

	for _, t := range types {
		var existing model.DocumentType
		if err := db.Where("code = ?", t.Code).First(&existing).Error; err == nil {
			color.Yellow("Document type '%s' already exists, skipping...", t.Code)
			continue
		}

		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating document type '%s': %v", t.Code, err)
		} else {
			color.Green("Created document type: %s (%s)", t.DisplayName, t.Code)
		}
	}

	color.Green("✅ Document type seeding completed!")
}
