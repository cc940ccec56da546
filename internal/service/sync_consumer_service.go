// FILE: internal/service/sync_consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"sbl-onboarding-be/internal/dto"
	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/repository/specification"
	"sbl-onboarding-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the step sync topic and mirrors accepted steps
// into the remote submission row. Every write here is best effort: the
// progress cache is the source of truth and a lost sync never blocks the
// candidate.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.StepSyncMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal step sync message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	// Without an email there is no remote key yet. The step stays cache
	// only until contact registration.
	if payload.Email == nil || *payload.Email == "" {
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubmissionRepository()

	submission, err := repo.FindOne(ctx, specification.ByEmail{Email: *payload.Email})
	if err != nil {
		log.Printf("[ERROR] Failed to load submission for %s: %v", *payload.Email, err)
		msg.Nack()
		return
	}

	if submission == nil {
		submission = &entity.FormSubmission{
			Id:        uuid.New(),
			Email:     *payload.Email,
			Fields:    make(map[string]interface{}),
			CreatedAt: time.Now(),
		}
	}

	applyStepSync(submission, &payload)

	if err := repo.Upsert(ctx, submission); err != nil {
		log.Printf("[ERROR] Failed to sync step %d for %s: %v", payload.Step, *payload.Email, err)
		msg.Nack()
		return
	}

	msg.Ack()
}

// applyStepSync folds a step message into the remote row. Fields merge
// additively and well known keys are lifted into their typed columns.
func applyStepSync(submission *entity.FormSubmission, payload *dto.StepSyncMessage) {
	if submission.Fields == nil {
		submission.Fields = make(map[string]interface{}, len(payload.Fields))
	}
	for k, v := range payload.Fields {
		submission.Fields[k] = v
	}

	liftKnownFields(submission)

	if payload.Step > submission.CurrentStep {
		submission.CurrentStep = payload.Step
	}
	submission.CompletedSteps = mergeCompletedSteps(submission.CompletedSteps, payload.CompletedSteps)
	if payload.OccurredAt.After(submission.LastActivity) {
		submission.LastActivity = payload.OccurredAt
	}
}

func mergeCompletedSteps(existing, incoming []int) []int {
	seen := make(map[int]bool, len(existing))
	for _, s := range existing {
		seen[s] = true
	}
	for _, s := range incoming {
		if !seen[s] {
			existing = append(existing, s)
			seen[s] = true
		}
	}
	return existing
}

// liftKnownFields copies recognised form keys into the typed submission
// columns so back office queries do not need to dig through the JSON blob.
func liftKnownFields(s *entity.FormSubmission) {
	str := func(key string) (string, bool) {
		v, ok := s.Fields[key].(string)
		return v, ok
	}

	if v, ok := str("language"); ok {
		s.Language = v
	}
	if v, ok := str("full_name"); ok {
		s.FullName = v
	}
	if v, ok := str("phone"); ok {
		s.Phone = v
	}
	if v, ok := str("selected_depot"); ok {
		s.SelectedDepot = v
	}
	if v, ok := str("depot_code"); ok {
		s.DepotCode = v
	}
	if v, ok := str("birth_date"); ok {
		s.BirthDate = &v
	}
	if v, ok := str("birth_city"); ok {
		s.BirthCity = v
	}
	if v, ok := str("mother_name"); ok {
		s.MotherName = v
	}
	if v, ok := str("mother_surname"); ok {
		s.MotherSurname = v
	}
	if v, ok := str("next_of_kin_name"); ok {
		s.NextOfKinName = v
	}
	if v, ok := str("next_of_kin_relationship"); ok {
		s.NextOfKinRelationship = v
	}
	if v, ok := str("next_of_kin_phone"); ok {
		s.NextOfKinPhone = v
	}
	if v, ok := str("national_insurance_number"); ok {
		s.NationalInsuranceNumber = v
	}
	if v, ok := str("utr_number"); ok {
		s.UtrNumber = v
	}
	if v, ok := str("employment_status"); ok {
		s.EmploymentStatus = v
	}
	if v, ok := str("vat_number"); ok {
		s.VatNumber = v
	}
	if v, ok := str("profile_photo_url"); ok {
		s.ProfilePhotoURL = v
	}
	if v, ok := str("driving_licence_front_url"); ok {
		s.DrivingLicenceFrontURL = v
	}
	if v, ok := str("driving_licence_back_url"); ok {
		s.DrivingLicenceBackURL = v
	}
	if v, ok := str("bank_account_number"); ok {
		s.BankAccountNumber = v
	}
	if v, ok := str("bank_sort_code"); ok {
		s.BankSortCode = v
	}
	if v, ok := s.Fields["payment_declaration_accepted"].(bool); ok {
		s.PaymentDeclarationAccepted = v
	}
	if raw, ok := s.Fields["address_history"].([]interface{}); ok {
		history := make([]map[string]interface{}, 0, len(raw))
		for _, item := range raw {
			if entry, ok := item.(map[string]interface{}); ok {
				history = append(history, entry)
			}
		}
		s.AddressHistory = history
	}
}
