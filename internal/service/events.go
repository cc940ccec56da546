package service

// Event type codes published on the NATS bus and consumed by the
// automation worker.
const (
	EventFormCompleted    = "FORM_COMPLETED"
	EventFormAbandoned    = "FORM_ABANDONED"
	EventDocumentReviewed = "DOCUMENT_REVIEWED"
)
