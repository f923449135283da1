package email

import (
	"context"

	"mailtriage/internal/domain/email"
)

type Classifier interface {
	Classify(ctx context.Context, e *email.Email) (email.Category, error)
}

type Responder interface {
	Draft(ctx context.Context, e *email.Email, category email.Category) (string, error)
}

// Notifier is the downstream collaborator surface: email delivery, ticketing
// and the feedback store. Implementations acknowledge by returning nil.
type Notifier interface {
	SendComplaintResponse(ctx context.Context, emailID, payload string) error
	SendStandardResponse(ctx context.Context, emailID, payload string) error
	CreateSupportTicket(ctx context.Context, emailID, payload string) error
	CreateUrgentTicket(ctx context.Context, emailID string, category email.Category, payload string) error
	LogCustomerFeedback(ctx context.Context, emailID, payload string) error
}

type ResultRepository interface {
	Save(ctx context.Context, res email.ProcessingResult) error
	AlreadyProcessed(ctx context.Context, emailID string) (bool, error)
}
