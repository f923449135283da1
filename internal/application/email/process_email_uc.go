package email

import (
	"context"

	"go.uber.org/zap"
	"mailtriage/internal/domain/email"
)

// ProcessEmailUseCase runs the classify → dispatch pipeline for one email.
type ProcessEmailUseCase struct {
	classifier Classifier
	dispatcher *Dispatcher
	logger     *zap.Logger
}

func NewProcessEmailUseCase(classifier Classifier, dispatcher *Dispatcher, logger *zap.Logger) *ProcessEmailUseCase {
	return &ProcessEmailUseCase{
		classifier: classifier,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute never returns an error: provider failures are logged here and
// surface as a failed result. Success tracks classification only — a failed
// reply draft still yields Success=true with an empty ResponseSent.
func (uc *ProcessEmailUseCase) Execute(ctx context.Context, e *email.Email) email.ProcessingResult {
	category, err := uc.classifier.Classify(ctx, e)
	if err != nil {
		uc.logger.Error("classification failed",
			zap.String("email_id", e.ID),
			zap.Error(err),
		)
		return email.NewFailureResult(e.ID)
	}

	response := uc.dispatcher.Dispatch(ctx, e, category)

	uc.logger.Info("email processed",
		zap.String("email_id", e.ID),
		zap.String("category", category.String()),
	)

	return email.NewSuccessResult(e.ID, category, response)
}
