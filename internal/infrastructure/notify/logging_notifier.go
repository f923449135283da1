package notify

import (
	"context"

	"go.uber.org/zap"
	"mailtriage/internal/domain/email"
)

// LoggingNotifier stands in for the real email-delivery, ticketing and
// feedback-store integrations. Each action records one info log line and
// acknowledges immediately.
type LoggingNotifier struct {
	logger *zap.Logger
}

func NewLoggingNotifier(logger *zap.Logger) *LoggingNotifier {
	return &LoggingNotifier{logger: logger}
}

func (n *LoggingNotifier) SendComplaintResponse(ctx context.Context, emailID, payload string) error {
	n.logger.Info("sending complaint response", zap.String("email_id", emailID))
	return nil
}

func (n *LoggingNotifier) SendStandardResponse(ctx context.Context, emailID, payload string) error {
	n.logger.Info("sending standard response", zap.String("email_id", emailID))
	return nil
}

func (n *LoggingNotifier) CreateSupportTicket(ctx context.Context, emailID, payload string) error {
	n.logger.Info("creating support ticket", zap.String("email_id", emailID))
	return nil
}

func (n *LoggingNotifier) CreateUrgentTicket(ctx context.Context, emailID string, category email.Category, payload string) error {
	n.logger.Info("creating urgent ticket",
		zap.String("email_id", emailID),
		zap.String("category", category.String()),
	)
	return nil
}

func (n *LoggingNotifier) LogCustomerFeedback(ctx context.Context, emailID, payload string) error {
	n.logger.Info("logging customer feedback", zap.String("email_id", emailID))
	return nil
}
