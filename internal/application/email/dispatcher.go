package email

import (
	"context"

	"go.uber.org/zap"
	"mailtriage/internal/domain/email"
)

type handlerFunc func(ctx context.Context, e *email.Email) string

// Dispatcher routes a classified email to its category handler. Each handler
// drafts a reply via the Responder and performs exactly one downstream
// action, even when drafting failed and the payload is empty.
type Dispatcher struct {
	responder Responder
	notifier  Notifier
	handlers  map[email.Category]handlerFunc
	logger    *zap.Logger
}

func NewDispatcher(responder Responder, notifier Notifier, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		responder: responder,
		notifier:  notifier,
		logger:    logger,
	}
	d.handlers = map[email.Category]handlerFunc{
		email.CategoryComplaint:      d.handleComplaint,
		email.CategoryInquiry:        d.handleInquiry,
		email.CategoryFeedback:       d.handleFeedback,
		email.CategorySupportRequest: d.handleSupportRequest,
		email.CategoryOther:          d.handleOther,
	}
	return d
}

// Dispatch returns the reply text sent downstream, or "" if none was
// generated. Categories without a handler fall back to the "other" handler.
func (d *Dispatcher) Dispatch(ctx context.Context, e *email.Email, category email.Category) string {
	handler, ok := d.handlers[category]
	if !ok {
		handler = d.handleOther
	}
	return handler(ctx, e)
}

func (d *Dispatcher) draft(ctx context.Context, e *email.Email, category email.Category) string {
	reply, err := d.responder.Draft(ctx, e, category)
	if err != nil {
		d.logger.Error("response generation failed",
			zap.String("email_id", e.ID),
			zap.String("category", category.String()),
			zap.Error(err),
		)
		return ""
	}
	return reply
}

func (d *Dispatcher) handleComplaint(ctx context.Context, e *email.Email) string {
	reply := d.draft(ctx, e, email.CategoryComplaint)
	if err := d.notifier.SendComplaintResponse(ctx, e.ID, reply); err != nil {
		d.logger.Error("send complaint response failed", zap.String("email_id", e.ID), zap.Error(err))
	}
	return reply
}

func (d *Dispatcher) handleInquiry(ctx context.Context, e *email.Email) string {
	reply := d.draft(ctx, e, email.CategoryInquiry)
	if err := d.notifier.SendStandardResponse(ctx, e.ID, reply); err != nil {
		d.logger.Error("send standard response failed", zap.String("email_id", e.ID), zap.Error(err))
	}
	return reply
}

func (d *Dispatcher) handleFeedback(ctx context.Context, e *email.Email) string {
	reply := d.draft(ctx, e, email.CategoryFeedback)
	if err := d.notifier.LogCustomerFeedback(ctx, e.ID, reply); err != nil {
		d.logger.Error("log customer feedback failed", zap.String("email_id", e.ID), zap.Error(err))
	}
	return reply
}

func (d *Dispatcher) handleSupportRequest(ctx context.Context, e *email.Email) string {
	reply := d.draft(ctx, e, email.CategorySupportRequest)
	if err := d.notifier.CreateSupportTicket(ctx, e.ID, reply); err != nil {
		d.logger.Error("create support ticket failed", zap.String("email_id", e.ID), zap.Error(err))
	}
	return reply
}

func (d *Dispatcher) handleOther(ctx context.Context, e *email.Email) string {
	reply := d.draft(ctx, e, email.CategoryOther)
	if err := d.notifier.SendStandardResponse(ctx, e.ID, reply); err != nil {
		d.logger.Error("send standard response failed", zap.String("email_id", e.ID), zap.Error(err))
	}
	return reply
}
