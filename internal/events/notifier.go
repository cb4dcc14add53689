package events

import (
	"context"
	"log/slog"
	"time"

	"deposit-accounts/internal/models"

	"github.com/google/uuid"
)

const publishTimeout = 2 * time.Second

// PublishMetrics records the outcome of event publish attempts
type PublishMetrics interface {
	RecordEventPublished(eventType string)
	RecordEventPublishFailure(eventType string)
}

// Notifier delivers lifecycle events on a best-effort basis. Publish
// failures are logged and counted but never surfaced to the caller, so a
// broken stream cannot fail an account operation that already committed.
type Notifier struct {
	publisher PublisherInterface
	logger    *slog.Logger
	metrics   PublishMetrics
}

// NewNotifier creates a best-effort notifier
func NewNotifier(publisher PublisherInterface, logger *slog.Logger, metrics PublishMetrics) *Notifier {
	return &Notifier{
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// Notify publishes the event, swallowing any failure
func (n *Notifier) Notify(ctx context.Context, event EntityActionEvent) {
	if n.publisher == nil {
		return
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := n.publisher.Publish(publishCtx, event); err != nil {
		n.logger.Warn("failed to publish account event",
			"event_type", event.EventType,
			"entity_id", event.EntityID,
			"error", err)
		if n.metrics != nil {
			n.metrics.RecordEventPublishFailure(event.EventType)
		}
		return
	}

	if n.metrics != nil {
		n.metrics.RecordEventPublished(event.EventType)
	}
}

// AccountCreated announces a newly opened account
func (n *Notifier) AccountCreated(ctx context.Context, account *models.Account) {
	n.Notify(ctx, NewAccountEvent(EventTypeAccountCreated, account.ID, account))
}

// AccountUpdated announces a mutation of an existing account
func (n *Notifier) AccountUpdated(ctx context.Context, account *models.Account) {
	n.Notify(ctx, NewAccountEvent(EventTypeAccountUpdated, account.ID, account))
}

// AccountDeleted announces a removed account
func (n *Notifier) AccountDeleted(ctx context.Context, accountID uuid.UUID) {
	n.Notify(ctx, NewAccountEvent(EventTypeAccountDeleted, accountID, nil))
}
