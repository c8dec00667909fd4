package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/schedule-service/internal/config"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/events"
)

// NotificationService handles emitting notifications for change events.
type NotificationService struct {
	bus    events.Bus
	logger *zap.Logger
	cfg    config.NotificationConfig
	unsubs []func()
}

// NewNotificationService creates the service.
func NewNotificationService(bus events.Bus, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		bus:    bus,
		logger: logger,
		cfg:    cfg,
	}
}

// RegisterHandlers subscribes to every topic.
func (n *NotificationService) RegisterHandlers() {
	if n.bus == nil {
		return
	}
	n.unsubs = append(n.unsubs,
		n.bus.Subscribe(events.TopicAssignmentChanged, n.handleAssignmentChanged),
		n.bus.Subscribe(events.TopicRequestChanged, n.handleRequestChanged),
		n.bus.Subscribe(events.TopicAvailabilityChanged, n.handleAvailabilityChanged),
		n.bus.Subscribe(events.TopicEventChanged, n.handleEventChanged),
	)
}

// Close removes the subscriptions.
func (n *NotificationService) Close() {
	for _, unsubscribe := range n.unsubs {
		unsubscribe()
	}
	n.unsubs = nil
}

func (n *NotificationService) handleAssignmentChanged(ctx context.Context, change events.Change) error {
	n.logger.Info("AssignmentChanged", zap.String("assignment_id", change.EntityID), zap.String("action", string(change.Action)), zap.Any("payload", change.Payload))
	if payload, ok := change.Payload.(events.AssignmentChangedPayload); ok && payload.OldStatus != payload.NewStatus {
		n.sendEmailNotificationStub(ctx, change, payload.Recipient)
	}
	n.sendWebhookNotificationStub(ctx, change)
	return nil
}

func (n *NotificationService) handleRequestChanged(ctx context.Context, change events.Change) error {
	n.logger.Info("RequestChanged", zap.String("request_id", change.EntityID), zap.String("action", string(change.Action)), zap.Any("payload", change.Payload))
	if payload, ok := change.Payload.(events.RequestChangedPayload); ok && payload.Status != domain.RequestStatusPending {
		n.sendEmailNotificationStub(ctx, change, payload.ClientEmail)
	}
	n.sendWebhookNotificationStub(ctx, change)
	return nil
}

func (n *NotificationService) handleAvailabilityChanged(ctx context.Context, change events.Change) error {
	n.logger.Info("AvailabilityChanged", zap.String("date", change.EntityID), zap.String("action", string(change.Action)))
	n.sendWebhookNotificationStub(ctx, change)
	return nil
}

func (n *NotificationService) handleEventChanged(ctx context.Context, change events.Change) error {
	n.logger.Info("EventChanged", zap.String("event_id", change.EntityID), zap.Any("payload", change.Payload))
	n.sendWebhookNotificationStub(ctx, change)
	return nil
}

// Remind notifies the recipient of a pending assignment that its date is near.
func (n *NotificationService) Remind(ctx context.Context, a domain.Assignment) {
	n.logger.Info("AssignmentReminder",
		zap.String("assignment_id", a.ID),
		zap.String("recipient", firstNonBlank(a.AssignedToEmail, a.AssignedToID, a.AssignedTo)),
		zap.String("task_date", a.TaskDate),
		zap.String("task_time", a.TaskTime))
	n.sendEmailNotificationStub(ctx, events.Change{Topic: events.TopicAssignmentChanged, EntityID: a.ID}, a.AssignedToEmail)
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, change events.Change, to string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" || strings.TrimSpace(to) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("entity_id", change.EntityID),
		zap.String("topic", string(change.Topic)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, change events.Change) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("entity_id", change.EntityID),
		zap.String("topic", string(change.Topic)))
}
