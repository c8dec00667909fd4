package worker

import (
	"context"

	"github.com/spec-kit/schedule-service/internal/events"
	"github.com/spec-kit/schedule-service/internal/observability"
	"github.com/spec-kit/schedule-service/internal/service"
)

// StartNotificationWorker registers notification handlers and counts every change
// notification per topic. The returned func detaches both.
func StartNotificationWorker(notificationService *service.NotificationService, bus events.Bus, metrics *observability.Metrics) func() {
	var unsubscribe []func()
	if bus != nil && metrics != nil {
		for _, topic := range events.Topics {
			unsubscribe = append(unsubscribe, bus.Subscribe(topic, func(_ context.Context, change events.Change) error {
				metrics.RecordChange(string(change.Topic))
				return nil
			}))
		}
	}
	if notificationService != nil {
		notificationService.RegisterHandlers()
	}
	return func() {
		for _, fn := range unsubscribe {
			fn()
		}
		if notificationService != nil {
			notificationService.Close()
		}
	}
}
