package notify

import (
	"context"
	"time"

	"asx-vms/rosterd/internal/common"
	"asx-vms/rosterd/internal/constants"
	"asx-vms/rosterd/internal/logging"
	"asx-vms/rosterd/internal/metrics"
	"asx-vms/rosterd/internal/roster"
)

// Dispatcher hands lifecycle events to the outbound notification path.
// Dispatch must never block the triggering operation or surface a
// failure to it.
type Dispatcher interface {
	Dispatch(event roster.LifecycleEvent)
}

// QueueDispatcher enqueues events onto the Redis Stream consumed by the
// notification worker. Enqueue runs on its own goroutine with its own
// timeout; a failed enqueue is logged and dropped.
type QueueDispatcher struct {
	queue      *common.RedisQueueService
	metricsReg *metrics.MetricsRegistry
}

func NewQueueDispatcher(queue *common.RedisQueueService, metricsReg *metrics.MetricsRegistry) *QueueDispatcher {
	return &QueueDispatcher{queue: queue, metricsReg: metricsReg}
}

func (d *QueueDispatcher) Dispatch(event roster.LifecycleEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := d.queue.EnqueueEvent(ctx, constants.LifecycleStream, &event); err != nil {
			d.metricsReg.NotificationsDroppedTotal.Inc()
			logging.Warn("Failed to enqueue lifecycle event",
				"kind", string(event.Kind),
				"callsign", event.Callsign,
				"error", err.Error(),
			)
			return
		}

		d.metricsReg.LifecycleEventsTotal.WithLabelValues(string(event.Kind)).Inc()
	}()
}

// NoopDispatcher is used when Redis is not configured. Events are logged
// so operators can still see lifecycle activity.
type NoopDispatcher struct{}

func (NoopDispatcher) Dispatch(event roster.LifecycleEvent) {
	logging.Info("Lifecycle event (notifications disabled)",
		"kind", string(event.Kind),
		"callsign", event.Callsign,
	)
}
