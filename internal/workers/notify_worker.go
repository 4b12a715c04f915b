package workers

import (
	"context"
	"time"

	"asx-vms/rosterd/internal/common"
	"asx-vms/rosterd/internal/constants"
	"asx-vms/rosterd/internal/logging"
	"asx-vms/rosterd/internal/metrics"
	"asx-vms/rosterd/internal/notify"
	"asx-vms/rosterd/internal/roster"

	"github.com/google/uuid"
)

// NotifyWorker drains the lifecycle-event stream and posts each event to
// the Discord webhook. Delivery is best effort: a failed post is counted
// and acknowledged anyway so one broken event cannot wedge the queue.
type NotifyWorker struct {
	queue        *common.RedisQueueService
	webhook      *notify.DiscordWebhookClient
	metricsReg   *metrics.MetricsRegistry
	consumerName string
}

func NewNotifyWorker(queue *common.RedisQueueService, webhook *notify.DiscordWebhookClient, metricsReg *metrics.MetricsRegistry) *NotifyWorker {
	return &NotifyWorker{
		queue:        queue,
		webhook:      webhook,
		metricsReg:   metricsReg,
		consumerName: "notify-" + uuid.New().String()[:8],
	}
}

// Start runs the consume loop until ctx is cancelled.
func (w *NotifyWorker) Start(ctx context.Context) {
	if err := w.queue.CreateConsumerGroup(ctx, constants.LifecycleStream, constants.LifecycleConsumerGroup); err != nil {
		logging.Error("Failed to create lifecycle consumer group", "error", err.Error())
		return
	}

	logging.Info("Notification worker started", "consumer", w.consumerName)

	staleTicker := time.NewTicker(1 * time.Minute)
	defer staleTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Notification worker stopping", "consumer", w.consumerName)
			return
		case <-staleTicker.C:
			w.reclaimStale(ctx)
		default:
			w.consumeOne(ctx)
		}
	}
}

func (w *NotifyWorker) consumeOne(ctx context.Context) {
	event, msgID, err := w.queue.DequeueEvent(ctx, constants.LifecycleStream, constants.LifecycleConsumerGroup, w.consumerName, 5*time.Second)
	if err != nil {
		logging.Warn("Failed to read lifecycle stream", "error", err.Error())
		time.Sleep(2 * time.Second)
		return
	}
	if event == nil {
		return
	}

	w.deliver(ctx, event, msgID)
}

func (w *NotifyWorker) reclaimStale(ctx context.Context) {
	events, msgIDs, err := w.queue.ClaimStaleEvents(ctx, constants.LifecycleStream, constants.LifecycleConsumerGroup, w.consumerName, 5*time.Minute)
	if err != nil {
		logging.Warn("Failed to claim stale lifecycle events", "error", err.Error())
		return
	}

	for i, event := range events {
		w.deliver(ctx, event, msgIDs[i])
	}

	if err := w.queue.TrimStream(ctx, constants.LifecycleStream, constants.LifecycleStreamMaxLen); err != nil {
		logging.Warn("Failed to trim lifecycle stream", "error", err.Error())
	}
}

func (w *NotifyWorker) deliver(ctx context.Context, event *roster.LifecycleEvent, msgID string) {
	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := w.webhook.Send(sendCtx, event); err != nil {
		w.metricsReg.NotificationsFailedTotal.Inc()
		logging.Warn("Discord notification failed",
			"kind", string(event.Kind),
			"callsign", event.Callsign,
			"error", err.Error(),
		)
	} else {
		w.metricsReg.NotificationsSentTotal.Inc()
		logging.Info("Discord notification sent",
			"kind", string(event.Kind),
			"callsign", event.Callsign,
		)
	}

	if err := w.queue.AckEvent(ctx, constants.LifecycleStream, constants.LifecycleConsumerGroup, msgID); err != nil {
		logging.Warn("Failed to ack lifecycle event", "message_id", msgID, "error", err.Error())
	}
}
