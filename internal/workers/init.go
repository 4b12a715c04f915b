package workers

import (
	"context"
	"os"

	"asx-vms/rosterd/internal/common"
	"asx-vms/rosterd/internal/logging"
	"asx-vms/rosterd/internal/metrics"
	"asx-vms/rosterd/internal/notify"
)

type WorkersContainer struct {
	Notify *NotifyWorker
}

// InitWorkers starts the background notification worker when a webhook
// URL is configured. Without one, lifecycle events stay on the stream
// until trimmed; the core never depends on delivery.
func InitWorkers(ctx context.Context, queue *common.RedisQueueService, metricsReg *metrics.MetricsRegistry) *WorkersContainer {
	webhookURL := os.Getenv("DISCORD_WEBHOOK_URL")
	if webhookURL == "" {
		logging.Warn("DISCORD_WEBHOOK_URL not set, notification worker disabled")
		return &WorkersContainer{}
	}

	worker := NewNotifyWorker(queue, notify.NewDiscordWebhookClient(webhookURL), metricsReg)
	go worker.Start(ctx)

	return &WorkersContainer{Notify: worker}
}
