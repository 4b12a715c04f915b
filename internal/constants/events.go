package constants

// Lifecycle event queue (Redis Stream) settings.
const (
	LifecycleStream        = "roster_lifecycle"
	LifecycleConsumerGroup = "notifiers"
	LifecycleStreamMaxLen  = 10000
)
