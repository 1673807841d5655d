package domain

import "time"

// HealthStatus is the latest view of the generation service's
// availability. It is overwritten on each probe tick and never
// persisted; it is advisory only and must not gate dispatch.
type HealthStatus struct {
	Available     bool      `json:"available"`
	LastCheckedAt time.Time `json:"last_checked_at"`
	Message       string    `json:"message,omitempty"`
}

// StatusListener is notified on availability transitions. The monitor
// guarantees idempotent delivery: repeated failing probes produce one
// ServiceOffline call, not one per probe.
type StatusListener interface {
	ServiceOffline(status HealthStatus)
	ServiceOnline(status HealthStatus)
}
