package models

import "time"

// HealthStatus is one of the four health states of a registered server.
type HealthStatus string

const (
	StatusOnline  HealthStatus = "online"
	StatusOffline HealthStatus = "offline"
	StatusError   HealthStatus = "error"
	StatusUnknown HealthStatus = "unknown"
)

// HealthSnapshot is the current health view of a single server.
//
// Invariant: StatusOnline implies LastSuccessAt <= LastProbeAt and
// ConsecutiveErrors == 0. EWMAResponseTime is updated only on online
// transitions carrying a measurement.
type HealthSnapshot struct {
	Status            HealthStatus `json:"status"`
	LastProbeAt       time.Time    `json:"last_check"`
	LastSuccessAt     time.Time    `json:"last_successful_connection"`
	ConsecutiveErrors int          `json:"error_count"`
	EWMAResponseTime  float64      `json:"average_response_time"`
}
