package status

import "time"

// ConnectionStatus is the last recorded connection status of the sync controller
type ConnectionStatus struct {
	// State is the controller's connection state when the status was recorded
	State string `json:"state"`

	// Message is the banner message shown for the state, if any
	Message string `json:"message,omitempty"`

	// LastAttempt is the timestamp of the last network attempt
	LastAttempt *time.Time `json:"lastAttempt,omitempty"`

	// AttemptCount is the number of attempts since the last successful connection
	AttemptCount int `json:"attemptCount,omitempty"`

	// LastLoadTime is the timestamp of the last published primary data
	LastLoadTime *time.Time `json:"lastLoadTime,omitempty"`

	// LastError is the error of the last failed attempt
	LastError string `json:"lastError,omitempty"`

	// HasData reports whether primary content was available
	HasData bool `json:"hasData"`

	// AppVersion is the version of the binary that recorded the status
	AppVersion string `json:"appVersion,omitempty"`
}

// IsZero reports whether nothing was ever recorded
func (s *ConnectionStatus) IsZero() bool {
	return s == nil || (s.State == "" && s.LastAttempt == nil && s.LastLoadTime == nil)
}
