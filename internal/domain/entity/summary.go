// Package entity defines the core domain entities and validation logic for the application.
// It contains the Summary record, the field-level validation error model and the
// URL rules every stored summary must satisfy.
package entity

import "time"

// Summary is a stored record associating a URL with caller-supplied text.
type Summary struct {
	ID        int64
	URL       string
	Summary   string
	CreatedAt time.Time
}

// SummaryUpdate carries the fields replaced by an update.
// Both fields are required; URL is already in canonical form.
type SummaryUpdate struct {
	URL     string
	Summary string
}
