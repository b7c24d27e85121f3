// Package summary provides use cases for managing summary records.
// It implements the create, read, update, delete and list operations on top of
// the summary repository, including the read-before-mutate existence checks.
package summary

import "errors"

// Sentinel errors for summary use case operations.
var (
	// ErrSummaryNotFound indicates that no summary has the requested id.
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrInvalidSummaryID indicates that the provided summary ID is invalid.
	// Summary IDs must be positive integers.
	ErrInvalidSummaryID = errors.New("invalid summary ID")
)
