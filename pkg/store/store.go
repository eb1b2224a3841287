// Package store provides persistence for analysis reports.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for server deployments
//
// Reports are immutable once saved. The store archives them by ID so the
// HTTP API can serve past analyses; graphs themselves are never persisted,
// only the derived reports.
//
// # Usage
//
// Create a store:
//
//	// Development
//	store := store.NewMemoryStore()
//
//	// Production
//	store, err := store.NewMongoStore(ctx, "mongodb://localhost:27017", "clowd")
//
// Archive and retrieve reports:
//
//	if err := store.SaveReport(ctx, report); err != nil {
//	    return err
//	}
//	report, err := store.GetReport(ctx, id)
package store

import (
	"context"
	"errors"

	"github.com/clowdgraph/clowd/pkg/analyze"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a report does not exist.
	ErrNotFound = errors.New("report not found")

	// ErrDuplicate is returned when a report ID is already archived.
	ErrDuplicate = errors.New("report already archived")
)

// Store archives analysis reports.
type Store interface {
	// SaveReport archives a report. Fails with ErrDuplicate if a report
	// with the same ID is already archived.
	SaveReport(ctx context.Context, report *analyze.Report) error

	// GetReport retrieves a report by ID. Fails with ErrNotFound if absent.
	GetReport(ctx context.Context, id string) (*analyze.Report, error)

	// ListReports returns the most recent reports, newest first, up to
	// limit. A non-positive limit returns all reports.
	ListReports(ctx context.Context, limit int) ([]*analyze.Report, error)

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}
