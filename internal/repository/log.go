package repository

import (
	"context"

	"carbon-tracker/internal/domain"
)

// LogRepository defines persistence operations for LogEntry records.
type LogRepository interface {
	Init(ctx context.Context) error
	// Create persists the entry and fills in its assigned id.
	Create(ctx context.Context, entry *domain.LogEntry) error
	// ListByUser returns the owner's entries in ascending creation order.
	ListByUser(ctx context.Context, userID string) ([]domain.LogEntry, error)
}
