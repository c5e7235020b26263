package storage

import (
	"context"
	"gmao/pkg/domain"
)

type ChecklistStorage interface {
	// CreateChecklist persists the checklist row only; its items are ignored
	// and must be stored with CreateChecklistItems.
	CreateChecklist(ctx context.Context, checklist domain.Checklist) (*domain.Checklist, error)
	CreateChecklistItems(ctx context.Context, items ...domain.ChecklistItem) ([]domain.ChecklistItem, error)
	// ChecklistByType returns the oldest checklist matching type and subtype,
	// with its items, or nil when none matches.
	ChecklistByType(ctx context.Context, sensorType, subtype string) (*domain.Checklist, error)
}
