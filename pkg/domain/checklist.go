package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChecklistID uniquely identifies a checklist.
type ChecklistID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ChecklistID) String() string { return uuid.UUID(id).String() }

// ChecklistItemID uniquely identifies a checklist item.
type ChecklistItemID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ChecklistItemID) String() string { return uuid.UUID(id).String() }

// Checklist is the set of inspection items for a sensor (type, subtype) pair.
type Checklist struct {
	ID ChecklistID `json:"id"`

	Type    string          `json:"type"`
	Subtype string          `json:"subtype"`
	Items   []ChecklistItem `json:"items"`

	CreatedAt time.Time `json:"createdAt"`
}

// ChecklistItem is a single inspection step. IsBefore is true for
// pre-maintenance items and false for post-maintenance ones.
type ChecklistItem struct {
	ID          ChecklistItemID `json:"id"`
	ChecklistID ChecklistID     `json:"checklistId"`

	Label    string `json:"label"`
	IsBefore bool   `json:"isBefore"`
}

// NewChecklist is the input of checklist authoring.
type NewChecklist struct {
	Type    string
	Subtype string
	Items   []NewChecklistItem
}

// NewChecklistItem is one item of a NewChecklist.
type NewChecklistItem struct {
	Label    string
	IsBefore bool
}

// ItemRef is the presentation form of a checklist item handed to a
// technician before any response exists.
type ItemRef struct {
	ID    ChecklistItemID `json:"id"`
	Label string          `json:"label"`
}

// ReturnChecklist is the outcome of a sensor return: the matched checklist
// split into before and after maintenance items.
type ReturnChecklist struct {
	ChecklistID       ChecklistID `json:"checklistId"`
	BeforeMaintenance []ItemRef   `json:"beforeMaintenance"`
	AfterMaintenance  []ItemRef   `json:"afterMaintenance"`
}

// SplitItems partitions items by their IsBefore flag, keeping input order.
func SplitItems(items []ChecklistItem) ([]ItemRef, []ItemRef) {
	before := make([]ItemRef, 0, len(items))
	after := make([]ItemRef, 0, len(items))
	for _, item := range items {
		ref := ItemRef{ID: item.ID, Label: item.Label}
		if item.IsBefore {
			before = append(before, ref)
		} else {
			after = append(after, ref)
		}
	}

	return before, after
}
