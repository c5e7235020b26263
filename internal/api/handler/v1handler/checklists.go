package v1handler

import (
	"context"
	"gmao/internal/api/specs/v1specs"
	"gmao/pkg/domain"

	"github.com/google/uuid"
)

func DomainChecklistToV1Specs(in *domain.Checklist) *v1specs.Checklist {
	items := make([]v1specs.ChecklistItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, v1specs.ChecklistItem{
			ID:       uuid.UUID(item.ID),
			Label:    item.Label,
			IsBefore: item.IsBefore,
		})
	}

	return &v1specs.Checklist{
		ID:        uuid.UUID(in.ID),
		Type:      in.Type,
		Subtype:   in.Subtype,
		Items:     items,
		CreatedAt: in.CreatedAt,
	}
}

func DomainResponseToV1Specs(in *domain.ChecklistResponse) v1specs.ChecklistResponse {
	return v1specs.ChecklistResponse{
		ID:        uuid.UUID(in.ID),
		SensorID:  uuid.UUID(in.SensorID),
		ItemID:    uuid.UUID(in.ItemID),
		UserID:    uuid.UUID(in.UserID),
		IsChecked: in.IsChecked,
		IsBefore:  in.IsBefore,
		CheckedAt: in.CheckedAt,
	}
}

// CreateChecklist authors a checklist with its items.
func (h Handler) CreateChecklist(ctx context.Context, req *v1specs.CreateChecklistRequest) (*v1specs.Checklist, error) {
	items := make([]domain.NewChecklistItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.NewChecklistItem{Label: item.Label, IsBefore: item.IsBefore})
	}

	c, err := h.deps.Maintenance.CreateChecklist(ctx, domain.NewChecklist{
		Type:    req.Type,
		Subtype: req.Subtype,
		Items:   items,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainChecklistToV1Specs(c), nil
}

// RecordResponses stores a batch of responses. Entries without a user are
// attributed to the authenticated caller.
func (h Handler) RecordResponses(ctx context.Context,
	req *v1specs.RecordResponsesRequest) (v1specs.ChecklistResponseList, error) {
	caller := uuid.UUID(GetUserIDFromContext(ctx))
	responses := make([]domain.ChecklistResponse, 0, len(req.Responses))
	for _, r := range req.Responses {
		responses = append(responses, domain.ChecklistResponse{
			SensorID:  domain.SensorID(r.SensorID),
			ItemID:    domain.ChecklistItemID(r.ItemID),
			UserID:    domain.UserID(r.UserID.Or(caller)),
			IsChecked: r.IsChecked,
			IsBefore:  r.IsBefore,
		})
	}

	stored, err := h.deps.Maintenance.RecordResponses(ctx, responses)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := make(v1specs.ChecklistResponseList, 0, len(stored))
	for i := range stored {
		out = append(out, DomainResponseToV1Specs(&stored[i]))
	}

	return out, nil
}
