package v1handler_test

import (
	"context"
	"gmao/internal/api/specs/v1specs"
	"gmao/pkg/domain"
	"gmao/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_CreateChecklist(t *testing.T) {
	m, h, ctx, _ := newMaintenanceHandler(t)

	checklistID := domain.ChecklistID(uuid.New())
	m.EXPECT().CreateChecklist(ctx, domain.NewChecklist{
		Type:    "pressure",
		Subtype: "piezo",
		Items: []domain.NewChecklistItem{
			{Label: "Clean", IsBefore: true},
			{Label: "Calibrate", IsBefore: false},
		},
	}).Return(&domain.Checklist{
		ID:      checklistID,
		Type:    "pressure",
		Subtype: "piezo",
		Items: []domain.ChecklistItem{
			{ID: domain.ChecklistItemID(uuid.New()), ChecklistID: checklistID, Label: "Clean", IsBefore: true},
			{ID: domain.ChecklistItemID(uuid.New()), ChecklistID: checklistID, Label: "Calibrate"},
		},
	}, nil)

	res, err := h.CreateChecklist(ctx, &v1specs.CreateChecklistRequest{
		Type:    "pressure",
		Subtype: "piezo",
		Items: []v1specs.CreateChecklistItem{
			{Label: "Clean", IsBefore: true},
			{Label: "Calibrate"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, uuid.UUID(checklistID), res.ID)
	require.Len(t, res.Items, 2)
	require.True(t, res.Items[0].IsBefore)
	require.False(t, res.Items[1].IsBefore)
}

func TestHandler_RecordResponses_DefaultsUserToCaller(t *testing.T) {
	m, h, ctx, userID := newMaintenanceHandler(t)

	sensorID, itemID, otherUser := uuid.New(), uuid.New(), uuid.New()
	checkedAt := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	m.EXPECT().RecordResponses(ctx, []domain.ChecklistResponse{
		{SensorID: domain.SensorID(sensorID), ItemID: domain.ChecklistItemID(itemID), UserID: userID,
			IsChecked: true, IsBefore: true},
		{SensorID: domain.SensorID(sensorID), ItemID: domain.ChecklistItemID(itemID), UserID: domain.UserID(otherUser)},
	}).DoAndReturn(func(_ context.Context, in []domain.ChecklistResponse) ([]domain.ChecklistResponse, error) {
		out := make([]domain.ChecklistResponse, len(in))
		for i, r := range in {
			r.ID = domain.ResponseID(uuid.New())
			r.CheckedAt = checkedAt
			out[i] = r
		}

		return out, nil
	})

	res, err := h.RecordResponses(ctx, &v1specs.RecordResponsesRequest{
		Responses: []v1specs.NewChecklistResponse{
			{SensorID: sensorID, ItemID: itemID, IsChecked: true, IsBefore: true},
			{SensorID: sensorID, ItemID: itemID, UserID: v1specs.NewOptUUID(otherUser)},
		},
	})
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, uuid.UUID(userID), res[0].UserID)
	require.Equal(t, otherUser, res[1].UserID)
	require.Equal(t, checkedAt, res[1].CheckedAt)
	require.NotEqual(t, uuid.Nil, res[0].ID)
}

func TestHandler_RecordResponses_Error(t *testing.T) {
	m, h, ctx, _ := newMaintenanceHandler(t)

	m.EXPECT().RecordResponses(ctx, gomock.Any()).Return(nil, serrors.KindOnly(serrors.ErrConstraintViolation))

	_, err := h.RecordResponses(ctx, &v1specs.RecordResponsesRequest{
		Responses: []v1specs.NewChecklistResponse{{SensorID: uuid.New(), ItemID: uuid.New()}},
	})
	require.ErrorIs(t, err, serrors.ErrConstraintViolation)
}
