package v1handler_test

import (
	"bytes"
	"context"
	"gmao/internal/api/handler/v1handler"
	"gmao/internal/api/specs/v1specs"
	mockmaintenance "gmao/internal/maintenance/mock"
	"gmao/pkg/domain"
	"gmao/pkg/serrors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMaintenanceHandler(t *testing.T) (*mockmaintenance.MockMaintenance, *v1handler.Handler, context.Context, domain.UserID) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mockmaintenance.NewMockMaintenance(ctrl)
	userID := domain.UserID(uuid.New())
	ctx := context.WithValue(context.Background(), v1handler.UserIDKey, userID)

	return m, v1handler.New(v1handler.Deps{Maintenance: m}), ctx, userID
}

func sampleSensor(createdBy domain.UserID) domain.Sensor {
	return domain.Sensor{
		ID:        domain.SensorID(uuid.New()),
		Reference: "S-001",
		Type:      "pressure",
		Subtype:   "piezo",
		Status:    domain.SensorStatusAvailable,
		CreatedBy: createdBy,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func sampleHistory(sensorID domain.SensorID) *domain.SensorHistory {
	at := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	tech := domain.User{ID: domain.UserID(uuid.New()), Name: "Tech", Email: "tech@example.com",
		Role: domain.UserRoleTechnician}

	return &domain.SensorHistory{
		SensorID: sensorID,
		Type:     "pressure",
		Subtype:  "piezo",
		Movements: []domain.Movement{
			{ID: domain.MovementID(uuid.New()), SensorID: sensorID, Chantier: "Lyon", ReturnedAt: at},
		},
		Responses: domain.HistoryResponses{
			Before: []domain.ResponseDetail{{Label: "Clean", IsChecked: true, IsBefore: true, User: tech, CheckedAt: at}},
			After:  []domain.ResponseDetail{},
		},
	}
}

func TestDomainSensorToV1Specs(t *testing.T) {
	s := sampleSensor(domain.UserID{})
	out := v1handler.DomainSensorToV1Specs(&s)
	require.Equal(t, uuid.UUID(s.ID), out.ID)
	require.Equal(t, v1specs.SensorStatusAvailable, out.Status)
	require.False(t, out.Chantier.IsSet())
	require.False(t, out.CreatedBy.IsSet())

	s.Chantier = "Lyon"
	s.CreatedBy = domain.UserID(uuid.New())
	out = v1handler.DomainSensorToV1Specs(&s)
	require.Equal(t, v1specs.NewOptString("Lyon"), out.Chantier)
	require.Equal(t, v1specs.NewOptUUID(uuid.UUID(s.CreatedBy)), out.CreatedBy)
}

func TestDomainMovementToV1Specs_OptionalFields(t *testing.T) {
	out := v1handler.DomainMovementToV1Specs(&domain.Movement{Chantier: "Lyon"})
	require.False(t, out.DepartedAt.IsSet())
	require.False(t, out.ReturnedAt.IsSet())
	require.False(t, out.Comment.IsSet())

	at := time.Now()
	out = v1handler.DomainMovementToV1Specs(&domain.Movement{Chantier: "Lyon", DepartedAt: at, Comment: "ok"})
	require.Equal(t, v1specs.NewOptDateTime(at), out.DepartedAt)
	require.Equal(t, v1specs.NewOptString("ok"), out.Comment)
}

func TestHandler_CreateSensor(t *testing.T) {
	m, h, ctx, userID := newMaintenanceHandler(t)

	s := sampleSensor(userID)
	m.EXPECT().RegisterSensor(ctx, userID, domain.NewSensor{
		Reference: "S-001",
		Type:      "pressure",
		Subtype:   "piezo",
		Status:    domain.SensorStatusRented,
		Chantier:  "Lyon",
	}).Return(&s, nil)

	res, err := h.CreateSensor(ctx, &v1specs.CreateSensorRequest{
		Reference: "S-001",
		Type:      "pressure",
		Subtype:   "piezo",
		Status:    v1specs.NewOptSensorStatus(v1specs.SensorStatusRented),
		Chantier:  v1specs.NewOptString("Lyon"),
	})
	require.NoError(t, err)
	require.Equal(t, uuid.UUID(s.ID), res.ID)
	require.Equal(t, v1specs.NewOptUUID(uuid.UUID(userID)), res.CreatedBy)
}

func TestHandler_CreateSensor_Error(t *testing.T) {
	m, h, ctx, userID := newMaintenanceHandler(t)

	m.EXPECT().RegisterSensor(ctx, userID, gomock.Any()).Return(nil, serrors.KindOnly(serrors.ErrConflict))

	_, err := h.CreateSensor(ctx, &v1specs.CreateSensorRequest{Reference: "S-001", Type: "t", Subtype: "s"})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestHandler_ListSensors(t *testing.T) {
	m, h, ctx, userID := newMaintenanceHandler(t)

	m.EXPECT().Sensors(ctx).Return([]domain.Sensor{sampleSensor(userID), sampleSensor(userID)}, nil)

	res, err := h.ListSensors(ctx)
	require.NoError(t, err)
	require.Len(t, res, 2)

	m.EXPECT().Sensors(ctx).Return(nil, nil)
	res, err = h.ListSensors(ctx)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, res)
}

func TestHandler_ReturnSensor(t *testing.T) {
	m, h, ctx, _ := newMaintenanceHandler(t)

	sensorID := uuid.New()
	returnedAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	checklistID := domain.ChecklistID(uuid.New())
	before := domain.ItemRef{ID: domain.ChecklistItemID(uuid.New()), Label: "Clean"}
	m.EXPECT().ProcessReturn(ctx, domain.SensorReturn{
		SensorID:   domain.SensorID(sensorID),
		Chantier:   "Lyon",
		ReturnedAt: returnedAt,
	}).Return(&domain.ReturnChecklist{
		ChecklistID:       checklistID,
		BeforeMaintenance: []domain.ItemRef{before},
		AfterMaintenance:  []domain.ItemRef{},
	}, nil)

	res, err := h.ReturnSensor(ctx, &v1specs.SensorReturnRequest{
		SensorID:   sensorID,
		Chantier:   "Lyon",
		ReturnedAt: v1specs.NewOptDateTime(returnedAt),
	})
	require.NoError(t, err)
	require.Equal(t, uuid.UUID(checklistID), res.ChecklistID)
	require.Equal(t, []v1specs.ItemRef{{ID: uuid.UUID(before.ID), Label: "Clean"}}, res.BeforeMaintenance)
	require.NotNil(t, res.AfterMaintenance)
	require.Empty(t, res.AfterMaintenance)
}

func TestHandler_GetSensorHistory(t *testing.T) {
	m, h, ctx, _ := newMaintenanceHandler(t)

	sensorID := domain.SensorID(uuid.New())
	hist := sampleHistory(sensorID)
	m.EXPECT().History(ctx, sensorID, domain.HistoryFilter{
		Chantier: "Lyon",
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Return(hist, nil)

	res, err := h.GetSensorHistory(ctx, v1specs.GetSensorHistoryParams{
		SensorID:  uuid.UUID(sensorID),
		Chantier:  v1specs.NewOptString("Lyon"),
		StartDate: v1specs.NewOptString("2024-01-01"),
	})
	require.NoError(t, err)
	require.Len(t, res.Movements, 1)
	require.Equal(t, "Lyon", res.Movements[0].Chantier)
	require.Len(t, res.Responses.Before, 1)
	require.Equal(t, "Tech", res.Responses.Before[0].User.Name)
	require.NotNil(t, res.Responses.After)
}

func TestHandler_GetSensorHistory_InvalidDate(t *testing.T) {
	_, h, ctx, _ := newMaintenanceHandler(t)

	_, err := h.GetSensorHistory(ctx, v1specs.GetSensorHistoryParams{
		SensorID:  uuid.New(),
		StartDate: v1specs.NewOptString("yesterday"),
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestHandler_ExportSensorHistory(t *testing.T) {
	tests := []struct {
		format      v1specs.OptExportFormat
		contentType string
		ext         string
		magic       []byte
	}{
		{v1specs.OptExportFormat{}, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx",
			[]byte("PK")},
		{v1specs.NewOptExportFormat(v1specs.ExportFormatPdf), "application/pdf", "pdf", []byte("%PDF")},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			m, h, ctx, _ := newMaintenanceHandler(t)

			sensorID := domain.SensorID(uuid.New())
			m.EXPECT().History(ctx, sensorID, domain.HistoryFilter{}).Return(sampleHistory(sensorID), nil)

			res, err := h.ExportSensorHistory(ctx, v1specs.ExportSensorHistoryParams{
				SensorID: uuid.UUID(sensorID),
				Format:   tt.format,
			})
			require.NoError(t, err)
			require.Equal(t, tt.contentType, res.ContentType)
			require.Equal(t, "attachment; filename=history_"+sensorID.String()+"."+tt.ext, res.ContentDisposition)

			data, err := io.ReadAll(res.Data)
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(data, tt.magic))
		})
	}
}

func TestHandler_ExportSensorHistory_NotFound(t *testing.T) {
	m, h, ctx, _ := newMaintenanceHandler(t)

	sensorID := domain.SensorID(uuid.New())
	m.EXPECT().History(ctx, sensorID, domain.HistoryFilter{}).Return(nil, serrors.KindOnly(serrors.ErrNotFound))

	_, err := h.ExportSensorHistory(ctx, v1specs.ExportSensorHistoryParams{SensorID: uuid.UUID(sensorID)})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
