package maintenance_test

import (
	"context"
	"errors"
	"fmt"
	"gmao/internal/maintenance"
	"gmao/pkg/domain"
	"gmao/pkg/metrics"
	"gmao/pkg/serrors"
	"gmao/pkg/storage"
	mockstorage "gmao/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC) //nolint: gochecknoglobals

func newTestMaintenance(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, maintenance.Maintenance) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	m := maintenance.New(st, maintenance.Options{Now: func() time.Time { return now }})

	return ctrl, st, m
}

// expectWithTx wires Storage.WithTx to run the callback against a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func requireKind(t *testing.T, err error, kind serrors.Kind) {
	t.Helper()

	require.Error(t, err)
	got, _ := serrors.KindOf(err)
	require.Equal(t, kind, got, "unexpected kind for %v", err)
}

func TestMaintenance_RegisterSensor(t *testing.T) {
	userID := domain.UserID(uuid.New())

	t.Run("defaults status and stamps creator", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)

		st.EXPECT().CreateSensor(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s domain.Sensor) (*domain.Sensor, error) {
				require.Equal(t, domain.SensorStatusAvailable, s.Status)
				require.Equal(t, userID, s.CreatedBy)
				require.Equal(t, now, s.CreatedAt)
				s.ID = domain.SensorID(uuid.New())

				return &s, nil
			})

		s, err := m.RegisterSensor(context.Background(), userID, domain.NewSensor{
			Reference: "S-100",
			Type:      "vibration",
			Subtype:   "v1",
		})
		require.NoError(t, err)
		require.Equal(t, "S-100", s.Reference)
		require.Equal(t, domain.SensorStatusAvailable, s.Status)
	})

	t.Run("explicit status and chantier", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)

		st.EXPECT().CreateSensor(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s domain.Sensor) (*domain.Sensor, error) {
				return &s, nil
			})

		s, err := m.RegisterSensor(context.Background(), userID, domain.NewSensor{
			Reference: "S-101",
			Type:      "vibration",
			Subtype:   "v1",
			Status:    domain.SensorStatusRented,
			Chantier:  "Site-A",
		})
		require.NoError(t, err)
		require.Equal(t, domain.SensorStatusRented, s.Status)
		require.Equal(t, "Site-A", s.Chantier)
	})

	invalid := []struct {
		name   string
		sensor domain.NewSensor
	}{
		{name: "blank reference", sensor: domain.NewSensor{Reference: " ", Type: "t", Subtype: "s"}},
		{name: "blank type", sensor: domain.NewSensor{Reference: "r", Subtype: "s"}},
		{name: "blank subtype", sensor: domain.NewSensor{Reference: "r", Type: "t"}},
		{name: "unknown status", sensor: domain.NewSensor{Reference: "r", Type: "t", Subtype: "s", Status: "lost"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, _, m := newTestMaintenance(t)

			_, err := m.RegisterSensor(context.Background(), userID, tt.sensor)
			requireKind(t, err, serrors.ErrBadRequest)
		})
	}

	storageErrors := []struct {
		name string
		err  error
		kind serrors.Kind
	}{
		{name: "duplicate reference", err: fmt.Errorf("insert: %w", storage.ErrDuplicate), kind: serrors.ErrConflict},
		{name: "unknown creator", err: fmt.Errorf("insert: %w", storage.ErrConstraint), kind: serrors.ErrConstraintViolation},
		{name: "storage failure", err: errors.New("connection reset"), kind: serrors.ErrInternal},
	}
	for _, tt := range storageErrors {
		t.Run(tt.name, func(t *testing.T) {
			_, st, m := newTestMaintenance(t)
			st.EXPECT().CreateSensor(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			_, err := m.RegisterSensor(context.Background(), userID, domain.NewSensor{
				Reference: "S-100",
				Type:      "vibration",
				Subtype:   "v1",
			})
			requireKind(t, err, tt.kind)
		})
	}
}

func TestMaintenance_Sensors(t *testing.T) {
	_, st, m := newTestMaintenance(t)

	sensors := []domain.Sensor{{Reference: "a"}, {Reference: "b"}}
	st.EXPECT().Sensors(gomock.Any()).Return(sensors, nil)

	got, err := m.Sensors(context.Background())
	require.NoError(t, err)
	require.Equal(t, sensors, got)
}

func TestMaintenance_CreateChecklist(t *testing.T) {
	input := domain.NewChecklist{
		Type:    "vibration",
		Subtype: "v1",
		Items: []domain.NewChecklistItem{
			{Label: "Check battery", IsBefore: true},
			{Label: "Verify calibration", IsBefore: false},
		},
	}

	t.Run("stores parent then items in one transaction", func(t *testing.T) {
		ctrl, st, m := newTestMaintenance(t)
		checklistID := domain.ChecklistID(uuid.New())

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			gomock.InOrder(
				tx.EXPECT().CreateChecklist(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c domain.Checklist) (*domain.Checklist, error) {
						require.Equal(t, "vibration", c.Type)
						require.Equal(t, now, c.CreatedAt)
						c.ID = checklistID

						return &c, nil
					}),
				tx.EXPECT().CreateChecklistItems(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, items ...domain.ChecklistItem) ([]domain.ChecklistItem, error) {
						require.Len(t, items, 2)
						for i := range items {
							require.Equal(t, checklistID, items[i].ChecklistID)
							items[i].ID = domain.ChecklistItemID(uuid.New())
						}

						return items, nil
					}),
			)
		})

		c, err := m.CreateChecklist(context.Background(), input)
		require.NoError(t, err)
		require.Equal(t, checklistID, c.ID)
		require.Len(t, c.Items, 2)
		require.True(t, c.Items[0].IsBefore)
		require.False(t, c.Items[1].IsBefore)
	})

	t.Run("item failure is returned", func(t *testing.T) {
		ctrl, st, m := newTestMaintenance(t)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CreateChecklist(gomock.Any(), gomock.Any()).Return(&domain.Checklist{}, nil)
			tx.EXPECT().CreateChecklistItems(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		})

		_, err := m.CreateChecklist(context.Background(), input)
		requireKind(t, err, serrors.ErrInternal)
	})

	t.Run("blank label", func(t *testing.T) {
		_, _, m := newTestMaintenance(t)

		_, err := m.CreateChecklist(context.Background(), domain.NewChecklist{
			Type:    "t",
			Subtype: "s",
			Items:   []domain.NewChecklistItem{{Label: ""}},
		})
		requireKind(t, err, serrors.ErrBadRequest)
	})

	t.Run("blank type", func(t *testing.T) {
		_, _, m := newTestMaintenance(t)

		_, err := m.CreateChecklist(context.Background(), domain.NewChecklist{Subtype: "s"})
		requireKind(t, err, serrors.ErrBadRequest)
	})
}

func TestMaintenance_ProcessReturn(t *testing.T) {
	sensor := &domain.Sensor{
		ID:        domain.SensorID(uuid.New()),
		Reference: "S-100",
		Type:      "vibration",
		Subtype:   "v1",
	}
	battery := domain.ChecklistItem{ID: domain.ChecklistItemID(uuid.New()), Label: "Check battery", IsBefore: true}
	calibration := domain.ChecklistItem{ID: domain.ChecklistItemID(uuid.New()), Label: "Verify calibration"}
	checklist := &domain.Checklist{
		ID:    domain.ChecklistID(uuid.New()),
		Items: []domain.ChecklistItem{battery, calibration},
	}

	t.Run("splits matched checklist", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)
		ok := testutil.ToFloat64(metrics.SensorReturns.WithLabelValues(metrics.ReturnResultOK))

		gomock.InOrder(
			st.EXPECT().SensorByID(gomock.Any(), sensor.ID).Return(sensor, nil),
			st.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, mv domain.Movement) (*domain.Movement, error) {
					require.Equal(t, sensor.ID, mv.SensorID)
					require.Equal(t, "Site-A", mv.Chantier)
					require.Equal(t, now, mv.ReturnedAt)

					return &mv, nil
				}),
			st.EXPECT().ChecklistByType(gomock.Any(), "vibration", "v1").Return(checklist, nil),
		)

		res, err := m.ProcessReturn(context.Background(), domain.SensorReturn{SensorID: sensor.ID, Chantier: "Site-A"})
		require.NoError(t, err)
		require.Equal(t, checklist.ID, res.ChecklistID)
		require.Equal(t, []domain.ItemRef{{ID: battery.ID, Label: "Check battery"}}, res.BeforeMaintenance)
		require.Equal(t, []domain.ItemRef{{ID: calibration.ID, Label: "Verify calibration"}}, res.AfterMaintenance)
		require.InDelta(t, ok+1, testutil.ToFloat64(metrics.SensorReturns.WithLabelValues(metrics.ReturnResultOK)), 0)
	})

	t.Run("keeps supplied return date", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)
		returnedAt := now.Add(-48 * time.Hour)

		st.EXPECT().SensorByID(gomock.Any(), sensor.ID).Return(sensor, nil)
		st.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mv domain.Movement) (*domain.Movement, error) {
				require.Equal(t, returnedAt, mv.ReturnedAt)

				return &mv, nil
			})
		st.EXPECT().ChecklistByType(gomock.Any(), "vibration", "v1").Return(checklist, nil)

		_, err := m.ProcessReturn(context.Background(), domain.SensorReturn{
			SensorID:   sensor.ID,
			Chantier:   "Site-A",
			ReturnedAt: returnedAt,
		})
		require.NoError(t, err)
	})

	t.Run("unknown sensor records nothing", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)

		st.EXPECT().SensorByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := m.ProcessReturn(context.Background(), domain.SensorReturn{
			SensorID: domain.SensorID(uuid.New()),
			Chantier: "Site-A",
		})
		requireKind(t, err, serrors.ErrNotFound)
	})

	t.Run("missing checklist keeps the movement", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)
		missing := testutil.ToFloat64(metrics.SensorReturns.WithLabelValues(metrics.ReturnResultNoChecklist))

		st.EXPECT().SensorByID(gomock.Any(), sensor.ID).Return(sensor, nil)
		st.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).Return(&domain.Movement{}, nil).Times(1)
		st.EXPECT().ChecklistByType(gomock.Any(), "vibration", "v1").Return(nil, nil)

		_, err := m.ProcessReturn(context.Background(), domain.SensorReturn{SensorID: sensor.ID, Chantier: "Site-B"})
		requireKind(t, err, serrors.ErrNotFound)
		require.InDelta(t, missing+1,
			testutil.ToFloat64(metrics.SensorReturns.WithLabelValues(metrics.ReturnResultNoChecklist)), 0)
	})

	t.Run("blank chantier", func(t *testing.T) {
		_, _, m := newTestMaintenance(t)

		_, err := m.ProcessReturn(context.Background(), domain.SensorReturn{SensorID: sensor.ID})
		requireKind(t, err, serrors.ErrBadRequest)
	})

	t.Run("movement failure", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)

		st.EXPECT().SensorByID(gomock.Any(), sensor.ID).Return(sensor, nil)
		st.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := m.ProcessReturn(context.Background(), domain.SensorReturn{SensorID: sensor.ID, Chantier: "Site-A"})
		requireKind(t, err, serrors.ErrInternal)
	})
}

func TestMaintenance_RecordResponses(t *testing.T) {
	sensorID := domain.SensorID(uuid.New())
	userID := domain.UserID(uuid.New())
	batch := []domain.ChecklistResponse{
		{SensorID: sensorID, ItemID: domain.ChecklistItemID(uuid.New()), UserID: userID, IsChecked: true, IsBefore: true},
		{SensorID: sensorID, ItemID: domain.ChecklistItemID(uuid.New()), UserID: userID, IsChecked: false, IsBefore: false},
	}

	t.Run("stores whole batch", func(t *testing.T) {
		ctrl, st, m := newTestMaintenance(t)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreResponses(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, rs ...domain.ChecklistResponse) ([]domain.ChecklistResponse, error) {
					require.Len(t, rs, 2)
					for i := range rs {
						require.Equal(t, now, rs[i].CheckedAt)
						rs[i].ID = domain.ResponseID(uuid.New())
					}

					return rs, nil
				})
		})

		stored, err := m.RecordResponses(context.Background(), batch)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		require.Equal(t, batch[0].ItemID, stored[0].ItemID)
		require.True(t, stored[0].IsChecked)
		require.False(t, stored[1].IsBefore)
	})

	t.Run("empty batch", func(t *testing.T) {
		_, _, m := newTestMaintenance(t)

		_, err := m.RecordResponses(context.Background(), nil)
		requireKind(t, err, serrors.ErrBadRequest)
	})

	t.Run("dangling reference", func(t *testing.T) {
		ctrl, st, m := newTestMaintenance(t)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreResponses(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("insert: %w", storage.ErrConstraint))
		})

		_, err := m.RecordResponses(context.Background(), batch)
		requireKind(t, err, serrors.ErrConstraintViolation)
	})
}

func TestMaintenance_History(t *testing.T) {
	sensor := &domain.Sensor{ID: domain.SensorID(uuid.New()), Type: "vibration", Subtype: "v1"}
	filter := domain.HistoryFilter{Chantier: "Site-A"}

	t.Run("partitions responses", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)

		movements := []domain.Movement{{SensorID: sensor.ID, Chantier: "Site-A", ReturnedAt: now}}
		details := []domain.ResponseDetail{
			{Label: "Check battery", IsBefore: true, IsChecked: true},
			{Label: "Verify calibration", IsBefore: false},
			{Label: "Check casing", IsBefore: true},
		}
		st.EXPECT().SensorByID(gomock.Any(), sensor.ID).Return(sensor, nil)
		st.EXPECT().MovementsBySensor(gomock.Any(), sensor.ID, filter).Return(movements, nil)
		st.EXPECT().ResponsesBySensor(gomock.Any(), sensor.ID, filter).Return(details, nil)

		h, err := m.History(context.Background(), sensor.ID, filter)
		require.NoError(t, err)
		require.Equal(t, sensor.ID, h.SensorID)
		require.Equal(t, "vibration", h.Type)
		require.Equal(t, movements, h.Movements)
		require.Len(t, h.Responses.Before, 2)
		require.Equal(t, "Check casing", h.Responses.Before[1].Label)
		require.Len(t, h.Responses.After, 1)
	})

	t.Run("empty history has empty groups", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)

		st.EXPECT().SensorByID(gomock.Any(), sensor.ID).Return(sensor, nil)
		st.EXPECT().MovementsBySensor(gomock.Any(), sensor.ID, gomock.Any()).Return([]domain.Movement{}, nil)
		st.EXPECT().ResponsesBySensor(gomock.Any(), sensor.ID, gomock.Any()).Return(nil, nil)

		h, err := m.History(context.Background(), sensor.ID, domain.HistoryFilter{})
		require.NoError(t, err)
		require.NotNil(t, h.Responses.Before)
		require.NotNil(t, h.Responses.After)
		require.Empty(t, h.Responses.Before)
	})

	t.Run("unknown sensor", func(t *testing.T) {
		_, st, m := newTestMaintenance(t)

		st.EXPECT().SensorByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := m.History(context.Background(), domain.SensorID(uuid.New()), filter)
		requireKind(t, err, serrors.ErrNotFound)
	})
}
