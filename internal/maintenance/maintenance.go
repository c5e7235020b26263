package maintenance

import (
	"context"
	"errors"
	"fmt"
	"gmao/pkg/domain"
	"gmao/pkg/logger"
	"gmao/pkg/metrics"
	"gmao/pkg/serrors"
	"gmao/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configure the maintenance service.
type Options struct {
	// Now returns the current time. Defaults to time.Now in UTC.
	Now func() time.Time
}

type maintenance struct {
	options Options
	storage storage.Storage
}

// RegisterSensor validates and stores a new sensor created by userID.
func (m maintenance) RegisterSensor(ctx context.Context,
	userID domain.UserID,
	sensor domain.NewSensor) (*domain.Sensor, error) {
	if strings.TrimSpace(sensor.Reference) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "reference is required")
	}
	if strings.TrimSpace(sensor.Type) == "" || strings.TrimSpace(sensor.Subtype) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "type and subtype are required")
	}

	status := sensor.Status
	if status == "" {
		status = domain.SensorStatusAvailable
	}
	if !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown sensor status %q", status)
	}

	created, err := m.storage.CreateSensor(ctx, domain.Sensor{
		Reference: sensor.Reference,
		Type:      sensor.Type,
		Subtype:   sensor.Subtype,
		Status:    status,
		Chantier:  sensor.Chantier,
		CreatedBy: userID,
		CreatedAt: m.options.Now(),
	})
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return nil, serrors.Wrap(serrors.ErrConflict, err, "sensor reference already exists")
	case errors.Is(err, storage.ErrConstraint):
		return nil, serrors.Wrap(serrors.ErrConstraintViolation, err, "sensor creator does not exist")
	case err != nil:
		return nil, fmt.Errorf("could not create sensor: %w", err)
	}

	logger.Info(ctx, "sensor registered",
		zap.Stringer("sensor_id", created.ID),
		zap.String("reference", created.Reference))

	return created, nil
}

func (m maintenance) Sensors(ctx context.Context) ([]domain.Sensor, error) {
	sensors, err := m.storage.Sensors(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list sensors: %w", err)
	}

	return sensors, nil
}

// CreateChecklist stores a checklist and its items atomically.
func (m maintenance) CreateChecklist(ctx context.Context, checklist domain.NewChecklist) (*domain.Checklist, error) {
	if strings.TrimSpace(checklist.Type) == "" || strings.TrimSpace(checklist.Subtype) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "type and subtype are required")
	}
	for i, item := range checklist.Items {
		if strings.TrimSpace(item.Label) == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "item %d has an empty label", i)
		}
	}

	var created *domain.Checklist
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		parent, err := tx.CreateChecklist(ctx, domain.Checklist{
			Type:      checklist.Type,
			Subtype:   checklist.Subtype,
			CreatedAt: m.options.Now(),
		})
		if err != nil {
			return fmt.Errorf("could not store checklist: %w", err)
		}

		items := make([]domain.ChecklistItem, 0, len(checklist.Items))
		for _, item := range checklist.Items {
			items = append(items, domain.ChecklistItem{
				ChecklistID: parent.ID,
				Label:       item.Label,
				IsBefore:    item.IsBefore,
			})
		}

		parent.Items, err = tx.CreateChecklistItems(ctx, items...)
		if err != nil {
			return fmt.Errorf("could not store checklist items: %w", err)
		}
		created = parent

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create checklist: %w", err)
	}

	return created, nil
}

// ProcessReturn records a sensor coming back from a chantier and returns the
// checklist matching its type and subtype. The movement is stored before the
// checklist lookup and is kept even when no checklist matches.
func (m maintenance) ProcessReturn(ctx context.Context, ret domain.SensorReturn) (*domain.ReturnChecklist, error) {
	if strings.TrimSpace(ret.Chantier) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "chantier is required")
	}

	ctx = logger.WithFields(ctx, zap.Stringer("sensor_id", ret.SensorID))

	sensor, err := m.storage.SensorByID(ctx, ret.SensorID)
	if err != nil {
		metrics.SensorReturns.WithLabelValues(metrics.ReturnResultError).Inc()

		return nil, fmt.Errorf("could not get sensor: %w", err)
	}
	if sensor == nil {
		metrics.SensorReturns.WithLabelValues(metrics.ReturnResultNotFound).Inc()

		return nil, serrors.With(serrors.ErrNotFound, "sensor not found")
	}

	returnedAt := ret.ReturnedAt
	if returnedAt.IsZero() {
		returnedAt = m.options.Now()
	}

	if _, err := m.storage.CreateMovement(ctx, domain.Movement{
		SensorID:   sensor.ID,
		Chantier:   ret.Chantier,
		ReturnedAt: returnedAt,
	}); err != nil {
		metrics.SensorReturns.WithLabelValues(metrics.ReturnResultError).Inc()

		return nil, fmt.Errorf("could not store movement: %w", err)
	}

	checklist, err := m.storage.ChecklistByType(ctx, sensor.Type, sensor.Subtype)
	if err != nil {
		metrics.SensorReturns.WithLabelValues(metrics.ReturnResultError).Inc()

		return nil, fmt.Errorf("could not get checklist: %w", err)
	}
	if checklist == nil {
		metrics.SensorReturns.WithLabelValues(metrics.ReturnResultNoChecklist).Inc()
		logger.Warn(ctx, "sensor returned without a matching checklist",
			zap.String("type", sensor.Type),
			zap.String("subtype", sensor.Subtype))

		return nil, serrors.With(serrors.ErrNotFound, "no checklist for sensor type %s/%s", sensor.Type, sensor.Subtype)
	}

	before, after := domain.SplitItems(checklist.Items)
	metrics.SensorReturns.WithLabelValues(metrics.ReturnResultOK).Inc()

	return &domain.ReturnChecklist{
		ChecklistID:       checklist.ID,
		BeforeMaintenance: before,
		AfterMaintenance:  after,
	}, nil
}

// RecordResponses stores a batch of responses in one transaction.
func (m maintenance) RecordResponses(ctx context.Context,
	responses []domain.ChecklistResponse) ([]domain.ChecklistResponse, error) {
	if len(responses) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "at least one response is required")
	}

	now := m.options.Now()
	batch := make([]domain.ChecklistResponse, len(responses))
	for i, r := range responses {
		if r.CheckedAt.IsZero() {
			r.CheckedAt = now
		}
		batch[i] = r
	}

	var stored []domain.ChecklistResponse
	err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		stored, err = tx.StoreResponses(ctx, batch...)

		return err //nolint: wrapcheck
	})
	switch {
	case errors.Is(err, storage.ErrConstraint):
		return nil, serrors.Wrap(serrors.ErrConstraintViolation, err, "response references an unknown sensor, item or user")
	case err != nil:
		return nil, fmt.Errorf("could not record responses: %w", err)
	}

	metrics.ResponsesRecorded.Add(float64(len(stored)))

	return stored, nil
}

// History assembles the movements and responses of a sensor.
func (m maintenance) History(ctx context.Context,
	sensorID domain.SensorID,
	filter domain.HistoryFilter) (*domain.SensorHistory, error) {
	sensor, err := m.storage.SensorByID(ctx, sensorID)
	if err != nil {
		return nil, fmt.Errorf("could not get sensor: %w", err)
	}
	if sensor == nil {
		return nil, serrors.With(serrors.ErrNotFound, "sensor not found")
	}

	movements, err := m.storage.MovementsBySensor(ctx, sensorID, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get movements: %w", err)
	}

	details, err := m.storage.ResponsesBySensor(ctx, sensorID, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get responses: %w", err)
	}

	responses := domain.HistoryResponses{
		Before: make([]domain.ResponseDetail, 0, len(details)),
		After:  make([]domain.ResponseDetail, 0, len(details)),
	}
	for _, d := range details {
		if d.IsBefore {
			responses.Before = append(responses.Before, d)
		} else {
			responses.After = append(responses.After, d)
		}
	}

	return &domain.SensorHistory{
		SensorID:  sensor.ID,
		Type:      sensor.Type,
		Subtype:   sensor.Subtype,
		Movements: movements,
		Responses: responses,
	}, nil
}

// New creates a Maintenance service backed by storage.
func New(storage storage.Storage, options Options) Maintenance {
	if options.Now == nil {
		options.Now = func() time.Time { return time.Now().UTC() }
	}

	return &maintenance{
		options: options,
		storage: storage,
	}
}
