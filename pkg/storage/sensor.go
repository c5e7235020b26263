package storage

import (
	"context"
	"gmao/pkg/domain"
)

type SensorStorage interface {
	// CreateSensor persists a sensor. A taken reference yields ErrDuplicate and
	// an unknown creator yields ErrConstraint.
	CreateSensor(ctx context.Context, sensor domain.Sensor) (*domain.Sensor, error)
	// Sensors lists every sensor ordered by creation time.
	Sensors(ctx context.Context) ([]domain.Sensor, error)
	// SensorByID returns nil when the sensor does not exist.
	SensorByID(ctx context.Context, id domain.SensorID) (*domain.Sensor, error)
}
