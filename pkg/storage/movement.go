package storage

import (
	"context"
	"gmao/pkg/domain"
	"time"
)

type MovementStorage interface {
	// CreateMovement persists a movement. An unknown sensor yields ErrConstraint.
	CreateMovement(ctx context.Context, movement domain.Movement) (*domain.Movement, error)
	// MovementsBySensor lists the movements of a sensor matching the filter's
	// chantier and inclusive return date range. Movements without a return
	// date are excluded once a date bound is set.
	MovementsBySensor(ctx context.Context, id domain.SensorID, filter domain.HistoryFilter) ([]domain.Movement, error)
	// CountMovementsReturnedBetween counts movements returned within [from, to).
	CountMovementsReturnedBetween(ctx context.Context, from, to time.Time) (int64, error)
	// MovementsOrderedByReturn lists every movement grouped by sensor and
	// ordered by return date, unknown dates last.
	MovementsOrderedByReturn(ctx context.Context) ([]domain.Movement, error)
	// TopSensorsByMovements ranks sensors by movement count, ties broken by
	// sensor id.
	TopSensorsByMovements(ctx context.Context, limit uint) ([]domain.SensorActivity, error)
}
