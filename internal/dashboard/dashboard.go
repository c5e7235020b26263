// Package dashboard aggregates operational metrics over the whole store.
package dashboard

import (
	"context"
	"fmt"
	"gmao/pkg/domain"
	"gmao/pkg/storage"
	"math"
	"time"
)

//go:generate mockgen -package mockdashboard -source=dashboard.go -destination=mock/mockdashboard.go Dashboard
type Dashboard interface {
	Summary(ctx context.Context) (*domain.Dashboard, error)
}

// TopLimit bounds the length of the ranking lists.
const TopLimit = 5

const hoursPerDay = 24

type Options struct {
	// Now returns the current time. The month window is computed in its
	// location. Defaults to time.Now in UTC.
	Now func() time.Time
}

type dashboard struct {
	options Options
	storage storage.Storage
}

// Summary runs independent reads and combines them without a transaction.
func (d dashboard) Summary(ctx context.Context) (*domain.Dashboard, error) {
	from, to := monthWindow(d.options.Now())
	returned, err := d.storage.CountMovementsReturnedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("could not count returns of the month: %w", err)
	}

	counts, err := d.storage.ResponseCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count responses: %w", err)
	}

	movements, err := d.storage.MovementsOrderedByReturn(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list movements: %w", err)
	}

	topSensors, err := d.storage.TopSensorsByMovements(ctx, TopLimit)
	if err != nil {
		return nil, fmt.Errorf("could not rank sensors: %w", err)
	}

	topTechnicians, err := d.storage.TopTechniciansByResponses(ctx, TopLimit)
	if err != nil {
		return nil, fmt.Errorf("could not rank technicians: %w", err)
	}

	return &domain.Dashboard{
		ReturnedThisMonth:       returned,
		ChecklistCompletionRate: CompletionRate(counts),
		MeanDaysBetweenReturns:  MeanDaysBetweenReturns(movements),
		TopSensors:              truncate(topSensors),
		TopTechnicians:          truncate(topTechnicians),
	}, nil
}

// monthWindow returns [first day of t's month, first day of next month).
func monthWindow(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())

	return from, from.AddDate(0, 1, 0)
}

// CompletionRate is the share of checked responses in percent, rounded to
// one decimal. It is 0 when there are no responses.
func CompletionRate(c domain.ResponseCounts) float64 {
	if c.Total <= 0 {
		return 0
	}

	return round1(float64(c.Checked) / float64(c.Total) * 100) //nolint: mnd
}

// MeanDaysBetweenReturns averages the whole days elapsed between consecutive
// returns of each sensor. movements must be grouped by sensor and ordered by
// return date; movements without a return date are skipped.
func MeanDaysBetweenReturns(movements []domain.Movement) float64 {
	var (
		sum, n int64
		prev   domain.Movement
	)
	for i, m := range movements {
		if i > 0 && m.SensorID == prev.SensorID && !m.ReturnedAt.IsZero() && !prev.ReturnedAt.IsZero() {
			sum += int64(math.Floor(m.ReturnedAt.Sub(prev.ReturnedAt).Hours() / hoursPerDay))
			n++
		}
		prev = m
	}

	if n == 0 {
		return 0
	}

	return round1(float64(sum) / float64(n))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10 //nolint: mnd
}

func truncate[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	if len(s) > TopLimit {
		return s[:TopLimit]
	}

	return s
}

// New creates a Dashboard backed by storage.
func New(storage storage.Storage, options Options) Dashboard {
	if options.Now == nil {
		options.Now = func() time.Time { return time.Now().UTC() }
	}

	return &dashboard{
		options: options,
		storage: storage,
	}
}
