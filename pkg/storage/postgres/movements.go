package postgres

import (
	"context"
	"gmao/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const movementsTable = "sensor_movements"

func (p *PgSQL) CreateMovement(ctx context.Context, movement domain.Movement) (*domain.Movement, error) {
	var row PgMovement
	row.FromDomain(movement)

	if _, err := p.Builder.Insert(movementsTable).
		Rows(row).
		Returning(&PgMovement{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapError(err, "could not store movement into pg")
	}

	m := row.ToDomain()

	return &m, nil
}

func (p *PgSQL) MovementsBySensor(ctx context.Context,
	id domain.SensorID,
	filter domain.HistoryFilter) ([]domain.Movement, error) {
	w := []goqu.Expression{goqu.I("sensor_id").Eq(uuid.UUID(id))}
	if filter.Chantier != "" {
		w = append(w, goqu.I("chantier").Eq(filter.Chantier))
	}
	if !filter.Start.IsZero() {
		w = append(w, goqu.I("returned_at").Gte(filter.Start))
	}
	if !filter.End.IsZero() {
		w = append(w, goqu.I("returned_at").Lte(filter.End))
	}

	var rows []PgMovement
	if err := p.Builder.From(movementsTable).
		Where(w...).
		Order(goqu.I("returned_at").Asc().NullsLast(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not fetch sensor movements from pg")
	}

	return pgMovementsToDomain(rows), nil
}

func (p *PgSQL) CountMovementsReturnedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	count, err := p.Builder.From(movementsTable).
		Where(
			goqu.I("returned_at").Gte(from),
			goqu.I("returned_at").Lt(to),
		).
		CountContext(ctx)
	if err != nil {
		return 0, wrapError(err, "could not count returned movements")
	}

	return count, nil
}

func (p *PgSQL) MovementsOrderedByReturn(ctx context.Context) ([]domain.Movement, error) {
	var rows []PgMovement
	if err := p.Builder.From(movementsTable).
		Order(
			goqu.I("sensor_id").Asc(),
			goqu.I("returned_at").Asc().NullsLast(),
			goqu.I("id").Asc(),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not fetch movements from pg")
	}

	return pgMovementsToDomain(rows), nil
}

type pgSensorActivity struct {
	SensorID uuid.UUID `db:"sensor_id"`
	Count    int64     `db:"movement_count"`
}

func (p *PgSQL) TopSensorsByMovements(ctx context.Context, limit uint) ([]domain.SensorActivity, error) {
	var rows []pgSensorActivity
	if err := p.Builder.From(movementsTable).
		Select(goqu.I("sensor_id"), goqu.COUNT("*").As("movement_count")).
		GroupBy(goqu.I("sensor_id")).
		Order(goqu.I("movement_count").Desc(), goqu.I("sensor_id").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not fetch top sensors from pg")
	}

	top := make([]domain.SensorActivity, 0, len(rows))
	for _, row := range rows {
		top = append(top, domain.SensorActivity{
			SensorID: domain.SensorID(row.SensorID),
			Count:    row.Count,
		})
	}

	return top, nil
}

func pgMovementsToDomain(rows []PgMovement) []domain.Movement {
	movements := make([]domain.Movement, 0, len(rows))
	for i := range rows {
		movements = append(movements, rows[i].ToDomain())
	}

	return movements
}
