package postgres

import (
	"context"
	"gmao/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const sensorsTable = "sensors"

func (p *PgSQL) CreateSensor(ctx context.Context, sensor domain.Sensor) (*domain.Sensor, error) {
	var row PgSensor
	row.FromDomain(sensor)

	if _, err := p.Builder.Insert(sensorsTable).
		Rows(row).
		Returning(&PgSensor{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapError(err, "could not store sensor into pg")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Sensors(ctx context.Context) ([]domain.Sensor, error) {
	var rows []PgSensor
	if err := p.Builder.From(sensorsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not fetch sensors from pg")
	}

	sensors := make([]domain.Sensor, 0, len(rows))
	for i := range rows {
		sensors = append(sensors, *rows[i].ToDomain())
	}

	return sensors, nil
}

func (p *PgSQL) SensorByID(ctx context.Context, id domain.SensorID) (*domain.Sensor, error) {
	var row PgSensor
	found, err := p.Builder.From(sensorsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapError(err, "could not fetch sensor by id")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
