package postgres

import (
	"context"
	"gmao/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const responsesTable = "checklist_responses"

func (p *PgSQL) StoreResponses(ctx context.Context,
	responses ...domain.ChecklistResponse) ([]domain.ChecklistResponse, error) {
	if len(responses) == 0 {
		return []domain.ChecklistResponse{}, nil
	}

	pgResponses := make([]PgResponse, len(responses))
	for i, r := range responses {
		pgResponses[i].FromDomain(r)
	}

	var rows []PgResponse
	if err := p.Builder.Insert(responsesTable).
		Rows(pgResponses).
		Returning(&PgResponse{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not store responses into pg")
	}

	stored := make([]domain.ChecklistResponse, 0, len(rows))
	for i := range rows {
		stored = append(stored, rows[i].ToDomain())
	}

	return stored, nil
}

func (p *PgSQL) ResponsesBySensor(ctx context.Context,
	id domain.SensorID,
	filter domain.HistoryFilter) ([]domain.ResponseDetail, error) {
	w := []goqu.Expression{goqu.I("r.sensor_id").Eq(uuid.UUID(id))}
	if !filter.Start.IsZero() {
		w = append(w, goqu.I("r.checked_at").Gte(filter.Start))
	}
	if !filter.End.IsZero() {
		w = append(w, goqu.I("r.checked_at").Lte(filter.End))
	}

	var rows []PgResponseDetail
	if err := p.Builder.From(goqu.T(responsesTable).As("r")).
		Join(goqu.T(checklistItemsTable).As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("r.item_id")))).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id")))).
		Select(
			goqu.I("r.item_id"),
			goqu.I("i.label"),
			goqu.I("r.is_checked"),
			goqu.I("r.is_before"),
			goqu.I("r.checked_at"),
			goqu.I("u.id").As("user_id"),
			goqu.I("u.name").As("user_name"),
			goqu.I("u.email").As("user_email"),
			goqu.I("u.role").As("user_role"),
			goqu.I("u.created_at").As("user_created_at"),
		).
		Where(w...).
		Order(goqu.I("r.checked_at").Asc(), goqu.I("r.id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not fetch sensor responses from pg")
	}

	details := make([]domain.ResponseDetail, 0, len(rows))
	for i := range rows {
		details = append(details, rows[i].ToDomain())
	}

	return details, nil
}

type pgResponseCounts struct {
	Total   int64 `db:"total"`
	Checked int64 `db:"checked"`
}

func (p *PgSQL) ResponseCounts(ctx context.Context) (domain.ResponseCounts, error) {
	var row pgResponseCounts
	if _, err := p.Builder.From(responsesTable).
		Select(
			goqu.COUNT("*").As("total"),
			goqu.L("COUNT(*) FILTER (WHERE is_checked)").As("checked"),
		).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return domain.ResponseCounts{}, wrapError(err, "could not count responses")
	}

	return domain.ResponseCounts{Total: row.Total, Checked: row.Checked}, nil
}

type pgTechnicianActivity struct {
	UserID uuid.UUID `db:"user_id"`
	Name   string    `db:"name"`
	Count  int64     `db:"response_count"`
}

func (p *PgSQL) TopTechniciansByResponses(ctx context.Context, limit uint) ([]domain.TechnicianActivity, error) {
	var rows []pgTechnicianActivity
	if err := p.Builder.From(goqu.T(responsesTable).As("r")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id")))).
		Select(
			goqu.I("u.id").As("user_id"),
			goqu.I("u.name").As("name"),
			goqu.COUNT("*").As("response_count"),
		).
		GroupBy(goqu.I("u.id"), goqu.I("u.name")).
		Order(goqu.I("response_count").Desc(), goqu.I("u.id").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not fetch top technicians from pg")
	}

	top := make([]domain.TechnicianActivity, 0, len(rows))
	for _, row := range rows {
		top = append(top, domain.TechnicianActivity{
			UserID: domain.UserID(row.UserID),
			Name:   row.Name,
			Count:  row.Count,
		})
	}

	return top, nil
}
