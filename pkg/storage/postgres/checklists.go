package postgres

import (
	"context"
	"gmao/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	checklistsTable     = "checklists"
	checklistItemsTable = "checklist_items"
)

func (p *PgSQL) CreateChecklist(ctx context.Context, checklist domain.Checklist) (*domain.Checklist, error) {
	row := PgChecklist{
		Type:      checklist.Type,
		Subtype:   checklist.Subtype,
		CreatedAt: nowIfZero(checklist.CreatedAt),
	}

	if _, err := p.Builder.Insert(checklistsTable).
		Rows(row).
		Returning(&PgChecklist{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapError(err, "could not store checklist into pg")
	}

	return row.ToDomain(), nil
}

// CreateChecklistItems stores items in the given order; that order is kept on
// every later read.
func (p *PgSQL) CreateChecklistItems(ctx context.Context, items ...domain.ChecklistItem) ([]domain.ChecklistItem, error) {
	if len(items) == 0 {
		return []domain.ChecklistItem{}, nil
	}

	pgItems := make([]PgChecklistItem, 0, len(items))
	for i, item := range items {
		pgItems = append(pgItems, PgChecklistItem{
			ChecklistID: uuid.UUID(item.ChecklistID),
			Label:       item.Label,
			IsBefore:    item.IsBefore,
			Position:    i,
		})
	}

	var rows []PgChecklistItem
	if err := p.Builder.Insert(checklistItemsTable).
		Rows(pgItems).
		Returning(&PgChecklistItem{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not store checklist items into pg")
	}

	return pgItemsToDomain(rows), nil
}

func (p *PgSQL) ChecklistByType(ctx context.Context, sensorType, subtype string) (*domain.Checklist, error) {
	var row PgChecklist
	found, err := p.Builder.From(checklistsTable).
		Where(
			goqu.I("type").Eq(sensorType),
			goqu.I("subtype").Eq(subtype),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapError(err, "could not fetch checklist by type")
	}
	if !found {
		return nil, nil
	}

	var items []PgChecklistItem
	if err := p.Builder.From(checklistItemsTable).
		Where(goqu.I("checklist_id").Eq(row.ID)).
		Order(goqu.I("position").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &items); err != nil {
		return nil, wrapError(err, "could not fetch checklist items")
	}

	checklist := row.ToDomain()
	checklist.Items = pgItemsToDomain(items)

	return checklist, nil
}

func pgItemsToDomain(rows []PgChecklistItem) []domain.ChecklistItem {
	items := make([]domain.ChecklistItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToDomain())
	}

	return items
}
