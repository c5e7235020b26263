package postgres

import (
	"context"
	"gmao/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const usersTable = "users"

func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapError(err, "could not store user into pg")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.user(ctx, goqu.I("email").Eq(email))
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.user(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) user(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapError(err, "could not fetch user from pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
