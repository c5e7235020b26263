package postgres

import (
	"database/sql"
	"gmao/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// Rows are scanned into these structs and converted at the package boundary.
// Nullable columns use the database/sql null wrappers.

type PgUser struct {
	ID             uuid.UUID `db:"id"              goqu:"skipinsert"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	Role           string    `db:"role"`
	CreatedAt      time.Time `db:"created_at"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Name:         p.Name,
		Email:        p.Email,
		Role:         domain.UserRole(p.Role),
		PasswordHash: p.HashedPassword,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:             uuid.UUID(user.ID),
		Name:           user.Name,
		Email:          user.Email,
		HashedPassword: user.PasswordHash,
		Role:           string(user.Role),
		CreatedAt:      nowIfZero(user.CreatedAt),
	}
}

type PgSensor struct {
	ID        uuid.UUID      `db:"id"         goqu:"skipinsert"`
	Reference string         `db:"reference"`
	Type      string         `db:"type"`
	Subtype   string         `db:"subtype"`
	Status    string         `db:"status"`
	Chantier  sql.NullString `db:"chantier"`
	CreatedBy uuid.NullUUID  `db:"created_by"`
	CreatedAt time.Time      `db:"created_at"`
}

func (p *PgSensor) ToDomain() *domain.Sensor {
	s := &domain.Sensor{
		ID:        domain.SensorID(p.ID),
		Reference: p.Reference,
		Type:      p.Type,
		Subtype:   p.Subtype,
		Status:    domain.SensorStatus(p.Status),
		Chantier:  p.Chantier.String,
		CreatedAt: p.CreatedAt,
	}
	if p.CreatedBy.Valid {
		s.CreatedBy = domain.UserID(p.CreatedBy.UUID)
	}

	return s
}

func (p *PgSensor) FromDomain(sensor domain.Sensor) {
	createdBy := uuid.UUID(sensor.CreatedBy)
	*p = PgSensor{
		ID:        uuid.UUID(sensor.ID),
		Reference: sensor.Reference,
		Type:      sensor.Type,
		Subtype:   sensor.Subtype,
		Status:    string(sensor.Status),
		Chantier:  sql.NullString{String: sensor.Chantier, Valid: sensor.Chantier != ""},
		CreatedBy: uuid.NullUUID{UUID: createdBy, Valid: createdBy != uuid.Nil},
		CreatedAt: nowIfZero(sensor.CreatedAt),
	}
}

type PgChecklist struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Type      string    `db:"type"`
	Subtype   string    `db:"subtype"`
	CreatedAt time.Time `db:"created_at"`
}

func (p *PgChecklist) ToDomain() *domain.Checklist {
	return &domain.Checklist{
		ID:        domain.ChecklistID(p.ID),
		Type:      p.Type,
		Subtype:   p.Subtype,
		CreatedAt: p.CreatedAt,
	}
}

type PgChecklistItem struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	ChecklistID uuid.UUID `db:"checklist_id"`
	Label       string    `db:"label"`
	IsBefore    bool      `db:"is_before"`
	Position    int       `db:"position"`
}

func (p *PgChecklistItem) ToDomain() domain.ChecklistItem {
	return domain.ChecklistItem{
		ID:          domain.ChecklistItemID(p.ID),
		ChecklistID: domain.ChecklistID(p.ChecklistID),
		Label:       p.Label,
		IsBefore:    p.IsBefore,
	}
}

type PgMovement struct {
	ID         uuid.UUID      `db:"id"          goqu:"skipinsert"`
	SensorID   uuid.UUID      `db:"sensor_id"`
	Chantier   string         `db:"chantier"`
	DepartedAt sql.NullTime   `db:"departed_at"`
	ReturnedAt sql.NullTime   `db:"returned_at"`
	Comment    sql.NullString `db:"comment"`
}

func (p *PgMovement) ToDomain() domain.Movement {
	return domain.Movement{
		ID:         domain.MovementID(p.ID),
		SensorID:   domain.SensorID(p.SensorID),
		Chantier:   p.Chantier,
		DepartedAt: p.DepartedAt.Time,
		ReturnedAt: p.ReturnedAt.Time,
		Comment:    p.Comment.String,
	}
}

func (p *PgMovement) FromDomain(movement domain.Movement) {
	*p = PgMovement{
		ID:         uuid.UUID(movement.ID),
		SensorID:   uuid.UUID(movement.SensorID),
		Chantier:   movement.Chantier,
		DepartedAt: sql.NullTime{Time: movement.DepartedAt, Valid: !movement.DepartedAt.IsZero()},
		ReturnedAt: sql.NullTime{Time: movement.ReturnedAt, Valid: !movement.ReturnedAt.IsZero()},
		Comment:    sql.NullString{String: movement.Comment, Valid: movement.Comment != ""},
	}
}

type PgResponse struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	SensorID  uuid.UUID `db:"sensor_id"`
	UserID    uuid.UUID `db:"user_id"`
	ItemID    uuid.UUID `db:"item_id"`
	IsChecked bool      `db:"is_checked"`
	IsBefore  bool      `db:"is_before"`
	CheckedAt time.Time `db:"checked_at"`
}

func (p *PgResponse) ToDomain() domain.ChecklistResponse {
	return domain.ChecklistResponse{
		ID:        domain.ResponseID(p.ID),
		SensorID:  domain.SensorID(p.SensorID),
		ItemID:    domain.ChecklistItemID(p.ItemID),
		UserID:    domain.UserID(p.UserID),
		IsChecked: p.IsChecked,
		IsBefore:  p.IsBefore,
		CheckedAt: p.CheckedAt,
	}
}

func (p *PgResponse) FromDomain(response domain.ChecklistResponse) {
	*p = PgResponse{
		ID:        uuid.UUID(response.ID),
		SensorID:  uuid.UUID(response.SensorID),
		UserID:    uuid.UUID(response.UserID),
		ItemID:    uuid.UUID(response.ItemID),
		IsChecked: response.IsChecked,
		IsBefore:  response.IsBefore,
		CheckedAt: nowIfZero(response.CheckedAt),
	}
}

// PgResponseDetail is a response joined with its item and respondent.
type PgResponseDetail struct {
	ItemID        uuid.UUID `db:"item_id"`
	Label         string    `db:"label"`
	IsChecked     bool      `db:"is_checked"`
	IsBefore      bool      `db:"is_before"`
	CheckedAt     time.Time `db:"checked_at"`
	UserID        uuid.UUID `db:"user_id"`
	UserName      string    `db:"user_name"`
	UserEmail     string    `db:"user_email"`
	UserRole      string    `db:"user_role"`
	UserCreatedAt time.Time `db:"user_created_at"`
}

func (p *PgResponseDetail) ToDomain() domain.ResponseDetail {
	return domain.ResponseDetail{
		ItemID:    domain.ChecklistItemID(p.ItemID),
		Label:     p.Label,
		IsChecked: p.IsChecked,
		IsBefore:  p.IsBefore,
		CheckedAt: p.CheckedAt,
		User: domain.User{
			ID:        domain.UserID(p.UserID),
			Name:      p.UserName,
			Email:     p.UserEmail,
			Role:      domain.UserRole(p.UserRole),
			CreatedAt: p.UserCreatedAt,
		},
	}
}

func nowIfZero(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}

	return t
}
