// Package maintenance implements the sensor lifecycle: registration, returns
// from job sites, checklist authoring, technician responses and history.
package maintenance

import (
	"context"
	"gmao/pkg/domain"
)

//go:generate mockgen -package mockmaintenance -source=interface.go -destination=mock/mockmaintenance.go *
type Maintenance interface {
	RegisterSensor(ctx context.Context, userID domain.UserID, sensor domain.NewSensor) (*domain.Sensor, error)
	Sensors(ctx context.Context) ([]domain.Sensor, error)
	CreateChecklist(ctx context.Context, checklist domain.NewChecklist) (*domain.Checklist, error)
	ProcessReturn(ctx context.Context, ret domain.SensorReturn) (*domain.ReturnChecklist, error)
	RecordResponses(ctx context.Context, responses []domain.ChecklistResponse) ([]domain.ChecklistResponse, error)
	History(ctx context.Context, sensorID domain.SensorID, filter domain.HistoryFilter) (*domain.SensorHistory, error)
}
