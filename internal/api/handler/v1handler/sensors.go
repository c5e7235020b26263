package v1handler

import (
	"bytes"
	"context"
	"fmt"
	"gmao/internal/api/specs/v1specs"
	"gmao/internal/maintenance"
	"gmao/pkg/domain"
	"gmao/pkg/report"

	"github.com/google/uuid"
)

func DomainSensorToV1Specs(in *domain.Sensor) *v1specs.Sensor {
	out := v1specs.Sensor{
		ID:        uuid.UUID(in.ID),
		Reference: in.Reference,
		Type:      in.Type,
		Subtype:   in.Subtype,
		Status:    v1specs.SensorStatus(in.Status),
		CreatedAt: in.CreatedAt,
	}
	if in.Chantier != "" {
		out.Chantier = v1specs.NewOptString(in.Chantier)
	}
	if uuid.UUID(in.CreatedBy) != uuid.Nil {
		out.CreatedBy = v1specs.NewOptUUID(uuid.UUID(in.CreatedBy))
	}

	return &out
}

func DomainMovementToV1Specs(in *domain.Movement) v1specs.Movement {
	out := v1specs.Movement{
		ID:       uuid.UUID(in.ID),
		Chantier: in.Chantier,
	}
	if !in.DepartedAt.IsZero() {
		out.DepartedAt = v1specs.NewOptDateTime(in.DepartedAt)
	}
	if !in.ReturnedAt.IsZero() {
		out.ReturnedAt = v1specs.NewOptDateTime(in.ReturnedAt)
	}
	if in.Comment != "" {
		out.Comment = v1specs.NewOptString(in.Comment)
	}

	return out
}

func domainResponseDetailsToV1Specs(in []domain.ResponseDetail) []v1specs.ResponseDetail {
	out := make([]v1specs.ResponseDetail, 0, len(in))
	for i := range in {
		out = append(out, v1specs.ResponseDetail{
			ItemID:    uuid.UUID(in[i].ItemID),
			Label:     in[i].Label,
			IsChecked: in[i].IsChecked,
			IsBefore:  in[i].IsBefore,
			User:      *DomainUserToV1Specs(&in[i].User),
			CheckedAt: in[i].CheckedAt,
		})
	}

	return out
}

func DomainHistoryToV1Specs(in *domain.SensorHistory) *v1specs.SensorHistory {
	movements := make([]v1specs.Movement, 0, len(in.Movements))
	for i := range in.Movements {
		movements = append(movements, DomainMovementToV1Specs(&in.Movements[i]))
	}

	return &v1specs.SensorHistory{
		SensorID:  uuid.UUID(in.SensorID),
		Type:      in.Type,
		Subtype:   in.Subtype,
		Movements: movements,
		Responses: v1specs.HistoryResponses{
			Before: domainResponseDetailsToV1Specs(in.Responses.Before),
			After:  domainResponseDetailsToV1Specs(in.Responses.After),
		},
	}
}

func domainItemRefsToV1Specs(in []domain.ItemRef) []v1specs.ItemRef {
	out := make([]v1specs.ItemRef, 0, len(in))
	for _, ref := range in {
		out = append(out, v1specs.ItemRef{ID: uuid.UUID(ref.ID), Label: ref.Label})
	}

	return out
}

// CreateSensor registers a sensor on behalf of the authenticated user.
func (h Handler) CreateSensor(ctx context.Context, req *v1specs.CreateSensorRequest) (*v1specs.Sensor, error) {
	s, err := h.deps.Maintenance.RegisterSensor(ctx, GetUserIDFromContext(ctx), domain.NewSensor{
		Reference: req.Reference,
		Type:      req.Type,
		Subtype:   req.Subtype,
		Status:    domain.SensorStatus(req.Status.Value),
		Chantier:  req.Chantier.Value,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainSensorToV1Specs(s), nil
}

// ListSensors returns every sensor.
func (h Handler) ListSensors(ctx context.Context) (v1specs.SensorList, error) {
	sensors, err := h.deps.Maintenance.Sensors(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := make(v1specs.SensorList, 0, len(sensors))
	for i := range sensors {
		out = append(out, *DomainSensorToV1Specs(&sensors[i]))
	}

	return out, nil
}

// ReturnSensor records a sensor back from a job site and hands out its checklist.
func (h Handler) ReturnSensor(ctx context.Context, req *v1specs.SensorReturnRequest) (*v1specs.ReturnChecklist, error) {
	ret, err := h.deps.Maintenance.ProcessReturn(ctx, domain.SensorReturn{
		SensorID:   domain.SensorID(req.SensorID),
		Chantier:   req.Chantier,
		ReturnedAt: req.ReturnedAt.Value,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.ReturnChecklist{
		ChecklistID:       uuid.UUID(ret.ChecklistID),
		BeforeMaintenance: domainItemRefsToV1Specs(ret.BeforeMaintenance),
		AfterMaintenance:  domainItemRefsToV1Specs(ret.AfterMaintenance),
	}, nil
}

func (h Handler) history(ctx context.Context,
	sensorID uuid.UUID,
	chantier, start, end v1specs.OptString) (*domain.SensorHistory, error) {
	filter, err := maintenance.ParseHistoryFilter(chantier.Value, start.Value, end.Value)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return h.deps.Maintenance.History(ctx, domain.SensorID(sensorID), filter) //nolint: wrapcheck
}

// GetSensorHistory returns the movements and responses of a sensor.
func (h Handler) GetSensorHistory(ctx context.Context,
	params v1specs.GetSensorHistoryParams) (*v1specs.SensorHistory, error) {
	hist, err := h.history(ctx, params.SensorID, params.Chantier, params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}

	return DomainHistoryToV1Specs(hist), nil
}

// ExportSensorHistory renders the history of a sensor as a document. The
// document is buffered in full before the response is written.
func (h Handler) ExportSensorHistory(ctx context.Context,
	params v1specs.ExportSensorHistoryParams) (*v1specs.HistoryExport, error) {
	format, err := report.ParseFormat(string(params.Format.Or(v1specs.ExportFormatExcel)))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	renderer, err := report.New(format)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	hist, err := h.history(ctx, params.SensorID, params.Chantier, params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, hist); err != nil {
		return nil, fmt.Errorf("could not render %s history: %w", format, err)
	}

	return &v1specs.HistoryExport{
		ContentType:        renderer.ContentType(),
		ContentDisposition: "attachment; filename=" + report.Filename(renderer, hist),
		Data:               &buf,
	}, nil
}
