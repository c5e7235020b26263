package v1handler

import (
	"context"
	"gmao/internal/api/specs/v1specs"

	"github.com/google/uuid"
)

// GetDashboard returns the operational rollup.
func (h Handler) GetDashboard(ctx context.Context) (*v1specs.Dashboard, error) {
	d, err := h.deps.Dashboard.Summary(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := v1specs.Dashboard{
		ReturnedThisMonth:       d.ReturnedThisMonth,
		ChecklistCompletionRate: d.ChecklistCompletionRate,
		MeanDaysBetweenReturns:  d.MeanDaysBetweenReturns,
		TopSensors:              make([]v1specs.SensorActivity, 0, len(d.TopSensors)),
		TopTechnicians:          make([]v1specs.TechnicianActivity, 0, len(d.TopTechnicians)),
	}
	for _, s := range d.TopSensors {
		out.TopSensors = append(out.TopSensors, v1specs.SensorActivity{SensorID: uuid.UUID(s.SensorID), Count: s.Count})
	}
	for _, t := range d.TopTechnicians {
		out.TopTechnicians = append(out.TopTechnicians, v1specs.TechnicianActivity{Name: t.Name, Count: t.Count})
	}

	return &out, nil
}
