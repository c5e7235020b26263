package storage

import (
	"context"
	"gmao/pkg/domain"
)

type ResponseStorage interface {
	// StoreResponses persists responses as given. Any dangling sensor, item or
	// user reference yields ErrConstraint.
	StoreResponses(ctx context.Context, responses ...domain.ChecklistResponse) ([]domain.ChecklistResponse, error)
	// ResponsesBySensor lists the responses of a sensor checked within the
	// filter's inclusive date range, joined with item labels and respondents.
	ResponsesBySensor(ctx context.Context, id domain.SensorID, filter domain.HistoryFilter) ([]domain.ResponseDetail, error)
	ResponseCounts(ctx context.Context) (domain.ResponseCounts, error)
	// TopTechniciansByResponses ranks users by response count, ties broken by
	// user id.
	TopTechniciansByResponses(ctx context.Context, limit uint) ([]domain.TechnicianActivity, error)
}
