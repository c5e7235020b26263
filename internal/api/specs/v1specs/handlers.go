package v1specs

import (
	"context"

	"github.com/go-faster/errors"
)

// OperationName is the operationId of a v1 operation.
type OperationName = string

const (
	CreateSensorOperation        OperationName = "CreateSensor"
	ListSensorsOperation         OperationName = "ListSensors"
	ReturnSensorOperation        OperationName = "ReturnSensor"
	GetSensorHistoryOperation    OperationName = "GetSensorHistory"
	ExportSensorHistoryOperation OperationName = "ExportSensorHistory"
	CreateChecklistOperation     OperationName = "CreateChecklist"
	RecordResponsesOperation     OperationName = "RecordResponses"
	RegisterUserOperation        OperationName = "RegisterUser"
	LoginUserOperation           OperationName = "LoginUser"
	GetCurrentUserOperation      OperationName = "GetCurrentUser"
	GetDashboardOperation        OperationName = "GetDashboard"
)

// ErrNotImplemented is returned by UnimplementedHandler.
var ErrNotImplemented = errors.New("not implemented")

// Handler handles operations described by the v1 OpenAPI document.
type Handler interface {
	// CreateSensor implements createSensor operation.
	//
	// POST /sensors
	CreateSensor(ctx context.Context, req *CreateSensorRequest) (*Sensor, error)
	// ListSensors implements listSensors operation.
	//
	// GET /sensors
	ListSensors(ctx context.Context) (SensorList, error)
	// ReturnSensor implements returnSensor operation.
	//
	// POST /sensors/sensor-return
	ReturnSensor(ctx context.Context, req *SensorReturnRequest) (*ReturnChecklist, error)
	// GetSensorHistory implements getSensorHistory operation.
	//
	// GET /sensors/{sensorID}/history
	GetSensorHistory(ctx context.Context, params GetSensorHistoryParams) (*SensorHistory, error)
	// ExportSensorHistory implements exportSensorHistory operation.
	//
	// GET /sensors/{sensorID}/history/export
	ExportSensorHistory(ctx context.Context, params ExportSensorHistoryParams) (*HistoryExport, error)
	// CreateChecklist implements createChecklist operation.
	//
	// POST /checklists
	CreateChecklist(ctx context.Context, req *CreateChecklistRequest) (*Checklist, error)
	// RecordResponses implements recordResponses operation.
	//
	// POST /checklists/responses
	RecordResponses(ctx context.Context, req *RecordResponsesRequest) (ChecklistResponseList, error)
	// RegisterUser implements registerUser operation.
	//
	// POST /users/register
	RegisterUser(ctx context.Context, req *RegisterRequest) (*User, error)
	// LoginUser implements loginUser operation.
	//
	// POST /users/login
	LoginUser(ctx context.Context, req LoginUserReq) (*Token, error)
	// GetCurrentUser implements getCurrentUser operation.
	//
	// GET /users/me
	GetCurrentUser(ctx context.Context) (*User, error)
	// GetDashboard implements getDashboard operation.
	//
	// GET /dashboard
	GetDashboard(ctx context.Context) (*Dashboard, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// SecurityHandler is handler for security parameters.
type SecurityHandler interface {
	// HandleBearerAuth handles bearerAuth security.
	HandleBearerAuth(ctx context.Context, operationName OperationName, t BearerAuth) (context.Context, error)
}

// UnimplementedHandler is no-op Handler which returns ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

func (UnimplementedHandler) CreateSensor(context.Context, *CreateSensorRequest) (*Sensor, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) ListSensors(context.Context) (SensorList, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) ReturnSensor(context.Context, *SensorReturnRequest) (*ReturnChecklist, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) GetSensorHistory(context.Context, GetSensorHistoryParams) (*SensorHistory, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) ExportSensorHistory(context.Context, ExportSensorHistoryParams) (*HistoryExport, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) CreateChecklist(context.Context, *CreateChecklistRequest) (*Checklist, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) RecordResponses(context.Context, *RecordResponsesRequest) (ChecklistResponseList, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) RegisterUser(context.Context, *RegisterRequest) (*User, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) LoginUser(context.Context, LoginUserReq) (*Token, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) GetCurrentUser(context.Context) (*User, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedHandler) GetDashboard(context.Context) (*Dashboard, error) {
	return nil, ErrNotImplemented
}

// NewError reports every error as an internal error.
func (UnimplementedHandler) NewError(_ context.Context, err error) *ErrorStatusCode {
	return &ErrorStatusCode{StatusCode: 500, Response: Error{Code: "INTERNAL", Message: err.Error()}}
}
