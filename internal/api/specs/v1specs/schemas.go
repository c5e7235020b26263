package v1specs

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    string
	Message string
}

// ErrorStatusCode wraps Error with the status code it is written with.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %s: %s", s.StatusCode, s.Response.Code, s.Response.Message)
}

// SensorStatus is the declared rental state of a sensor.
type SensorStatus string

const (
	SensorStatusAvailable   SensorStatus = "available"
	SensorStatusRented      SensorStatus = "rented"
	SensorStatusReturned    SensorStatus = "returned"
	SensorStatusMaintenance SensorStatus = "maintenance"
)

// Validate checks s against the enum.
func (s SensorStatus) Validate() error {
	switch s {
	case SensorStatusAvailable, SensorStatusRented, SensorStatusReturned, SensorStatusMaintenance:
		return nil
	default:
		return fmt.Errorf("invalid value: %q", string(s))
	}
}

// UserRole is the role granted at registration.
type UserRole string

const (
	UserRoleTechnician UserRole = "technician"
	UserRoleManager    UserRole = "manager"
)

// ExportFormat selects the document format of a history export.
type ExportFormat string

const (
	ExportFormatExcel ExportFormat = "excel"
	ExportFormatPdf   ExportFormat = "pdf"
)

// Validate checks s against the enum.
func (s ExportFormat) Validate() error {
	switch s {
	case ExportFormatExcel, ExportFormatPdf:
		return nil
	default:
		return fmt.Errorf("invalid value: %q", string(s))
	}
}

// Ref: #/components/schemas/CreateSensorRequest
type CreateSensorRequest struct {
	Reference string
	Type      string
	Subtype   string
	Status    OptSensorStatus
	Chantier  OptString
}

// Ref: #/components/schemas/Sensor
type Sensor struct {
	ID        uuid.UUID
	Reference string
	Type      string
	Subtype   string
	Status    SensorStatus
	Chantier  OptString
	CreatedBy OptUUID
	CreatedAt time.Time
}

// SensorList is the response of listSensors.
type SensorList []Sensor

// Ref: #/components/schemas/SensorReturnRequest
type SensorReturnRequest struct {
	SensorID   uuid.UUID
	Chantier   string
	ReturnedAt OptDateTime
}

// Ref: #/components/schemas/ItemRef
type ItemRef struct {
	ID    uuid.UUID
	Label string
}

// Ref: #/components/schemas/ReturnChecklist
type ReturnChecklist struct {
	ChecklistID       uuid.UUID
	BeforeMaintenance []ItemRef
	AfterMaintenance  []ItemRef
}

// Ref: #/components/schemas/CreateChecklistItem
type CreateChecklistItem struct {
	Label    string
	IsBefore bool
}

// Ref: #/components/schemas/CreateChecklistRequest
type CreateChecklistRequest struct {
	Type    string
	Subtype string
	Items   []CreateChecklistItem
}

// Ref: #/components/schemas/ChecklistItem
type ChecklistItem struct {
	ID       uuid.UUID
	Label    string
	IsBefore bool
}

// Ref: #/components/schemas/Checklist
type Checklist struct {
	ID        uuid.UUID
	Type      string
	Subtype   string
	Items     []ChecklistItem
	CreatedAt time.Time
}

// Ref: #/components/schemas/NewChecklistResponse
type NewChecklistResponse struct {
	SensorID uuid.UUID
	ItemID   uuid.UUID
	// UserID defaults to the authenticated user.
	UserID    OptUUID
	IsChecked bool
	IsBefore  bool
}

// Ref: #/components/schemas/RecordResponsesRequest
type RecordResponsesRequest struct {
	Responses []NewChecklistResponse
}

// Ref: #/components/schemas/ChecklistResponse
type ChecklistResponse struct {
	ID        uuid.UUID
	SensorID  uuid.UUID
	ItemID    uuid.UUID
	UserID    uuid.UUID
	IsChecked bool
	IsBefore  bool
	CheckedAt time.Time
}

// ChecklistResponseList is the response of recordResponses.
type ChecklistResponseList []ChecklistResponse

// Ref: #/components/schemas/Movement
type Movement struct {
	ID         uuid.UUID
	Chantier   string
	DepartedAt OptDateTime
	ReturnedAt OptDateTime
	Comment    OptString
}

// Ref: #/components/schemas/User
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}

// Ref: #/components/schemas/ResponseDetail
type ResponseDetail struct {
	ItemID    uuid.UUID
	Label     string
	IsChecked bool
	IsBefore  bool
	User      User
	CheckedAt time.Time
}

// Ref: #/components/schemas/HistoryResponses
type HistoryResponses struct {
	Before []ResponseDetail
	After  []ResponseDetail
}

// Ref: #/components/schemas/SensorHistory
type SensorHistory struct {
	SensorID  uuid.UUID
	Type      string
	Subtype   string
	Movements []Movement
	Responses HistoryResponses
}

// HistoryExport is a rendered document streamed as the response body.
type HistoryExport struct {
	ContentType        string
	ContentDisposition string
	Data               io.Reader
}

// Ref: #/components/schemas/RegisterRequest
type RegisterRequest struct {
	Name            string
	Email           string
	Password        string
	RegistrationKey string
}

// LoginUserReq is either a JSON *LoginRequest or a form encoded *LoginForm.
type LoginUserReq interface {
	loginUserReq()
}

// Ref: #/components/schemas/LoginRequest
type LoginRequest struct {
	Email    string
	Password string
}

func (*LoginRequest) loginUserReq() {}

// LoginForm is the OAuth2 password grant form. Username holds the email.
type LoginForm struct {
	Username string
	Password string
}

func (*LoginForm) loginUserReq() {}

// Ref: #/components/schemas/Token
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// Ref: #/components/schemas/SensorActivity
type SensorActivity struct {
	SensorID uuid.UUID
	Count    int64
}

// Ref: #/components/schemas/TechnicianActivity
type TechnicianActivity struct {
	Name  string
	Count int64
}

// Ref: #/components/schemas/Dashboard
type Dashboard struct {
	ReturnedThisMonth       int64
	ChecklistCompletionRate float64
	MeanDaysBetweenReturns  float64
	TopSensors              []SensorActivity
	TopTechnicians          []TechnicianActivity
}

// GetSensorHistoryParams is the parameters of getSensorHistory.
type GetSensorHistoryParams struct {
	SensorID  uuid.UUID
	Chantier  OptString
	StartDate OptString
	EndDate   OptString
}

// ExportSensorHistoryParams is the parameters of exportSensorHistory.
type ExportSensorHistoryParams struct {
	SensorID  uuid.UUID
	Format    OptExportFormat
	Chantier  OptString
	StartDate OptString
	EndDate   OptString
}

// BearerAuth carries the token of the bearer security scheme.
type BearerAuth struct {
	Token string
}
