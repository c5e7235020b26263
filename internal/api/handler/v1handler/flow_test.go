package v1handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"gmao/internal/accounts"
	mockaccounts "gmao/internal/accounts/mock"
	"gmao/internal/api/handler/v1handler"
	"gmao/internal/api/specs/v1specs"
	mockmaintenance "gmao/internal/maintenance/mock"
	"gmao/pkg/domain"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type flowClient struct {
	t     *testing.T
	srv   http.Handler
	token string
}

func (c *flowClient) post(path, body string, out any) int {
	c.t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	c.srv.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}

	return rec.Code
}

func TestSensorReturnFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockmaintenance.NewMockMaintenance(ctrl)
	a := mockaccounts.NewMockAccounts(ctrl)

	keys := genRSAKeys(t)
	issuer, err := accounts.NewTokenIssuer(keys.privatePEM)
	require.NoError(t, err)
	sec := newSecHandlerForTest(t, keys.publicPEM)

	srv, err := v1specs.NewServer(v1handler.New(v1handler.Deps{Maintenance: m, Accounts: a}), sec,
		v1specs.WithPathPrefix("/v1"))
	require.NoError(t, err)
	client := &flowClient{t: t, srv: srv}

	now := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)
	tech := domain.User{
		ID:        domain.UserID(uuid.New()),
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      domain.UserRoleTechnician,
		CreatedAt: now,
	}
	sensorID := domain.SensorID(uuid.New())
	checklistID := domain.ChecklistID(uuid.New())
	battery := domain.ChecklistItem{ID: domain.ChecklistItemID(uuid.New()), ChecklistID: checklistID,
		Label: "Check battery", IsBefore: true}
	calibration := domain.ChecklistItem{ID: domain.ChecklistItemID(uuid.New()), ChecklistID: checklistID,
		Label: "Verify calibration", IsBefore: false}

	// register
	a.EXPECT().Register(gomock.Any(), domain.NewUser{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "secret",
		RegistrationKey: "tech-key",
	}).Return(&tech, nil)

	var user struct {
		ID   uuid.UUID `json:"id"`
		Role string    `json:"role"`
	}
	require.Equal(t, http.StatusCreated, client.post("/v1/users/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret","registration_key":"tech-key"}`, &user))
	require.Equal(t, uuid.UUID(tech.ID), user.ID)
	require.Equal(t, "technician", user.Role)

	// login
	a.EXPECT().Login(gomock.Any(), "alice@example.com", "secret").
		DoAndReturn(func(context.Context, string, string) (*domain.Token, error) {
			return issuer.Issue(tech.ID.String(), time.Hour)
		})

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.Equal(t, http.StatusOK, client.post("/v1/users/login",
		`{"email":"alice@example.com","password":"secret"}`, &token))
	require.Equal(t, accounts.TokenType, token.TokenType)
	client.token = token.AccessToken

	// sensor registration
	m.EXPECT().RegisterSensor(gomock.Any(), tech.ID, domain.NewSensor{
		Reference: "S-100",
		Type:      "vibration",
		Subtype:   "v1",
	}).Return(&domain.Sensor{
		ID:        sensorID,
		Reference: "S-100",
		Type:      "vibration",
		Subtype:   "v1",
		Status:    domain.SensorStatusAvailable,
		CreatedBy: tech.ID,
		CreatedAt: now,
	}, nil)

	var sensor struct {
		ID        uuid.UUID `json:"id"`
		Status    string    `json:"status"`
		CreatedBy uuid.UUID `json:"created_by"`
	}
	require.Equal(t, http.StatusCreated, client.post("/v1/sensors",
		`{"reference":"S-100","type":"vibration","subtype":"v1"}`, &sensor))
	require.Equal(t, uuid.UUID(sensorID), sensor.ID)
	require.Equal(t, "available", sensor.Status)
	require.Equal(t, uuid.UUID(tech.ID), sensor.CreatedBy)

	// checklist authoring
	m.EXPECT().CreateChecklist(gomock.Any(), domain.NewChecklist{
		Type:    "vibration",
		Subtype: "v1",
		Items: []domain.NewChecklistItem{
			{Label: "Check battery", IsBefore: true},
			{Label: "Verify calibration", IsBefore: false},
		},
	}).Return(&domain.Checklist{
		ID:        checklistID,
		Type:      "vibration",
		Subtype:   "v1",
		Items:     []domain.ChecklistItem{battery, calibration},
		CreatedAt: now,
	}, nil)

	var checklist struct {
		ID    uuid.UUID `json:"id"`
		Items []struct {
			Label    string `json:"label"`
			IsBefore bool   `json:"is_before"`
		} `json:"items"`
	}
	require.Equal(t, http.StatusCreated, client.post("/v1/checklists",
		`{"type":"vibration","subtype":"v1","items":[`+
			`{"label":"Check battery","is_before":true},{"label":"Verify calibration","is_before":false}]}`, &checklist))
	require.Equal(t, uuid.UUID(checklistID), checklist.ID)
	require.Len(t, checklist.Items, 2)

	// return
	m.EXPECT().ProcessReturn(gomock.Any(), domain.SensorReturn{SensorID: sensorID, Chantier: "Site-A"}).
		DoAndReturn(func(_ context.Context, _ domain.SensorReturn) (*domain.ReturnChecklist, error) {
			before, after := domain.SplitItems([]domain.ChecklistItem{battery, calibration})

			return &domain.ReturnChecklist{
				ChecklistID:       checklistID,
				BeforeMaintenance: before,
				AfterMaintenance:  after,
			}, nil
		})

	type itemRef struct {
		ID    uuid.UUID `json:"id"`
		Label string    `json:"label"`
	}
	var ret struct {
		ChecklistID       uuid.UUID `json:"checklist_id"`
		BeforeMaintenance []itemRef `json:"before_maintenance"`
		AfterMaintenance  []itemRef `json:"after_maintenance"`
	}
	require.Equal(t, http.StatusOK, client.post("/v1/sensors/sensor-return",
		fmt.Sprintf(`{"sensor_id":%q,"chantier":"Site-A"}`, sensorID), &ret))
	require.Equal(t, uuid.UUID(checklistID), ret.ChecklistID)
	require.Equal(t, []itemRef{{ID: uuid.UUID(battery.ID), Label: "Check battery"}}, ret.BeforeMaintenance)
	require.Equal(t, []itemRef{{ID: uuid.UUID(calibration.ID), Label: "Verify calibration"}}, ret.AfterMaintenance)

	// responses
	m.EXPECT().RecordResponses(gomock.Any(), []domain.ChecklistResponse{{
		SensorID:  sensorID,
		ItemID:    battery.ID,
		UserID:    tech.ID,
		IsChecked: true,
		IsBefore:  true,
	}}).DoAndReturn(func(_ context.Context, in []domain.ChecklistResponse) ([]domain.ChecklistResponse, error) {
		stored := make([]domain.ChecklistResponse, 0, len(in))
		for _, r := range in {
			r.ID = domain.ResponseID(uuid.New())
			r.CheckedAt = now
			stored = append(stored, r)
		}

		return stored, nil
	})

	var responses []struct {
		ItemID    uuid.UUID `json:"item_id"`
		UserID    uuid.UUID `json:"user_id"`
		IsChecked bool      `json:"is_checked"`
		CheckedAt time.Time `json:"checked_at"`
	}
	require.Equal(t, http.StatusCreated, client.post("/v1/checklists/responses",
		fmt.Sprintf(`{"responses":[{"sensor_id":%q,"item_id":%q,"is_checked":true,"is_before":true}]}`,
			sensorID, battery.ID), &responses))
	require.Len(t, responses, 1)
	require.Equal(t, uuid.UUID(battery.ID), responses[0].ItemID)
	require.Equal(t, uuid.UUID(tech.ID), responses[0].UserID)
	require.True(t, responses[0].IsChecked)
	require.True(t, now.Equal(responses[0].CheckedAt))
}

func TestRouteErrors(t *testing.T) {
	srv, err := v1specs.NewServer(v1handler.New(v1handler.Deps{}), newSecHandlerForTest(t, genRSAKeys(t).publicPEM),
		v1specs.WithPathPrefix("/v1"))
	require.NoError(t, err)

	testCases := []struct {
		name, method, target string
		status               int
		code                 string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/v1/unknown", status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "wrong method", method: http.MethodDelete, target: "/v1/sensors", status: http.StatusMethodNotAllowed,
			code: "METHOD_NOT_ALLOWED"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))

			require.Equal(t, tc.status, rec.Code)
			require.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.code, body["code"])
		})
	}
}
