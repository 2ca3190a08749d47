package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/pkg/log"
	"mango-alerts-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

type fakeUseCase struct {
	createErr error
	deleteErr error
	listErr   error

	created   alert.CreateInput
	deletedID string
	summaries []alert.Summary
}

func (f *fakeUseCase) Create(_ context.Context, input alert.CreateInput) (model.Alert, error) {
	f.created = input
	return model.Alert{}, f.createErr
}

func (f *fakeUseCase) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeUseCase) List(_ context.Context, _ string) ([]alert.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.summaries, nil
}

func (f *fakeUseCase) OpenAlerts(_ context.Context) ([]model.Alert, error) { return nil, nil }
func (f *fakeUseCase) Evaluate(_ context.Context, _ model.Alert) error    { return nil }

func newTestRouter(uc alert.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNoop(), uc).MapRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return w, resp
}

func TestCreateAlert(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w, resp := doJSON(t, r, http.MethodPost, "/alerts", gin.H{
		"mangoAccountPk": "9BVcYqEQxyccuwznvxXqDkSJFavvTyheiTYk231T1A8S",
		"mangoGroupPk":   "98pjRuQjK3qA6gXts96PqZT4Ze5QmnCmt3QYjhbUSPue",
		"health":         10,
		"alertProvider":  "mail",
		"email":          "trader@example.com",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp.Message != response.MessageSuccess {
		t.Errorf("message = %q, want %q", resp.Message, response.MessageSuccess)
	}
	if uc.created.AlertProvider != model.ProviderMail || uc.created.Health != 10 {
		t.Errorf("usecase received input %+v", uc.created)
	}
}

func TestCreateAlert_Errors(t *testing.T) {
	tests := []struct {
		name     string
		ucErr    error
		wantMsg  string
		wantCode int
	}{
		{name: "invalid email", ucErr: alert.ErrInvalidEmail, wantMsg: "The entered email is incorrect", wantCode: http.StatusBadRequest},
		{name: "invalid provider", ucErr: alert.ErrInvalidProvider, wantMsg: "Invalid alert provider", wantCode: http.StatusBadRequest},
		{name: "unknown account", ucErr: alert.ErrInvalidAccount, wantMsg: "Invalid margin account or mango group", wantCode: http.StatusBadRequest},
		{name: "unexpected failure masked", ucErr: errors.New("mongo timeout"), wantMsg: response.DefaultErrorMessage, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeUseCase{createErr: tt.ucErr})

			w, resp := doJSON(t, r, http.MethodPost, "/alerts", gin.H{"alertProvider": "mail"})
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}
}

func TestCreateAlert_MalformedBody(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/alerts", bytes.NewBufferString("{nope"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeleteAlert(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w, _ := doJSON(t, r, http.MethodPost, "/delete-alert", gin.H{"id": "507f1f77bcf86cd799439011"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if uc.deletedID != "507f1f77bcf86cd799439011" {
		t.Errorf("deleted id = %q", uc.deletedID)
	}
}

func TestDeleteAlert_InvalidID(t *testing.T) {
	r := newTestRouter(&fakeUseCase{deleteErr: alert.ErrInvalidID})

	w, resp := doJSON(t, r, http.MethodPost, "/delete-alert", gin.H{"id": "nope"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if resp.Message != "Invalid alert id" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestListAlerts(t *testing.T) {
	now := time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{summaries: []alert.Summary{{
		ID:            "507f1f77bcf86cd799439011",
		Health:        10,
		AlertProvider: model.ProviderMail,
		Open:          true,
		Timestamp:     now,
	}}}
	r := newTestRouter(uc)

	w, resp := doJSON(t, r, http.MethodGet, "/alerts/9BVcYqEQxyccuwznvxXqDkSJFavvTyheiTYk231T1A8S", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	var body listAlertsResp
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decode alerts: %v", err)
	}
	if len(body.Alerts) != 1 || body.Alerts[0].ID != "507f1f77bcf86cd799439011" {
		t.Errorf("alerts = %+v", body.Alerts)
	}
}

func TestListAlerts_MissingAccount(t *testing.T) {
	r := newTestRouter(&fakeUseCase{listErr: alert.ErrMissingAccount})

	w, resp := doJSON(t, r, http.MethodGet, "/alerts/x", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if resp.Message != "Missing margin account" {
		t.Errorf("message = %q", resp.Message)
	}
}
