package appointment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthdesk/healthdesk/internal/platform/navigation"
	"github.com/healthdesk/healthdesk/internal/platform/notification"
)

func newTestHandler() (*Handler, *echo.Echo, Repository) {
	repo := NewMemRepo()
	svc := newTestService(repo, &notification.MockNotifier{})
	return NewHandler(svc), echo.New(), repo
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

func TestHandler_Book(t *testing.T) {
	h, e, repo := newTestHandler()
	body := `{"doctor_id":"1","patient_name":"Asha Verma","patient_age":"45"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Book(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp bookResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Appointment.Fee != 820 {
		t.Errorf("expected fee 820, got %d", resp.Appointment.Fee)
	}
	if resp.Next.View != navigation.ViewAppointments {
		t.Errorf("unexpected next view: %q", resp.Next.View)
	}

	stored, _ := repo.List(req.Context())
	if len(stored) != 1 {
		t.Errorf("expected 1 stored appointment, got %d", len(stored))
	}
}

func TestHandler_Book_Validation(t *testing.T) {
	h, e, _ := newTestHandler()
	body := `{"doctor_id":"1","patient_name":"Asha","patient_age":"200"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Book(c)
	if err == nil {
		t.Fatal("expected error for out-of-range age")
	}
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestHandler_Book_UnknownDoctor(t *testing.T) {
	h, e, _ := newTestHandler()
	body := `{"doctor_id":"99","patient_name":"Asha","patient_age":"45"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Book(c)
	if err == nil {
		t.Fatal("expected error for unknown doctor")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_Book_UnavailableDoctor(t *testing.T) {
	h, e, _ := newTestHandler()
	body := `{"doctor_id":"2","patient_name":"Asha","patient_age":"45"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Book(c)
	if err == nil {
		t.Fatal("expected error for unavailable doctor")
	}
	if code := httpStatus(t, err); code != http.StatusConflict {
		t.Errorf("expected 409, got %d", code)
	}
}

func TestHandler_List(t *testing.T) {
	h, e, repo := newTestHandler()
	repo.Save(nil, Appointment{ID: "a1", Status: StatusUpcoming})
	repo.Save(nil, Appointment{ID: "a2", Status: StatusUpcoming})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data  []Appointment `json:"data"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Errorf("expected 2 appointments, got total=%d len=%d", resp.Total, len(resp.Data))
	}
}

func TestHandler_Cancel(t *testing.T) {
	h, e, repo := newTestHandler()
	repo.Save(nil, Appointment{ID: "a1"})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := h.Cancel(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if stored, _ := repo.List(req.Context()); len(stored) != 0 {
		t.Errorf("expected record removed, got %d", len(stored))
	}
}

func TestHandler_Remind_NotFound(t *testing.T) {
	h, e, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Remind(c)
	if err == nil {
		t.Fatal("expected error for unknown appointment")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}
