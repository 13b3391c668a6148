package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	return NewHandler(Default()), echo.New()
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

func TestHandler_ListHospitals(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListHospitals(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []Hospital `json:"data"`
		Total int        `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 3 || len(resp.Data) != 3 {
		t.Errorf("expected 3 hospitals, got total=%d len=%d", resp.Total, len(resp.Data))
	}
}

func TestHandler_ListHospitals_Query(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?q=apollo", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListHospitals(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data []Hospital `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != "2" {
		t.Errorf("unexpected result: %+v", resp.Data)
	}
}

func TestHandler_GetHospital_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.GetHospital(c)
	if err == nil {
		t.Fatal("expected error for unknown hospital")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_ListHospitalDoctors(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.ListHospitalDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data []Doctor `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 3 {
		t.Errorf("expected 3 doctors, got %d", len(resp.Data))
	}
}

func TestHandler_HospitalDirections(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.HospitalDirections(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp directionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	want := "https://www.google.com/maps/search/?api=1&query=28.6139,77.209"
	if resp.URL != want {
		t.Errorf("expected %q, got %q", want, resp.URL)
	}
}

func TestHandler_ResolveMedicine(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?name=Paracetamol+500mg+tablets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ResolveMedicine(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m Medicine
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	if m.Name != "Paracetamol 500mg" {
		t.Errorf("expected Paracetamol 500mg, got %q", m.Name)
	}
}

func TestHandler_ResolveMedicine_Miss(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?name=Ibuprofen", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ResolveMedicine(c)
	if err == nil {
		t.Fatal("expected error for unlisted medicine")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_ResolveMedicine_MissingName(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ResolveMedicine(c)
	if err == nil {
		t.Fatal("expected error for missing name")
	}
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestHandler_QuoteOrder(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"home_delivery":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "pharmacyID")
	c.SetParamValues("1", "1")

	if err := h.QuoteOrder(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var q Quote
	if err := json.Unmarshal(rec.Body.Bytes(), &q); err != nil {
		t.Fatal(err)
	}
	if q.Total != 25+DeliveryFee {
		t.Errorf("expected total %d, got %d", 25+DeliveryFee, q.Total)
	}
}

func TestHandler_QuoteOrder_UnknownPharmacy(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "pharmacyID")
	c.SetParamValues("1", "99")

	err := h.QuoteOrder(c)
	if err == nil {
		t.Fatal("expected error for unknown pharmacy")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_PharmacyDirections(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "pharmacyID")
	c.SetParamValues("1", "2")

	if err := h.PharmacyDirections(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp directionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	want := "https://www.google.com/maps/search/?api=1&query=Main+Road%2C+Downtown"
	if resp.URL != want {
		t.Errorf("expected %q, got %q", want, resp.URL)
	}
}
