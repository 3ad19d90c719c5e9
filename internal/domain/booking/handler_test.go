package booking

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreateBooking(t *testing.T) {
	h, e := newTestHandler()
	body := `{"branch_id":1,"patient_name":"Ana Silva","date":"2026-03-02","start_time":"10:00","end_time":"11:00"}`
	c, rec := postJSON(e, body)

	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	h, e := newTestHandler()
	body := `{"branch_id":1,"patient_name":"Ana Silva","date":"02/03/2026","start_time":"10:00","end_time":"11:00"}`
	c, _ := postJSON(e, body)

	err := h.CreateBooking(c)
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_CreateBooking_ConflictIs409(t *testing.T) {
	h, e := newTestHandler()
	body := `{"branch_id":1,"patient_name":"Ana Silva","date":"2026-03-02","start_time":"10:00","end_time":"11:00"}`
	c, _ := postJSON(e, body)
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body = `{"branch_id":1,"patient_name":"Bruno Costa","date":"2026-03-02","start_time":"10:30","end_time":"11:30"}`
	c, _ = postJSON(e, body)
	err := h.CreateBooking(c)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	h, e := newTestHandler()
	b := testBooking("10:00", "11:00")
	if err := h.svc.CreateBooking(nil, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(b.ID.String())

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_UpdateStatus_UnknownBookingIs404(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.UpdateStatus(c)
	if err == nil {
		t.Fatal("expected not-found error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_ListBookings_RequiresBranch(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListBookings(c); err == nil {
		t.Error("expected error for missing branch_id")
	}
}

func TestHandler_CreateTimeBlock(t *testing.T) {
	h, e := newTestHandler()
	body := `{"branch_id":1,"date":"2026-03-02","start_time":"13:00","end_time":"14:00","reason":"equipment maintenance"}`
	c, rec := postJSON(e, body)

	if err := h.CreateTimeBlock(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	if err := h.GetBooking(c); err == nil {
		t.Error("expected error for invalid id")
	}
}
