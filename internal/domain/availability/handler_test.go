package availability

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/pkg/clock"
)

var errConnRefused = errors.New("connection refused")

func newTestHandler(sched *mockScheduleReader, ledger *mockLedger) (*Handler, *echo.Echo) {
	h := NewHandler(NewService(sched, ledger, testCatalog()))
	e := echo.New()
	return h, e
}

func availabilityRequest(e *echo.Echo, target, branchID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(branchID)
	return c, rec
}

func TestHandler_GetAvailability(t *testing.T) {
	ledger := &mockLedger{busy: []clock.Interval{
		{Start: clock.MustParse("10:00"), End: clock.MustParse("11:00")},
	}}
	h, e := newTestHandler(&mockScheduleReader{sched: standardDay()}, ledger)

	c, rec := availabilityRequest(e, "/?date=2026-03-02&duration=60", "1")
	if err := h.GetAvailability(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Date      string   `json:"date"`
		Status    string   `json:"status"`
		Available []string `json:"available_slots"`
		Blocked   []string `json:"blocked_slots"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Date != "2026-03-02" {
		t.Errorf("expected date echoed back, got %q", resp.Date)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	if len(resp.Blocked) != 1 || resp.Blocked[0] != "10:00" {
		t.Errorf("expected blocked [10:00], got %v", resp.Blocked)
	}
	if len(resp.Available) != 7 {
		t.Errorf("expected 7 available slots, got %v", resp.Available)
	}
}

func TestHandler_GetAvailability_DefaultDuration(t *testing.T) {
	h, e := newTestHandler(&mockScheduleReader{sched: standardDay()}, &mockLedger{})

	c, rec := availabilityRequest(e, "/?date=2026-03-02", "1")
	if err := h.GetAvailability(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with default duration, got %d", rec.Code)
	}
}

func TestHandler_GetAvailability_Unscheduled(t *testing.T) {
	h, e := newTestHandler(&mockScheduleReader{sched: nil}, &mockLedger{})

	c, rec := availabilityRequest(e, "/?date=2026-03-02", "1")
	if err := h.GetAvailability(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unscheduled day, got %d", rec.Code)
	}

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != "unscheduled" {
		t.Errorf("expected status unscheduled, got %q", resp.Status)
	}
	if resp.Message == "" {
		t.Error("expected a status message")
	}
}

func TestHandler_GetAvailability_BadInput(t *testing.T) {
	h, e := newTestHandler(&mockScheduleReader{sched: standardDay()}, &mockLedger{})

	tests := []struct {
		name     string
		target   string
		branchID string
	}{
		{"missing date", "/", "1"},
		{"malformed date", "/?date=03-02-2026", "1"},
		{"zero duration", "/?date=2026-03-02&duration=0", "1"},
		{"negative duration", "/?date=2026-03-02&duration=-60", "1"},
		{"non-numeric duration", "/?date=2026-03-02&duration=abc", "1"},
		{"non-numeric branch", "/?date=2026-03-02", "abc"},
		{"zero branch", "/?date=2026-03-02", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := availabilityRequest(e, tt.target, tt.branchID)
			err := h.GetAvailability(c)
			if err == nil {
				t.Fatal("expected error")
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %v", err)
			}
		})
	}
}

func TestHandler_GetAvailability_StorageFailure(t *testing.T) {
	h, e := newTestHandler(&mockScheduleReader{sched: standardDay()},
		&mockLedger{err: errConnRefused})

	c, _ := availabilityRequest(e, "/?date=2026-03-02", "1")
	err := h.GetAvailability(c)
	if err == nil {
		t.Fatal("expected error for storage failure")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %v", err)
	}
}
