package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
)

type stubDirectory struct {
	ids []int64
}

func (s *stubDirectory) ListDoctorIDs(_ context.Context) ([]int64, error) {
	return s.ids, nil
}

func newTestHandler() (*Handler, *Service, *stubDirectory, *echo.Echo) {
	svc := NewService(NewMemoryRepo())
	dir := &stubDirectory{}
	h := NewHandler(svc, dir)
	return h, svc, dir, echo.New()
}

func newContext(e *echo.Echo, method, path, body string, id auth.Identity) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req = req.WithContext(auth.WithIdentity(req.Context(), id))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func seedAppt(t *testing.T, svc *Service, patientID, doctorID int64) *Appointment {
	t.Helper()
	a, err := svc.Create(context.Background(), CreateInput{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		Duration:        30,
		Type:            "consultation",
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return a
}

func TestList_PatientSeesOnlyOwn(t *testing.T) {
	h, svc, _, e := newTestHandler()
	seedAppt(t, svc, 1, 10)
	seedAppt(t, svc, 2, 10)
	seedAppt(t, svc, 1, 11)

	c, rec := newContext(e, http.MethodGet, "/api/appointments", "", auth.Identity{UserID: 1, Role: "patient"})
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var appts []Appointment
	json.Unmarshal(rec.Body.Bytes(), &appts)
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts))
	}
	for _, a := range appts {
		if a.PatientID != 1 {
			t.Errorf("patient received foreign appointment (patient %d)", a.PatientID)
		}
	}
}

func TestList_DoctorSeesOnlyOwn(t *testing.T) {
	h, svc, _, e := newTestHandler()
	seedAppt(t, svc, 1, 10)
	seedAppt(t, svc, 2, 11)

	c, rec := newContext(e, http.MethodGet, "/api/appointments", "", auth.Identity{UserID: 10, Role: "doctor"})
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var appts []Appointment
	json.Unmarshal(rec.Body.Bytes(), &appts)
	if len(appts) != 1 || appts[0].DoctorID != 10 {
		t.Errorf("unexpected doctor list: %+v", appts)
	}
}

func TestList_NurseFanOut(t *testing.T) {
	h, svc, dir, e := newTestHandler()
	dir.ids = []int64{10, 11}
	a1 := seedAppt(t, svc, 1, 11)
	a2 := seedAppt(t, svc, 2, 10)
	a3 := seedAppt(t, svc, 3, 11)

	c, rec := newContext(e, http.MethodGet, "/api/appointments", "", auth.Identity{UserID: 50, Role: "nurse"})
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var appts []Appointment
	json.Unmarshal(rec.Body.Bytes(), &appts)
	if len(appts) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(appts))
	}
	// Concatenated per doctor in directory order: doctor 10 first, then 11.
	want := []int64{a2.ID, a1.ID, a3.ID}
	for i, a := range appts {
		if a.ID != want[i] {
			t.Errorf("position %d: expected id %d, got %d", i, want[i], a.ID)
		}
	}
}

func TestListByDate(t *testing.T) {
	h, svc, _, e := newTestHandler()
	seedAppt(t, svc, 1, 10)
	svc.Create(context.Background(), CreateInput{
		PatientID: 1, DoctorID: 10,
		AppointmentDate: time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
		Duration:        30, Type: "followup",
	})

	c, rec := newContext(e, http.MethodGet, "/", "", auth.Identity{UserID: 1, Role: "patient"})
	c.SetParamNames("date")
	c.SetParamValues("2024-03-15")

	if err := h.ListByDate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var appts []Appointment
	json.Unmarshal(rec.Body.Bytes(), &appts)
	if len(appts) != 1 {
		t.Errorf("expected 1 appointment on 2024-03-15, got %d", len(appts))
	}
}

func TestListByDate_Malformed(t *testing.T) {
	h, _, _, e := newTestHandler()

	c, _ := newContext(e, http.MethodGet, "/", "", auth.Identity{UserID: 1, Role: "patient"})
	c.SetParamNames("date")
	c.SetParamValues("not-a-date")

	err := h.ListByDate(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestCreate_PatientForSelf(t *testing.T) {
	h, _, _, e := newTestHandler()

	body := `{"patientId":1,"doctorId":10,"appointmentDate":"2024-03-15T09:00:00Z","duration":30,"type":"consultation"}`
	c, rec := newContext(e, http.MethodPost, "/api/appointments", body, auth.Identity{UserID: 1, Role: "patient"})

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestCreate_PatientForOtherForbidden(t *testing.T) {
	h, _, _, e := newTestHandler()

	body := `{"patientId":2,"doctorId":10,"appointmentDate":"2024-03-15T09:00:00Z","duration":30,"type":"consultation"}`
	c, _ := newContext(e, http.MethodPost, "/api/appointments", body, auth.Identity{UserID: 1, Role: "patient"})

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestCreate_NurseForAnyPatient(t *testing.T) {
	h, _, _, e := newTestHandler()

	body := `{"patientId":2,"doctorId":10,"appointmentDate":"2024-03-15T09:00:00Z","duration":30,"type":"consultation"}`
	c, rec := newContext(e, http.MethodPost, "/api/appointments", body, auth.Identity{UserID: 50, Role: "nurse"})

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestUpdate_PatientOwnershipAgainstExisting(t *testing.T) {
	h, svc, _, e := newTestHandler()
	a := seedAppt(t, svc, 2, 10)

	c, _ := newContext(e, http.MethodPut, "/", `{"duration":45}`, auth.Identity{UserID: 1, Role: "patient"})
	c.SetParamNames("id")
	c.SetParamValues(formatID(a.ID))

	err := h.Update(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	h, _, _, e := newTestHandler()

	c, _ := newContext(e, http.MethodPut, "/", `{"duration":45}`, auth.Identity{UserID: 1, Role: "nurse"})
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.Update(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestUpdate_InvalidID(t *testing.T) {
	h, _, _, e := newTestHandler()

	c, _ := newContext(e, http.MethodPut, "/", `{"duration":45}`, auth.Identity{UserID: 1, Role: "nurse"})
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Update(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	h, svc, _, e := newTestHandler()
	a := seedAppt(t, svc, 1, 10)

	c, rec := newContext(e, http.MethodDelete, "/", "", auth.Identity{UserID: 1, Role: "patient"})
	c.SetParamNames("id")
	c.SetParamValues(formatID(a.ID))

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestDelete_NotFound(t *testing.T) {
	h, _, _, e := newTestHandler()

	c, _ := newContext(e, http.MethodDelete, "/", "", auth.Identity{UserID: 1, Role: "nurse"})
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
