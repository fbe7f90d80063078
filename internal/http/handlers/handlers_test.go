package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/http/handlers"
	mw "github.com/minervatires/site-api/internal/http/middleware"
	"github.com/minervatires/site-api/internal/platform/auth"
	"github.com/minervatires/site-api/internal/service"
)

const testSecret = "handlers-test-secret"

// ---------- Mocks ----------

type mockBookingService struct {
	submitID  int64
	submitErr error
	listed    []domain.Booking
	updated   bool
}

func (m *mockBookingService) Submit(context.Context, *domain.BookingRequest) (int64, error) {
	return m.submitID, m.submitErr
}
func (m *mockBookingService) Get(context.Context, int64) (*domain.Booking, error) { return nil, nil }
func (m *mockBookingService) List(context.Context, domain.BookingFilter) ([]domain.Booking, error) {
	return m.listed, nil
}
func (m *mockBookingService) SetStatus(context.Context, int64, domain.BookingStatus) (bool, error) {
	return m.updated, nil
}

type mockContactService struct {
	submitErr error
	calls     int
}

func (m *mockContactService) Submit(context.Context, *domain.ContactInquiry, string) error {
	m.calls++
	return m.submitErr
}

type mockReferenceService struct {
	info  *domain.ContactInfo
	hours []domain.BusinessHour
	err   error
}

func (m *mockReferenceService) ReferenceData(context.Context) (*domain.ContactInfo, []domain.BusinessHour, error) {
	return m.info, m.hours, m.err
}

// ---------- Booking endpoint ----------

func bookingRouter(svc service.BookingService) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/bookings", handlers.NewBookingHandler(svc).Create)
	return r
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingSuccess(t *testing.T) {
	h := bookingRouter(&mockBookingService{submitID: 42})

	rec := postJSON(t, h, "/api/bookings", domain.BookingRequest{
		UserName:        "Juan Dela Cruz",
		UserEmail:       "juan@example.com",
		Phone:           "+639171234567",
		Service:         "Tire Rotation",
		AppointmentDate: "2031-01-15",
		AppointmentTime: "2:00 PM",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		BookingID int64  `json:"booking_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Success || out.BookingID != 42 {
		t.Errorf("response = %+v", out)
	}
}

func TestCreateBookingInvalidJSON(t *testing.T) {
	h := bookingRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateBookingEmptyBody(t *testing.T) {
	h := bookingRouter(&mockBookingService{})

	rec := postJSON(t, h, "/api/bookings", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No data received") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCreateBookingValidationFailure(t *testing.T) {
	h := bookingRouter(&mockBookingService{
		submitErr: &service.ValidationError{Violations: []string{
			"Field 'phone' is required",
			"Invalid email format",
		}},
	})

	rec := postJSON(t, h, "/api/bookings", domain.BookingRequest{UserName: "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Field 'phone' is required, Invalid email format") {
		t.Errorf("violations not joined in body: %s", body)
	}
}

func TestCreateBookingDuplicate(t *testing.T) {
	h := bookingRouter(&mockBookingService{submitErr: service.ErrDuplicateBooking})

	rec := postJSON(t, h, "/api/bookings", domain.BookingRequest{UserName: "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "A booking with the same details already exists") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCreateBookingStorageFailureIsOpaque(t *testing.T) {
	h := bookingRouter(&mockBookingService{submitErr: errors.New("pq: connection refused")})

	rec := postJSON(t, h, "/api/bookings", domain.BookingRequest{UserName: "x"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestCreateBookingMethodNotAllowed(t *testing.T) {
	h := bookingRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

// ---------- Contact endpoint ----------

func contactRouter(svc service.ContactService) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/contact", handlers.NewContactHandler(svc).Create)
	return r
}

func postForm(h http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestContactSuccessBody(t *testing.T) {
	svc := &mockContactService{}
	rec := postForm(contactRouter(svc), url.Values{
		"name":         {"Juan"},
		"email":        {"juan@example.com"},
		"inquiry_type": {"appointment"},
		"message":      {"hello"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "success" {
		t.Errorf("body = %q, want \"success\"", rec.Body.String())
	}
}

func TestContactFailureBody(t *testing.T) {
	svc := &mockContactService{submitErr: &service.ValidationError{Violations: []string{"Field 'message' is required"}}}
	rec := postForm(contactRouter(svc), url.Values{"name": {"Juan"}})

	if rec.Body.String() != "failed" {
		t.Errorf("body = %q, want \"failed\"", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
}

// ---------- Reference endpoint ----------

func TestReferenceDataPayload(t *testing.T) {
	open := "08:00:00"
	closeT := "18:00:00"
	svc := &mockReferenceService{
		info: &domain.ContactInfo{
			Email:      "minervatires@example.com",
			PhoneGlobe: "0905.489.9763",
			Address:    "National Highway Brgy Real, Calamba",
		},
		hours: []domain.BusinessHour{
			{Day: "Monday", OpenTime: &open, CloseTime: &closeT},
			{Day: "Sunday", IsClosed: 1},
		},
	}

	r := chi.NewRouter()
	r.Get("/api/contact-info", handlers.NewReferenceHandler(svc).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/contact-info", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out struct {
		Success       bool                  `json:"success"`
		ContactInfo   *domain.ContactInfo   `json:"contact_info"`
		BusinessHours []domain.BusinessHour `json:"business_hours"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Success || out.ContactInfo == nil || len(out.BusinessHours) != 2 {
		t.Errorf("payload = %+v", out)
	}
}

func TestReferenceDataStorageFailure(t *testing.T) {
	svc := &mockReferenceService{err: errors.New("dial tcp: connection refused")}

	r := chi.NewRouter()
	r.Get("/api/contact-info", handlers.NewReferenceHandler(svc).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/contact-info", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `"success":false`) {
		t.Errorf("body = %s", body)
	}
	if strings.Contains(body, "connection refused") {
		t.Errorf("internal detail leaked: %s", body)
	}
}

// ---------- Role-gated admin routes ----------

func adminRouter(svc service.BookingService) http.Handler {
	admin := handlers.NewAdminHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(mw.RequireRole(domain.RoleStaff, testSecret))
		r.Get("/", admin.List)
	})
	return r
}

func tokenFor(t *testing.T, role domain.Role) string {
	t.Helper()
	token, err := auth.NewSessionToken(1, "user@minervatires.test", role, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	return token
}

func getWithToken(h http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAdminBookingsRequiresSession(t *testing.T) {
	h := adminRouter(&mockBookingService{})

	if rec := getWithToken(h, "/api/admin/bookings/", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}
	if rec := getWithToken(h, "/api/admin/bookings/", tokenFor(t, domain.RoleCustomer)); rec.Code != http.StatusForbidden {
		t.Errorf("customer token: status = %d, want 403", rec.Code)
	}
	if rec := getWithToken(h, "/api/admin/bookings/", tokenFor(t, domain.RoleStaff)); rec.Code != http.StatusOK {
		t.Errorf("staff token: status = %d, want 200", rec.Code)
	}
	if rec := getWithToken(h, "/api/admin/bookings/", tokenFor(t, domain.RoleAdmin)); rec.Code != http.StatusOK {
		t.Errorf("admin token: status = %d, want 200", rec.Code)
	}
}

// ---------- Session nav ----------

func TestSessionNavLinksPerRole(t *testing.T) {
	authHandler := handlers.NewAuthHandler(nil)
	r := chi.NewRouter()
	r.With(mw.RequireSession(testSecret)).Get("/api/session/nav", authHandler.Nav)

	rec := getWithToken(r, "/api/session/nav", tokenFor(t, domain.RoleStaff))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out struct {
		Role  domain.Role      `json:"role"`
		Links []domain.NavLink `json:"links"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Role != domain.RoleStaff {
		t.Errorf("role = %s", out.Role)
	}
	wantLinks := domain.LinksFor(domain.RoleStaff)
	if len(out.Links) != len(wantLinks) {
		t.Errorf("links = %+v, want %+v", out.Links, wantLinks)
	}
}
