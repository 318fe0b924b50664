package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fixly/middleware"
	"fixly/models"
	"fixly/utils"

	"github.com/gin-gonic/gin"
)

// stubBookingService returns canned results so the handler layer can be
// exercised without repositories.
type stubBookingService struct {
	detail *models.BookingDetail
	err    error

	gotActor  string
	gotTarget string
}

func (s *stubBookingService) Create(ctx context.Context, customerID string, input models.CreateBookingInput) (*models.BookingDetail, error) {
	s.gotActor = customerID
	return s.detail, s.err
}

func (s *stubBookingService) Transition(ctx context.Context, bookingID, actorID, targetStatus string) (*models.BookingDetail, error) {
	s.gotActor = actorID
	s.gotTarget = targetStatus
	return s.detail, s.err
}

func (s *stubBookingService) Cancel(ctx context.Context, bookingID, actorID string) (*models.BookingDetail, error) {
	s.gotActor = actorID
	return s.detail, s.err
}

func (s *stubBookingService) ListMine(ctx context.Context, actorID, actorRole string) ([]models.BookingDetail, error) {
	s.gotActor = actorID
	if s.err != nil {
		return nil, s.err
	}
	return []models.BookingDetail{*s.detail}, nil
}

func (s *stubBookingService) GetOne(ctx context.Context, bookingID, actorID string) (*models.BookingDetail, error) {
	s.gotActor = actorID
	return s.detail, s.err
}

func newBookingRouter(stub *stubBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(stub)

	r := gin.New()
	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, "cust-1")
		c.Set(middleware.CtxUserRole, models.RoleCustomer)
	})
	r.POST("/api/bookings", h.CreateBookingHandler)
	r.PATCH("/api/bookings/:id/status", h.UpdateStatusHandler)
	r.PATCH("/api/bookings/:id/cancel", h.CancelBookingHandler)
	return r
}

func TestCreateBookingReturns201(t *testing.T) {
	stub := &stubBookingService{detail: &models.BookingDetail{
		Booking: models.Booking{ID: "bkg-1", Status: models.StatusPending},
	}}
	r := newBookingRouter(stub)

	body := `{"scheduledDate":"2026-09-15","scheduledTime":"14:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if stub.gotActor != "cust-1" {
		t.Fatalf("actor identity not forwarded, got %q", stub.gotActor)
	}

	var resp models.BookingDetail
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response should decode: %v", err)
	}
	if resp.ID != "bkg-1" || resp.Status != models.StatusPending {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateBookingRejectsMissingSchedule(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateStatusMapsServiceErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{utils.NewServiceError(utils.CodeNotFound, "Booking not found"), http.StatusNotFound},
		{utils.NewServiceError(utils.CodeForbidden, "Not authorized to update this booking"), http.StatusForbidden},
		{utils.NewServiceError(utils.CodeInvalidTransition, "Invalid status transition"), http.StatusBadRequest},
		{utils.NewServiceError(utils.CodeConflict, "Booking was modified concurrently, retry with its current status"), http.StatusConflict},
	}

	for _, tc := range cases {
		stub := &stubBookingService{err: tc.err}
		r := newBookingRouter(stub)

		req := httptest.NewRequest(http.MethodPatch, "/api/bookings/bkg-1/status",
			strings.NewReader(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
		}
		se, _ := utils.AsServiceError(tc.err)
		var resp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("error body should decode: %v", err)
		}
		if resp.Message != se.Message {
			t.Fatalf("expected message %q, got %q", se.Message, resp.Message)
		}
	}
}

func TestCancelBookingForwardsActor(t *testing.T) {
	stub := &stubBookingService{detail: &models.BookingDetail{
		Booking: models.Booking{ID: "bkg-1", Status: models.StatusCancelled},
	}}
	r := newBookingRouter(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/bkg-1/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if stub.gotActor != "cust-1" {
		t.Fatalf("actor identity not forwarded, got %q", stub.gotActor)
	}
}
