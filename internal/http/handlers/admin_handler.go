package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/http/response"
	"github.com/minervatires/site-api/internal/service"
	"github.com/minervatires/site-api/pkg/logger"
)

// AdminHandler backs the staff tracker and admin dashboard pages:
// listing appointments and moving them through their statuses.
type AdminHandler struct {
	svc service.BookingService
}

func NewAdminHandler(svc service.BookingService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type bookingListResponse struct {
	Success  bool             `json:"success"`
	Bookings []domain.Booking `json:"bookings"`
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.BookingFilter{Limit: 20}

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := domain.ParseBookingStatus(raw)
		if !ok {
			response.Failure(w, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filter.Status = &status
	}

	bookings, err := h.svc.List(r.Context(), filter)
	if err != nil {
		logger.ErrorContext(r.Context(), "booking list failed", "error", err)
		response.Failure(w, http.StatusInternalServerError, "Server error occurred. Please try again later.")
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	response.WriteJSON(w, http.StatusOK, bookingListResponse{Success: true, Bookings: bookings})
}

func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Failure(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := h.svc.Get(r.Context(), id)
	if err != nil {
		logger.ErrorContext(r.Context(), "booking fetch failed", "error", err, "booking_id", id)
		response.Failure(w, http.StatusInternalServerError, "Server error occurred. Please try again later.")
		return
	}
	if booking == nil {
		response.Failure(w, http.StatusNotFound, "Booking not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, booking)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Failure(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Failure(w, http.StatusBadRequest, "Invalid JSON data received")
		return
	}

	status, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		response.Failure(w, http.StatusBadRequest, "Invalid status")
		return
	}

	updated, err := h.svc.SetStatus(r.Context(), id, status)
	if err != nil {
		logger.ErrorContext(r.Context(), "status update failed", "error", err, "booking_id", id)
		response.Failure(w, http.StatusInternalServerError, "Server error occurred. Please try again later.")
		return
	}
	if !updated {
		response.Failure(w, http.StatusNotFound, "Booking not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Result{Success: true, Message: "Status updated"})
}
