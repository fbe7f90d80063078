package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/http/response"
	"github.com/minervatires/site-api/internal/service"
	"github.com/minervatires/site-api/pkg/logger"
)

// BookingHandler accepts appointment submissions from the booking form.
type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Failure(w, http.StatusBadRequest, "Invalid JSON data received")
		return
	}
	if req == (domain.BookingRequest{}) {
		response.Failure(w, http.StatusBadRequest, "No data received")
		return
	}

	id, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			response.Failure(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, service.ErrDuplicateBooking):
			response.Failure(w, http.StatusBadRequest, "A booking with the same details already exists")
		default:
			// Storage detail stays in the logs; the caller sees a
			// generic failure.
			logger.ErrorContext(r.Context(), "booking submission failed", "error", err)
			response.Failure(w, http.StatusInternalServerError, "Server error occurred. Please try again later.")
		}
		return
	}

	response.WriteJSON(w, http.StatusCreated, response.Result{
		Success:   true,
		Message:   "Booking created successfully",
		BookingID: id,
	})
}
