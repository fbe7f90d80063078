package handlers

import (
	"net/http"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/http/response"
	"github.com/minervatires/site-api/internal/service"
	"github.com/minervatires/site-api/pkg/logger"
)

// ReferenceHandler serves the contact card and weekly hours the pages
// render in their footer and "get in touch" sections.
type ReferenceHandler struct {
	svc service.ReferenceService
}

func NewReferenceHandler(svc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

type referencePayload struct {
	Success       bool                  `json:"success"`
	ContactInfo   *domain.ContactInfo   `json:"contact_info"`
	BusinessHours []domain.BusinessHour `json:"business_hours"`
	Error         string                `json:"error,omitempty"`
}

func (h *ReferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, hours, err := h.svc.ReferenceData(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "reference data fetch failed", "error", err)
		// The pages fall back to their built-in defaults on success:false.
		response.WriteJSON(w, http.StatusOK, referencePayload{
			Success: false,
			Error:   "Unable to load contact information",
		})
		return
	}

	response.WriteJSON(w, http.StatusOK, referencePayload{
		Success:       true,
		ContactInfo:   info,
		BusinessHours: hours,
	})
}
