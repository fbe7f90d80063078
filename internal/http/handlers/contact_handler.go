package handlers

import (
	"net/http"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/http/middleware"
	"github.com/minervatires/site-api/internal/service"
	"github.com/minervatires/site-api/pkg/logger"
)

// ContactHandler accepts contact form inquiries. The form script expects
// a bare "success" or "failed" body, so failures carry no detail here.
type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")

	if err := r.ParseForm(); err != nil {
		w.Write([]byte("failed"))
		return
	}

	inquiry := domain.ContactInquiry{
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		InquiryType: r.PostFormValue("inquiry_type"),
		Message:     r.PostFormValue("message"),
	}

	if err := h.svc.Submit(r.Context(), &inquiry, middleware.ClientIP(r)); err != nil {
		logger.DebugContext(r.Context(), "contact inquiry rejected", "error", err)
		w.Write([]byte("failed"))
		return
	}

	w.Write([]byte("success"))
}
