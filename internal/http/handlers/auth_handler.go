package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/http/middleware"
	"github.com/minervatires/site-api/internal/http/response"
	"github.com/minervatires/site-api/internal/service"
	"github.com/minervatires/site-api/pkg/logger"
)

// AuthHandler signs staff and admin accounts in and hands each session
// its role-specific navigation.
type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Failure(w, http.StatusBadRequest, "Invalid JSON data received")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Failure(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Failure(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.ErrorContext(r.Context(), "login failed", "error", err)
		response.Failure(w, http.StatusInternalServerError, "Server error occurred. Please try again later.")
		return
	}

	response.WriteJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

type navResponse struct {
	Role  domain.Role      `json:"role"`
	Links []domain.NavLink `json:"links"`
}

// Nav returns the navigation links for the caller's role. The mapping is
// total over roles; an unknown role in a stale token gets an empty menu.
func (h *AuthHandler) Nav(w http.ResponseWriter, r *http.Request) {
	claims := middleware.Claims(r)
	if claims == nil {
		response.Failure(w, http.StatusUnauthorized, "No session")
		return
	}

	response.WriteJSON(w, http.StatusOK, navResponse{
		Role:  claims.Role,
		Links: domain.LinksFor(claims.Role),
	})
}
