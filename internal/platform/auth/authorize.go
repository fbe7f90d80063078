package auth

import (
	"errors"

	"github.com/minervatires/site-api/internal/domain"
)

var (
	ErrNoSession = errors.New("no session")
	ErrDenied    = errors.New("access denied")
)

// Authorize decides whether a session may reach an area gated by
// requiredRole. Admin passes every gate; staff areas admit staff and
// admin. The decision is pure: the caller supplies the parsed claims.
func Authorize(claims *Claims, requiredRole domain.Role) error {
	if claims == nil {
		return ErrNoSession
	}
	if claims.Role == domain.RoleAdmin {
		return nil
	}
	if claims.Role == requiredRole {
		return nil
	}
	return ErrDenied
}
