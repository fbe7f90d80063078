package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/platform/auth"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name     string
		claims   *auth.Claims
		required domain.Role
		want     error
	}{
		{"nil claims", nil, domain.RoleStaff, auth.ErrNoSession},
		{"exact match", &auth.Claims{Role: domain.RoleStaff}, domain.RoleStaff, nil},
		{"admin passes staff gate", &auth.Claims{Role: domain.RoleAdmin}, domain.RoleStaff, nil},
		{"admin passes admin gate", &auth.Claims{Role: domain.RoleAdmin}, domain.RoleAdmin, nil},
		{"customer denied staff gate", &auth.Claims{Role: domain.RoleCustomer}, domain.RoleStaff, auth.ErrDenied},
		{"staff denied admin gate", &auth.Claims{Role: domain.RoleStaff}, domain.RoleAdmin, auth.ErrDenied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := auth.Authorize(tc.claims, tc.required)
			if !errors.Is(err, tc.want) {
				t.Errorf("Authorize() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLinksForIsTotal(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleStaff, domain.RoleAdmin} {
		if len(domain.LinksFor(role)) == 0 {
			t.Errorf("LinksFor(%s) returned no links", role)
		}
	}
	if links := domain.LinksFor(domain.Role("ghost")); links != nil {
		t.Errorf("LinksFor(unknown) = %v, want nil", links)
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	token, err := auth.NewSessionToken(7, "staff@minervatires.test", domain.RoleStaff, secret, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}

	claims, err := auth.Parse(token, secret)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Sub != 7 || claims.Email != "staff@minervatires.test" || claims.Role != domain.RoleStaff {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := auth.Parse(token, "other-secret"); err == nil {
		t.Error("Parse with wrong secret succeeded")
	}
}
