package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/platform/mailer"
	"github.com/minervatires/site-api/pkg/logger"
)

// ContactService validates contact inquiries and forwards them to the
// shop inbox through the notifier. Inquiries are never persisted.
type ContactService interface {
	Submit(ctx context.Context, inquiry *domain.ContactInquiry, clientIP string) error
}

type contactService struct {
	notifier  mailer.Notifier
	shopInbox string
	now       func() time.Time
}

func NewContactService(notifier mailer.Notifier, shopInbox string) ContactService {
	return &contactService{
		notifier:  notifier,
		shopInbox: shopInbox,
		now:       time.Now,
	}
}

func (s *contactService) Submit(ctx context.Context, inquiry *domain.ContactInquiry, clientIP string) error {
	in := domain.ContactInquiry{
		Name:        strings.TrimSpace(inquiry.Name),
		Email:       strings.TrimSpace(inquiry.Email),
		Phone:       strings.TrimSpace(inquiry.Phone),
		InquiryType: strings.TrimSpace(inquiry.InquiryType),
		Message:     strings.TrimSpace(inquiry.Message),
	}

	var violations []string
	for _, f := range []struct{ field, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"inquiry_type", in.InquiryType},
		{"message", in.Message},
	} {
		if f.value == "" {
			violations = append(violations, fmt.Sprintf("Field '%s' is required", f.field))
		}
	}
	if in.Email != "" && !emailFormat.MatchString(in.Email) {
		violations = append(violations, "Invalid email format")
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	subject := "New Contact Form Inquiry: " + ucfirst(in.InquiryType)

	var body strings.Builder
	body.WriteString("You have received a new contact form submission:\n\n")
	fmt.Fprintf(&body, "Name: %s\n", in.Name)
	fmt.Fprintf(&body, "Email: %s\n", in.Email)
	if in.Phone != "" {
		fmt.Fprintf(&body, "Phone: %s\n", in.Phone)
	}
	fmt.Fprintf(&body, "Inquiry Type: %s\n\n", ucfirst(in.InquiryType))
	fmt.Fprintf(&body, "Message:\n%s\n\n", in.Message)
	body.WriteString("---\n")
	fmt.Fprintf(&body, "Submitted on: %s\n", s.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&body, "IP Address: %s\n", clientIP)

	if err := s.notifier.Send(s.shopInbox, "Minerva Tires", subject, body.String()); err != nil {
		logger.ErrorContext(ctx, "contact inquiry email failed", "error", err, "inquiry_type", in.InquiryType)
		return fmt.Errorf("send inquiry: %w", err)
	}
	return nil
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
