package mailer

// Notifier delivers outbound mail. Implementations report acceptance
// only; callers never surface transport detail to site visitors.
type Notifier interface {
	Send(toEmail, toName, subject, text string) error
}
