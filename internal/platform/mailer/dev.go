package mailer

import "github.com/minervatires/site-api/pkg/logger"

// DevNotifier logs mail instead of sending it. Used when EMAIL_DEV_MODE
// is set so local form submissions never leave the machine.
type DevNotifier struct{}

func NewDevNotifier() *DevNotifier {
	return &DevNotifier{}
}

func (d *DevNotifier) Send(toEmail, toName, subject, text string) error {
	logger.Info("dev mailer: email not sent",
		"to", toEmail,
		"subject", subject,
		"body", text,
	)
	return nil
}
