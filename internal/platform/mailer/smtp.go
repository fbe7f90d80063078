package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPNotifier sends through a plain SMTP endpoint. The shop's previous
// site relayed through an SMTP submission port, so this stays the default
// transport; UseTLS covers implicit-TLS providers on 465.
type SMTPNotifier struct {
	Host   string
	Port   int
	From   string
	User   string
	Pass   string
	UseTLS bool
}

func NewSMTPNotifier(host string, port int, from, user, pass string, useTLS bool) *SMTPNotifier {
	return &SMTPNotifier{
		Host:   strings.TrimSpace(host),
		Port:   port,
		From:   strings.TrimSpace(from),
		User:   strings.TrimSpace(user),
		Pass:   strings.TrimSpace(pass),
		UseTLS: useTLS,
	}
}

func (s *SMTPNotifier) Send(toEmail, toName, subject, text string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	msg := s.message(toEmail, subject, text)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	// Local capture server (e.g. Mailpit on 1025): no auth, no TLS.
	if !s.UseTLS && s.User == "" {
		return smtp.SendMail(addr, nil, s.From, []string{toEmail}, msg)
	}

	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	// SendMail negotiates STARTTLS when the server advertises it.
	sendErr := smtp.SendMail(addr, auth, s.From, []string{toEmail}, msg)
	if sendErr == nil {
		return nil
	}
	if !s.UseTLS {
		return sendErr
	}

	// Implicit TLS fallback for port-465 style endpoints.
	tlsCfg := &tls.Config{ServerName: s.Host}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if s.User != "" {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(s.From); err != nil {
		return err
	}
	if err := c.Rcpt(toEmail); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

// message renders the outbound mail. Header-bound values have CR and LF
// stripped so form input cannot smuggle extra headers into the message.
func (s *SMTPNotifier) message(toEmail, subject, text string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", headerValue(s.From))
	fmt.Fprintf(&buf, "To: %s\r\n", headerValue(toEmail))
	fmt.Fprintf(&buf, "Subject: %s\r\n", headerValue(subject))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n", text)
	return buf.Bytes()
}

func headerValue(v string) string {
	v = strings.ReplaceAll(v, "\r", "")
	return strings.ReplaceAll(v, "\n", "")
}
