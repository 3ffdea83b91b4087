package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through a transactional SMTP provider.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New builds a mailer for the given provider credentials. The user is also
// the fixed sender identity on every outgoing message.
func New(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

// Send composes and delivers one message with a single binary attachment.
// Blocking; the caller owns the request lifecycle.
func (m *SMTPMailer) Send(to, subject, body string, attachment []byte, filename string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Finance Tracker")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send to %q: %w", to, err)
	}
	return nil
}
