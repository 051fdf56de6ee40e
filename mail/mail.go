package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends transactional mail. The auth flow uses it for password
// reset codes.
type Mailer interface {
	SendResetPasswordEmail(to, code string) error
}

// SMTPMailer delivers through a plain SMTP account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, user, pass), from: user}
}

func (m *SMTPMailer) SendResetPasswordEmail(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset Code")
	msg.SetBody("text/plain", fmt.Sprintf("Your password reset code is: %s", code))
	return m.dialer.DialAndSend(msg)
}
