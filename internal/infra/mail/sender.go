package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Sender struct {
	Host     string
	Port     int
	User     string
	Password string
}

func NewSender(host string, port int, user, password string) *Sender {
	return &Sender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// Send delivers a single plain-text message over an authenticated STARTTLS
// session. Any failure here is recoverable from the caller's point of view.
func (s *Sender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
