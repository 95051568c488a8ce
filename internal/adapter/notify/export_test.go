package notify

import "net/smtp"

// SetSendFunc replaces the SMTP transport for tests.
func (s *SMTPSender) SetSendFunc(fn func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) {
	s.send = fn
}
