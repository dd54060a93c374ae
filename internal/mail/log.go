package mail

import "log"

// LogMailer writes codes and tokens to the process log instead of sending
// mail. Used in local development when SMTP is not configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (mailer *LogMailer) SendVerification(email string, code string) error {
	log.Printf("mail (dev): verification code for %s: %s", email, code)
	return nil
}

func (mailer *LogMailer) SendPasswordReset(email string, token string) error {
	log.Printf("mail (dev): password reset token for %s: %s", email, token)
	return nil
}
