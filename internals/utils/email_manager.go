package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"strings"
	"time"
)

// Notifier delivers a one-time code to a destination address. Delivery is
// best-effort and not transactionally linked to code creation, but a
// reported failure must fail the surrounding request.
type Notifier interface {
	SendOTP(toEmail string, code string, expiresIn time.Duration) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	AppName  string
}

// EmailManager is the SMTP-backed Notifier.
type EmailManager struct {
	Config *SMTPConfig
}

func NewEmailManager(config *SMTPConfig) *EmailManager {
	return &EmailManager{
		Config: config,
	}
}

// GenerateOTPCode returns a fixed-width 6-digit code drawn from crypto/rand.
func GenerateOTPCode() string {
	max := big.NewInt(1000000)
	n, _ := rand.Int(rand.Reader, max)
	return fmt.Sprintf("%06d", n.Int64())
}

// send handles the actual SMTP handshake and delivery.
func (em *EmailManager) send(toEmail string, subject string, body string) error {
	smtpAddr := fmt.Sprintf("%s:%d", em.Config.Host, em.Config.Port)

	// Headers per RFC 822; note the \r\n line endings and the blank line
	// separating headers from body
	headers := []string{
		fmt.Sprintf("From: %s", em.Config.User),
		fmt.Sprintf("To: %s", toEmail),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}

	message := strings.Join(headers, "\r\n")

	auth := smtp.PlainAuth("", em.Config.User, em.Config.Password, em.Config.Host)

	return smtp.SendMail(smtpAddr, auth, em.Config.User, []string{toEmail}, []byte(message))
}

// SendOTP delivers a verification code. The returned error is surfaced to
// the caller of the OTP request; failed delivery never silently succeeds.
func (em *EmailManager) SendOTP(toEmail string, code string, expiresIn time.Duration) error {
	subject := fmt.Sprintf("%s - Your Verification Code", em.Config.AppName)

	body := fmt.Sprintf(
		"Hello,\n\n"+
			"Use the verification code below to continue with %s:\n\n"+
			"Verification Code: %s\n\n"+
			"This code will expire in %d minutes. If you did not request it, you can safely ignore this email.\n\n"+
			"Best regards,\nThe %s Team",
		em.Config.AppName, code, int(expiresIn.Minutes()), em.Config.AppName)

	return em.send(toEmail, subject, body)
}
