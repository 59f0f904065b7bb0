package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"campus-collab-backend/internal/logger"
)

// Mailer sends transactional email over SMTP
type Mailer struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	logger    *logger.Logger
}

// New creates a new mailer. An empty SMTP host disables sending.
func New(host string, port int, username, password, fromEmail string, log *logger.Logger) *Mailer {
	return &Mailer{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromEmail: fromEmail,
		logger:    log,
	}
}

// Enabled reports whether SMTP is configured
func (m *Mailer) Enabled() bool {
	return m.host != "" && m.fromEmail != ""
}

// SendOTP emails a verification code to a new account. When SMTP is not
// configured the send is skipped with a warning so local signups still work.
func (m *Mailer) SendOTP(toEmail, firstName, otp string) error {
	if !m.Enabled() {
		m.logger.WithField("to", toEmail).Warn("smtp not configured, skipping verification email")
		return nil
	}
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("empty recipient")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.fromEmail)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Verify Your Account")
	msg.SetBody("text/html", buildOTPBody(firstName, otp))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}

	m.logger.WithField("to", toEmail).Info("verification email sent")
	return nil
}

func buildOTPBody(firstName, otp string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8" />
<style>
  body { font-family: Arial, sans-serif; background: #f6f7fb; color: #1f2937; }
  .container { max-width: 520px; margin: 24px auto; background: #ffffff; border-radius: 12px; padding: 24px; border: 1px solid #e5e7eb; }
  .otp-code { font-size: 28px; font-weight: bold; letter-spacing: 3px; background: #f3f4f6; padding: 15px; border-radius: 8px; text-align: center; }
  .footer { text-align: center; font-size: 12px; color: #888; margin-top: 40px; }
</style>
</head>
<body>
  <div class="container">
    <h2>Thanks for Signing Up, %s!</h2>
    <p>Welcome! To complete your registration, please verify your account using the OTP code below:</p>
    <div class="otp-code">%s</div>
    <p>This code is valid for <strong>15 minutes</strong>. If you didn't request this, you can safely ignore this email.</p>
    <p>Thanks,<br>The Campus Collab Team</p>
    <div class="footer">&copy; 2025 Campus Collab. All rights reserved.</div>
  </div>
</body>
</html>`, firstName, otp)
}
