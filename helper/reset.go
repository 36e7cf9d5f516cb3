package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"time"

	"etickets/database"
	"etickets/model"

	"github.com/jordan-wright/email"
)

// NewPasswordResetToken mints and stores a one-hour reset token for the user.
func NewPasswordResetToken(userId uint) (*model.PasswordResetToken, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}

	token := &model.PasswordResetToken{
		UserId:    userId,
		Token:     hex.EncodeToString(raw),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := database.DB.Create(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}

// SendPasswordResetEmail mails the reset link. Async so the response does not
// wait on SMTP.
func SendPasswordResetEmail(to, token string) {
	go func() {
		resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_BASE_URL"), token)

		e := email.NewEmail()
		e.From = os.Getenv("SMTP_FROM")
		e.To = []string{to}
		e.Subject = "Reset your eTickets password"
		e.Text = []byte("We received a request to reset your password.\n\n" +
			"Open the link below within one hour to pick a new one:\n" + resetLink + "\n\n" +
			"If you did not ask for this, you can ignore this email.")

		addr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
		auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))
		if err := e.Send(addr, auth); err != nil {
			log.Printf("password reset email to %s failed: %v", to, err)
		}
	}()
}
