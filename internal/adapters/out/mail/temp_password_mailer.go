// internal/adapters/out/mail/temp_password_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"
)

// TempPasswordMailer sends the temporary password generated when an admin
// provisions an account. Implements usecase.TempPasswordMailer.
type TempPasswordMailer struct {
	client      EmailClient
	fromAddress string
}

func NewTempPasswordMailer(client EmailClient, fromAddress string) *TempPasswordMailer {
	return &TempPasswordMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
	}
}

func (m *TempPasswordMailer) SendTempPassword(ctx context.Context, toEmail, tempPassword string) error {
	subject := "Your Travelia account"

	body := fmt.Sprintf(
		`An administrator created a Travelia account for this address.

Temporary password: %s

Sign in with it and change your password right away.
`, tempPassword)

	return m.client.Send(ctx, m.fromAddress, toEmail, subject, body)
}
