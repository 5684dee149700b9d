// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"
	"strings"

	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/google/uuid"

	httpin "travelia/internal/adapters/in/http"
	"travelia/internal/adapters/in/http/middleware"
	fs "travelia/internal/adapters/out/firestore"
	"travelia/internal/adapters/out/gcs"
	"travelia/internal/adapters/out/identity"
	"travelia/internal/adapters/out/mail"
	stripeout "travelia/internal/adapters/out/stripe"
	usecase "travelia/internal/application/usecase"
)

// Container wires repositories, adapters and usecases on top of Infra and
// produces the RouterDeps consumed by main.go.
type Container struct {
	Infra *Infra

	TourUC         *usecase.TourUsecase
	UserUC         *usecase.UserUsecase
	PaymentUC      *usecase.PaymentUsecase
	BookingUC      *usecase.BookingUsecase
	NotificationUC *usecase.NotificationUsecase

	Verifier middleware.TokenVerifier
}

// NewContainer builds the full object graph. Components whose backing
// service is missing are left nil and their routes stay unmounted.
func NewContainer(ctx context.Context, inf *Infra) *Container {
	c := &Container{Infra: inf}

	// ---- Firestore repositories ----
	tourRepo := fs.NewTourRepositoryFS(inf.Firestore)
	detailRepo := fs.NewTourDetailRepositoryFS(inf.Firestore)
	counterRepo := fs.NewCounterRepositoryFS(inf.Firestore)
	userRepo := fs.NewUserRepositoryFS(inf.Firestore)
	bookingRepo := fs.NewBookingRepositoryFS(inf.Firestore)
	notifRepo := fs.NewNotificationRepositoryFS(inf.Firestore)

	// ---- Tour images (GCS) ----
	images := gcs.NewTourImageRepositoryGCS(inf.GCS, inf.Config.TourImageBucket)
	if v := strings.TrimSpace(inf.Config.TourImagePublicBaseURL); v != "" {
		images.PublicBaseURL = v
	}

	c.TourUC = usecase.NewTourUsecase(tourRepo, detailRepo, counterRepo, images)
	c.BookingUC = usecase.NewBookingUsecase(bookingRepo)
	c.NotificationUC = usecase.NewNotificationUsecase(notifRepo)

	// ---- Users (needs Firebase Auth) ----
	if inf.FirebaseAuth != nil {
		ident := identity.NewFirebaseIdentity(inf.FirebaseAuth)

		var mailer usecase.TempPasswordMailer
		if key := strings.TrimSpace(inf.Config.SendGridAPIKey); key != "" {
			mailer = mail.NewTempPasswordMailer(mail.NewSendGridClient(key), inf.Config.MailFromAddress)
			log.Printf("[di] SendGrid temp-password mailer initialized")
		} else {
			log.Printf("[di] SENDGRID_API_KEY empty: temp-password mail disabled")
		}

		c.UserUC = usecase.NewUserUsecase(ident, userRepo, mailer, tempPassword)
		c.Verifier = &middleware.FirebaseVerifier{Auth: inf.FirebaseAuth}
	} else {
		log.Printf("[di] WARN: Firebase Auth unavailable: user routes and token-verified routes disabled")
	}

	// ---- Payments (Stripe) ----
	if key := c.resolveStripeKey(ctx); key != "" {
		c.PaymentUC = usecase.NewPaymentUsecase(tourRepo, stripeout.NewIntentClient(key))
		log.Printf("[di] Stripe payment intents initialized")
	} else {
		log.Printf("[di] WARN: no Stripe secret key resolved: payment routes disabled")
	}

	return c
}

// RouterDeps exposes the wired usecases in the shape the router expects.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		TourUC:         c.TourUC,
		UserUC:         c.UserUC,
		PaymentUC:      c.PaymentUC,
		BookingUC:      c.BookingUC,
		NotificationUC: c.NotificationUC,
		Verifier:       c.Verifier,
	}
}

// resolveStripeKey prefers STRIPE_SECRET_KEY; when unset it falls back to
// the latest version of the configured Secret Manager secret.
func (c *Container) resolveStripeKey(ctx context.Context) string {
	if key := strings.TrimSpace(c.Infra.Config.StripeSecretKey); key != "" {
		return key
	}
	if c.Infra.SecretManager == nil {
		return ""
	}

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest",
		c.Infra.ProjectID, c.Infra.Config.StripeSecretName)
	resp, err := c.Infra.SecretManager.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		log.Printf("[di] WARN: AccessSecretVersion failed (%s): %v", name, err)
		return ""
	}
	return strings.TrimSpace(string(resp.GetPayload().GetData()))
}

// tempPassword returns an 8-character random password for admin-provisioned
// accounts. The user is expected to change it on first sign-in.
func tempPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
