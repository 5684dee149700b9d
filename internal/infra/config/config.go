// internal/infra/config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment-derived settings for the service.
type Config struct {
	Port string

	// GCP / Firestore / Firebase
	ProjectID                string
	FirestoreCredentialsFile string
	GCPCreds                 string

	// Tour image storage
	TourImageBucket        string
	TourImagePublicBaseURL string

	// Stripe: env key wins; otherwise the Secret Manager secret name is used.
	StripeSecretKey  string
	StripeSecretName string

	// SendGrid (optional; temp-password mail is skipped when empty)
	SendGridAPIKey  string
	MailFromAddress string

	// CORS
	AllowOrigin string
}

// Load reads the environment (after a best-effort .env load) and returns a Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		ProjectID:                resolveProjectID(),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		TourImageBucket:        os.Getenv("TOUR_IMAGE_BUCKET"),
		TourImagePublicBaseURL: os.Getenv("TOUR_IMAGE_PUBLIC_BASE_URL"),

		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		StripeSecretName: getenvDefault("STRIPE_SECRET_NAME", "stripe-secret-key"),

		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		MailFromAddress: getenvDefault("MAIL_FROM_ADDRESS", "no-reply@travelia.app"),

		AllowOrigin: getenvDefault("CORS_ALLOW_ORIGIN", "*"),
	}
}

func resolveProjectID() string {
	// Priority:
	// 1) FIRESTORE_PROJECT_ID
	// 2) GCP_PROJECT_ID
	// 3) GOOGLE_CLOUD_PROJECT (set in Cloud Run)
	// 4) FIREBASE_PROJECT_ID
	for _, k := range []string{
		"FIRESTORE_PROJECT_ID",
		"GCP_PROJECT_ID",
		"GOOGLE_CLOUD_PROJECT",
		"FIREBASE_PROJECT_ID",
	} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
