package resend

// Config holds Resend email provider configuration.
// APIKey is usually left empty here and supplied per invocation.
type Config struct {
	APIKey      string `ignored:"true"`
	SenderEmail string `envconfig:"RESEND_FROM_EMAIL" default:"onboarding@resend.dev"`
	SenderName  string `envconfig:"RESEND_FROM_NAME" default:"Payments"`
	// BaseURL overrides https://api.resend.com, e.g. for a local mock.
	BaseURL string `envconfig:"RESEND_BASE_URL"`
}
