package mailer

// Config holds mailer configuration.
// Embed this in the app config; fields are read with kelseyhightower/envconfig.
type Config struct {
	FallbackSubject string `envconfig:"MAILER_FALLBACK_SUBJECT" default:"Notification"`
	DefaultLayout   string `envconfig:"MAILER_DEFAULT_LAYOUT" default:"base.html"`

	// ButtonStyle is inlined on [!button|...] links for clients that drop <style>.
	ButtonStyle string `envconfig:"MAILER_BUTTON_STYLE"`
}
