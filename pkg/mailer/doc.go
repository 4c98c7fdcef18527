// Package mailer renders transactional emails and hands them to a provider.
//
// Sending is split from rendering so the provider can change without touching
// templates:
//
//   - Sender: implemented by providers (see package resend); returns the
//     provider-assigned message ID
//   - Renderer: markdown template with YAML front matter, converted with
//     goldmark and wrapped in an html/template layout
//   - Mailer: combines both
//
// # Usage
//
//	renderer := mailer.NewRenderer(templates.FS)
//	m := mailer.New(sender, renderer, mailer.Config{
//		FallbackSubject: "Notification",
//		DefaultLayout:   "base.html",
//	})
//
//	id, err := m.Send(ctx, mailer.SendParams{
//		To:       "student@example.com",
//		Template: "payment_confirmation.md",
//		Data:     data,
//	})
//
// # Templates
//
// Templates are markdown files with optional front matter:
//
//	---
//	Title: Payment Confirmation
//	---
//
//	Hi {{md .Name}},
//
//	**Amount:** {{.Symbol}}{{.Amount}}
//
//	[!button|Open dashboard]({{.DashboardURL}})
//
// The md function escapes markdown syntax in untrusted values. Raw HTML inside
// markdown is never rendered. The layout receives Content (rendered HTML),
// Metadata (front matter) and Data (the value passed to Send).
//
// # Errors
//
// Sentinel errors mark the failing stage (ErrNoRecipient, ErrRenderFailed,
// ErrSendFailed, ...). Providers report non-2xx answers as *ProviderError,
// which survives wrapping and can be extracted with AsProviderError.
package mailer
