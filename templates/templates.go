// Package templates embeds the email templates shipped with the binary.
package templates

import "embed"

// PaymentConfirmation is the markdown template for payment confirmation emails.
const PaymentConfirmation = "payment_confirmation.md"

// FS holds the markdown templates at its root and the HTML layouts under layouts/.
//
//go:embed *.md layouts/*.html
var FS embed.FS
