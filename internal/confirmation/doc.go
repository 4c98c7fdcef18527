// Package confirmation sends payment confirmation emails.
//
// A POST with the payment details is decoded into a [Request]. The provider
// API key is then resolved, the embedded template rendered and the message
// submitted to Resend. The caller gets the provider's message id back. Every
// failure, whatever step it came from, is answered by [ErrorHandler] as
//
//	500 {"error": "Failed to send payment confirmation email", "details": "<cause>"}
//
// The service keeps no state between requests. Two identical requests send
// two emails.
package confirmation
