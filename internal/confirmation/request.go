package confirmation

import (
	"strconv"

	"github.com/learnhub/paymail/pkg/mailer"
	"github.com/learnhub/paymail/pkg/sanitizer"
)

// StatusConfirmed is the status label shown in every confirmation.
const StatusConfirmed = "Confirmed"

// Request is the inbound payment confirmation payload. Fields are not
// validated; missing values render as empty text.
type Request struct {
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Course    string  `json:"course"`
	Currency  string  `json:"currency"`
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
}

// Response is the success body.
type Response struct {
	Message string `json:"message"`
	EmailID string `json:"emailId"`
}

// CurrencySymbol maps "USD" to "$" and every other code to "₹".
// The match is exact and case-sensitive.
func CurrencySymbol(currency string) string {
	if currency == "USD" {
		return "$"
	}
	return "₹"
}

// FormatAmount prints the shortest decimal form: 100 -> "100", 12.5 -> "12.5".
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// emailData is what the template sees. Text values are tag-stripped here
// and markdown-escaped by the template's md function.
type emailData struct {
	Name         string
	Course       string
	Symbol       string
	Amount       string
	PaymentID    string
	Status       string
	DashboardURL string
}

func newEmailData(req Request, dashboardURL string) emailData {
	return emailData{
		Name:         sanitizer.StripTags(req.Name),
		Course:       sanitizer.StripTags(req.Course),
		Symbol:       CurrencySymbol(req.Currency),
		Amount:       FormatAmount(req.Amount),
		PaymentID:    sanitizer.StripTags(req.PaymentID),
		Status:       StatusConfirmed,
		DashboardURL: dashboardURL,
	}
}

// subject is plain text, so it uses the stripped values without markdown
// escaping, folded onto one line.
func (d emailData) subject() string {
	return mailer.SingleLine("Payment Confirmation: " + d.Course + " - " + d.Name)
}
