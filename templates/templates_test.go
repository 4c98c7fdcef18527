package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/paymail/pkg/mailer"
	"github.com/learnhub/paymail/templates"
)

type confirmationData struct {
	Name         string
	Course       string
	Symbol       string
	Amount       string
	PaymentID    string
	Status       string
	DashboardURL string
}

func TestPaymentConfirmation(t *testing.T) {
	t.Parallel()

	r := mailer.NewRenderer(templates.FS)

	t.Run("renders payment details into the layout", func(t *testing.T) {
		t.Parallel()
		res, err := r.Render("base.html", templates.PaymentConfirmation, confirmationData{
			Name:      "Asha",
			Course:    "Go Fundamentals",
			Symbol:    "$",
			Amount:    "100",
			PaymentID: "pay_123",
			Status:    "Confirmed",
		})
		require.NoError(t, err)

		assert.Contains(t, res.HTML, "<!DOCTYPE html>")
		assert.Contains(t, res.HTML, "<title>Payment Confirmed</title>")
		assert.Contains(t, res.HTML, "Dear Asha,")
		assert.Contains(t, res.HTML, "<strong>Amount:</strong> $100")
		assert.Contains(t, res.HTML, "<strong>Payment ID:</strong> pay_123")
		assert.Contains(t, res.HTML, "<strong>Status:</strong> Confirmed")
		assert.NotContains(t, res.HTML, `class="btn"`)
		assert.Contains(t, res.Text, "Go Fundamentals")
	})

	t.Run("dashboard button is optional", func(t *testing.T) {
		t.Parallel()
		res, err := r.Render("base.html", templates.PaymentConfirmation, confirmationData{
			Name:         "Ravi",
			Course:       "Data Structures",
			Symbol:       "₹",
			Amount:       "500",
			PaymentID:    "pay_456",
			Status:       "Confirmed",
			DashboardURL: "https://learn.example/dashboard",
		})
		require.NoError(t, err)

		assert.Contains(t, res.HTML, "₹500")
		assert.Contains(t, res.HTML, `href="https://learn.example/dashboard"`)
		assert.Contains(t, res.HTML, `class="btn"`)
	})

	t.Run("escaped markdown stays literal", func(t *testing.T) {
		t.Parallel()
		res, err := r.Render("base.html", templates.PaymentConfirmation, confirmationData{
			Name:      "**bold** _x_",
			Course:    "C",
			Symbol:    "$",
			Amount:    "1",
			PaymentID: "p",
			Status:    "Confirmed",
		})
		require.NoError(t, err)

		assert.Contains(t, res.HTML, "Dear **bold** _x_,")
		assert.NotContains(t, res.HTML, "<strong>bold</strong>")
	})
}
