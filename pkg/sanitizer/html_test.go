package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnhub/paymail/pkg/sanitizer"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script injection",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: "Hello",
		},
		{
			name:     "strips all HTML tags",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: "Hello world",
		},
		{
			name:     "strips event handlers",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: "",
		},
		{
			name:     "strips javascript URLs",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: "click",
		},
		{
			name:     "strips nested tags",
			input:    `<div><p>nested <span>content</span></p></div>`,
			expected: "nested content",
		},
		{
			name:     "handles plain text",
			input:    "Jane Doe",
			expected: "Jane Doe",
		},
		{
			name:     "keeps ampersands readable",
			input:    "Go & Rust Bootcamp",
			expected: "Go & Rust Bootcamp",
		},
		{
			name:     "keeps apostrophes readable",
			input:    "O'Brien",
			expected: "O'Brien",
		},
		{
			name:     "trims whitespace",
			input:    "  pay_123  ",
			expected: "pay_123",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}
