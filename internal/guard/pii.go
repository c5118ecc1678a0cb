package guard

import (
	"context"
	"regexp"
)

// Pre-compiled PII patterns — high precision, targeted per entity type.
// Order matters: longer digit runs (credit cards) must be masked before the
// generic bank-number pattern gets a chance to eat them.
var piiEntities = []struct {
	re          *regexp.Regexp
	placeholder string
}{
	// Email addresses
	{regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`), "<EMAIL_ADDRESS>"},

	// Credit card numbers (Visa, MC, Amex, Discover — with optional spaces/dashes)
	// Visa: 4xxx
	{regexp.MustCompile(`\b4\d{3}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`), "<CREDIT_CARD>"},
	// Mastercard: 5[1-5]xx
	{regexp.MustCompile(`\b5[1-5]\d{2}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`), "<CREDIT_CARD>"},
	// Amex: 3[47]xx
	{regexp.MustCompile(`\b3[47]\d{2}[-\s]?\d{6}[-\s]?\d{5}\b`), "<CREDIT_CARD>"},
	// Discover: 6011
	{regexp.MustCompile(`\b6011[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`), "<CREDIT_CARD>"},

	// US passport: letter followed by 8 digits
	{regexp.MustCompile(`\b[A-Z]\d{8}\b`), "<US_PASSPORT>"},

	// US driver's license: letter followed by 7 digits (CA-style)
	{regexp.MustCompile(`\b[A-Z]\d{7}\b`), "<US_DRIVER_LICENSE>"},

	// Phone numbers (US formats)
	// (123) 456-7890 or 123-456-7890 or +1-123-456-7890
	{regexp.MustCompile(`(\+1[-\s]?)?\(?\d{3}\)?[-\s.]?\d{3}[-\s.]?\d{4}\b`), "<PHONE_NUMBER>"},

	// Bank account numbers: bare 8-17 digit runs. Runs after the card and
	// phone patterns so only leftovers match.
	{regexp.MustCompile(`\b\d{8,17}\b`), "<US_BANK_NUMBER>"},
}

// PIIValidator scans text for personally identifiable information and
// redacts each recognized span with its entity placeholder.
type PIIValidator struct{}

func NewPIIValidator() *PIIValidator {
	return &PIIValidator{}
}

func (v *PIIValidator) Name() string {
	return "pii"
}

func (v *PIIValidator) Validate(ctx context.Context, text string) (*Outcome, error) {
	redacted := text
	failed := false

	for _, e := range piiEntities {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if e.re.MatchString(redacted) {
			failed = true
			redacted = e.re.ReplaceAllString(redacted, e.placeholder)
		}
	}

	return &Outcome{Failed: failed, Redacted: redacted}, nil
}
