package guard

import (
	"context"
	"regexp"
)

// secretsMask replaces recognized credential spans. Asterisks rather than a
// bracketed tag: secrets report under the single generic SECRETS category,
// so nothing is gained by naming the credential type in the output.
const secretsMask = "********"

// Pre-compiled secret patterns.
var secretPatterns = []struct {
	re     *regexp.Regexp
	detail string
}{
	// Private key blocks
	{regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----[\s\S]*?-----END (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`), "private key block"},
	{regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`), "private key header"},

	// AWS access key ID
	{regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`), "AWS access key"},

	// GitHub tokens (classic and fine-grained)
	{regexp.MustCompile(`\bghp_[A-Za-z0-9]{36}\b`), "GitHub token"},
	{regexp.MustCompile(`\bgithub_pat_[A-Za-z0-9_]{22,}\b`), "GitHub fine-grained token"},

	// Slack tokens
	{regexp.MustCompile(`\bxox[baprs]-[A-Za-z0-9-]{10,}\b`), "Slack token"},

	// Stripe keys
	{regexp.MustCompile(`\b[sr]k_live_[A-Za-z0-9]{20,}\b`), "Stripe live key"},

	// Generic assignment: api_key = "...", password: ..., secret=...
	{regexp.MustCompile(`(?i)\b(?:api[_-]?key|secret|token|passw(?:or)?d)\b\s*[:=]\s*['"]?[^\s'"]{6,}['"]?`), "credential assignment"},
}

// SecretsValidator scans text for credential material and masks each
// recognized span.
type SecretsValidator struct{}

func NewSecretsValidator() *SecretsValidator {
	return &SecretsValidator{}
}

func (v *SecretsValidator) Name() string {
	return "secrets"
}

func (v *SecretsValidator) Validate(ctx context.Context, text string) (*Outcome, error) {
	redacted := text
	failed := false

	for _, p := range secretPatterns {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if p.re.MatchString(redacted) {
			failed = true
			redacted = p.re.ReplaceAllString(redacted, secretsMask)
		}
	}

	return &Outcome{Failed: failed, Redacted: redacted}, nil
}
