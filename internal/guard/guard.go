// Package guard screens text for PII and secrets through a chained pair of
// validators and reports category tags extracted from the redacted output.
package guard

import (
	"context"
	"regexp"

	"go.uber.org/zap"
)

// categoryRe matches bracketed uppercase placeholder tags in redacted text,
// e.g. <EMAIL_ADDRESS>.
var categoryRe = regexp.MustCompile(`<([A-Z_]+)>`)

// Step records how one validator step of a screen concluded and which
// category tags it contributed.
type Step struct {
	Status StepStatus
	Tags   []string
}

// Result is the outcome of screening one text.
type Result struct {
	HasPII     bool
	HasSecrets bool
	Sanitized  string
	PII        Step
	Secrets    Step
}

// Detections returns every category tag in step order, including the
// diagnostic pseudo-tags appended for errored validators.
func (r *Result) Detections() []string {
	tags := make([]string, 0, len(r.PII.Tags)+len(r.Secrets.Tags))
	tags = append(tags, r.PII.Tags...)
	tags = append(tags, r.Secrets.Tags...)
	return tags
}

// Categories returns category tags from steps that genuinely detected
// content, leaving out anything contributed by an errored validator.
func (r *Result) Categories() []string {
	var tags []string
	if r.PII.Status == StepDetected {
		tags = append(tags, r.PII.Tags...)
	}
	if r.Secrets.Status == StepDetected {
		tags = append(tags, r.Secrets.Tags...)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags
}

// Guard chains a PII validator and a secrets validator. The secrets
// validator always sees the PII-sanitized text, never the original.
type Guard struct {
	pii     Validator
	secrets Validator
	logger  *zap.Logger
}

// New creates a Guard with the given validators.
func New(pii, secrets Validator, logger *zap.Logger) *Guard {
	return &Guard{pii: pii, secrets: secrets, logger: logger}
}

// Screen runs the validator chain against text. A validator call error is
// fail-open: the category is reported as found, a diagnostic pseudo-tag is
// appended, and the error never reaches the caller. Sanitized always
// reflects the last successful redaction step; if both validators error it
// equals the input unmodified.
func (g *Guard) Screen(ctx context.Context, text string) *Result {
	r := &Result{Sanitized: text}

	out, err := g.pii.Validate(ctx, text)
	switch {
	case err != nil:
		g.logger.Warn("pii validator error", zap.Error(err))
		r.HasPII = true
		r.PII = Step{Status: StepErrored, Tags: []string{"PII error: " + err.Error()}}
	case out.Failed:
		r.HasPII = true
		r.Sanitized = out.Redacted
		tags := extractCategories(r.Sanitized)
		if len(tags) == 0 {
			tags = []string{"PII"}
		}
		r.PII = Step{Status: StepDetected, Tags: tags}
	}

	out, err = g.secrets.Validate(ctx, r.Sanitized)
	switch {
	case err != nil:
		g.logger.Warn("secrets validator error", zap.Error(err))
		r.HasSecrets = true
		r.Secrets = Step{Status: StepErrored, Tags: []string{"Secrets error: " + err.Error()}}
	case out.Failed:
		r.HasSecrets = true
		r.Sanitized = out.Redacted
		r.Secrets = Step{Status: StepDetected, Tags: []string{"SECRETS"}}
	}

	return r
}

// extractCategories pulls deduplicated placeholder tags out of redacted
// text, preserving first-seen order.
func extractCategories(sanitized string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, m := range categoryRe.FindAllStringSubmatch(sanitized, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			tags = append(tags, m[1])
		}
	}
	return tags
}
