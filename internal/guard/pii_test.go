package guard

import (
	"context"
	"strings"
	"testing"
)

func TestPIIValidator_TruePositives(t *testing.T) {
	v := NewPIIValidator()
	ctx := context.Background()

	tests := []struct {
		name        string
		text        string
		placeholder string
		gone        string
	}{
		{"email simple", "Contact me at john.doe@example.com", "<EMAIL_ADDRESS>", "john.doe@example.com"},
		{"email with plus", "Email: user+tag@company.org", "<EMAIL_ADDRESS>", "user+tag@company.org"},
		{"Visa", "Card number: 4111-1111-1111-1111", "<CREDIT_CARD>", "4111-1111-1111-1111"},
		{"Visa no dashes", "4111111111111111", "<CREDIT_CARD>", "4111111111111111"},
		{"Mastercard", "5500-0000-0000-0004", "<CREDIT_CARD>", "5500"},
		{"Amex", "3782-822463-10005", "<CREDIT_CARD>", "3782"},
		{"Discover", "6011-0000-0000-0004", "<CREDIT_CARD>", "6011"},
		{"US phone with parens", "Call me at (555) 123-4567", "<PHONE_NUMBER>", "123-4567"},
		{"US phone with country code", "+1-555-123-4567", "<PHONE_NUMBER>", "555"},
		{"passport", "Passport C03005988 attached", "<US_PASSPORT>", "C03005988"},
		{"driver license", "License D1234567 on file", "<US_DRIVER_LICENSE>", "D1234567"},
		{"bank number", "Account 987654321 closed", "<US_BANK_NUMBER>", "987654321"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := v.Validate(ctx, tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.Failed {
				t.Errorf("expected failed=true for text: %s", tt.text)
			}
			if !strings.Contains(out.Redacted, tt.placeholder) {
				t.Errorf("expected %s in redacted output, got: %s", tt.placeholder, out.Redacted)
			}
			if strings.Contains(out.Redacted, tt.gone) {
				t.Errorf("expected %q to be masked, got: %s", tt.gone, out.Redacted)
			}
		})
	}
}

func TestPIIValidator_TrueNegatives(t *testing.T) {
	v := NewPIIValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		text string
	}{
		{"normal text", "The weather today is sunny and warm"},
		{"short number", "Order #12345"},
		{"year", "Founded in 2024"},
		{"empty", ""},
		{"already redacted", "Contact me at <EMAIL_ADDRESS> or <PHONE_NUMBER>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := v.Validate(ctx, tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Failed {
				t.Errorf("expected failed=false for text %q, redacted: %s", tt.text, out.Redacted)
			}
			if out.Redacted != tt.text {
				t.Errorf("expected text unchanged, got: %s", out.Redacted)
			}
		})
	}
}

func TestPIIValidator_MultipleOccurrences(t *testing.T) {
	v := NewPIIValidator()

	out, err := v.Validate(context.Background(), "alice@example.com wrote to bob@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Failed {
		t.Fatal("expected failed=true")
	}
	if got := strings.Count(out.Redacted, "<EMAIL_ADDRESS>"); got != 2 {
		t.Errorf("expected 2 placeholders, got %d in: %s", got, out.Redacted)
	}
}
