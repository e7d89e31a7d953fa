package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestPhone11Validation(t *testing.T) {
	type P struct {
		Phone string `validate:"phone11"`
	}
	cv := NewValidator()

	for _, s := range []string{"09123456789", "09876543210"} {
		if err := cv.Validate(P{Phone: s}); err != nil {
			t.Fatalf("expected valid phone11 for %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{
		"",              // empty
		"9123456789",    // no leading zero
		"0912345678",    // 10 digits
		"091234567890",  // 12 digits
		"+989123456789", // not normalized
		"0912345678a",   // non-digit
	} {
		err := cv.Validate(P{Phone: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Phone", "normalized 11-digit") {
			t.Fatalf("expected phone11 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDataURLValidation(t *testing.T) {
	type P struct {
		URL string `validate:"dataurl"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{URL: "data:image/png;base64,AAAA"}); err != nil {
		t.Fatalf("expected valid dataurl, got: %v", err)
	}

	for _, s := range []string{"", "https://example.com/x.png", "base64,AAAA"} {
		err := cv.Validate(P{URL: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "URL", "data URL") {
			t.Fatalf("expected dataurl message for %q, got: %+v", s, fe)
		}
	}
}

func TestPlatformValidation(t *testing.T) {
	type P struct {
		Platform string `validate:"platform"`
	}
	cv := NewValidator()

	for _, s := range []string{"sms", "whatsapp", "telegram"} {
		if err := cv.Validate(P{Platform: s}); err != nil {
			t.Fatalf("expected valid platform %q, got: %v", s, err)
		}
	}
	for _, s := range []string{"", "email", "SMS"} {
		err := cv.Validate(P{Platform: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Platform", "sms, whatsapp, telegram") {
			t.Fatalf("expected platform message for %q, got: %+v", s, fe)
		}
	}
}

func TestRequiredMapping(t *testing.T) {
	type P struct {
		Name string `validate:"required"`
	}
	cv := NewValidator()

	err := cv.Validate(P{})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
