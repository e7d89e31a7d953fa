package share

import (
	"strings"
	"testing"
)

func TestLink_SMS(t *testing.T) {
	link := Link(SMS, "09123456789", "hello world")
	if !strings.HasPrefix(link, "sms:09123456789?body=") {
		t.Fatalf("link = %q", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("body not encoded: %q", link)
	}
}

func TestLink_WhatsAppStripsNonDigits(t *testing.T) {
	link := Link(WhatsApp, "+98 912-345-6789", "x")
	if !strings.HasPrefix(link, "https://wa.me/989123456789?text=") {
		t.Fatalf("link = %q", link)
	}
}

func TestLink_Telegram(t *testing.T) {
	link := Link(Telegram, "09123456789", "x")
	if !strings.HasPrefix(link, "https://t.me/share/url?url=") {
		t.Fatalf("link = %q", link)
	}
}

func TestLink_UnknownPlatform(t *testing.T) {
	if got := Link(Platform("email"), "1", "x"); got != "" {
		t.Fatalf("expected empty link, got %q", got)
	}
}

func TestCredentialsMessage(t *testing.T) {
	msg := CredentialsMessage("علی احمدی", "09123456789", "Xy23abcd", "https://loan-app.com/login")
	for _, want := range []string{"علی احمدی", "09123456789", "Xy23abcd", "https://loan-app.com/login"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}

	// Without a login URL the line is omitted entirely.
	msg = CredentialsMessage("x", "y", "z", "")
	if strings.Contains(msg, "لینک ورود") {
		t.Errorf("unexpected login link line: %q", msg)
	}
}
