// Package share builds the outbound deep links used to hand freshly
// generated credentials to agents and customers. Nothing is sent from
// here; the links open the user's own SMS/WhatsApp/Telegram client.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

type Platform string

const (
	SMS      Platform = "sms"
	WhatsApp Platform = "whatsapp"
	Telegram Platform = "telegram"
)

const defaultSiteURL = "https://loan-app.com"

// CredentialsMessage renders the plaintext message embedding the
// recipient's login credentials. loginURL may be empty (admin → agent
// messages omit it).
func CredentialsMessage(name, phone, password, loginURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "سلام %s عزیز،\n\n", name)
	b.WriteString("اطلاعات ورود شما به سیستم لون‌فلو:\n")
	fmt.Fprintf(&b, "شماره تلفن: %s\n", phone)
	fmt.Fprintf(&b, "رمز عبور: %s\n", password)
	if loginURL != "" {
		fmt.Fprintf(&b, "لینک ورود: %s\n", loginURL)
	}
	b.WriteString("\nلطفا از این اطلاعات برای ورود به سیستم استفاده کنید.")
	return b.String()
}

// Link builds the platform-specific deep link carrying message to phone.
func Link(platform Platform, phone, message string) string {
	encoded := url.QueryEscape(message)
	switch platform {
	case SMS:
		return "sms:" + phone + "?body=" + encoded
	case WhatsApp:
		return "https://wa.me/" + digitsOnly(phone) + "?text=" + encoded
	case Telegram:
		return "https://t.me/share/url?url=" + url.QueryEscape(defaultSiteURL) + "&text=" + encoded
	}
	return ""
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
