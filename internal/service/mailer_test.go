// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("noreply@example.com", []string{"admin@example.com", "ops@example.com"}, "Hello", "Body text"))

	for _, want := range []string{
		"From: noreply@example.com\r\n",
		"To: admin@example.com, ops@example.com\r\n",
		"Subject: Hello\r\n",
		"Content-Type: text/plain; charset=UTF-8\r\n",
		"\r\n\r\nBody text",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSanitizeHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Normal subject", "Normal subject"},
		{"Injected\r\nBcc: evil@example.com", "Injected Bcc: evil@example.com"},
		{"Line\nbreak", "Line break"},
	}

	for _, tt := range tests {
		if got := sanitizeHeader(tt.input); got != tt.want {
			t.Errorf("sanitizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNilMailer(t *testing.T) {
	var m *Mailer

	// A nil mailer swallows everything without panicking.
	if err := m.Send([]string{"a@example.com"}, "s", "b"); err != nil {
		t.Errorf("nil mailer Send returned %v, want nil", err)
	}
	m.SendAsync([]string{"a@example.com"}, "s", "b")
	m.NotifyContactMessage("a@example.com", "Name", "from@example.com", "Subject", "Message")
}

func TestMailerSendNoRecipients(t *testing.T) {
	m := NewMailer("localhost", 2525, "", "", "noreply@example.com")
	if err := m.Send(nil, "s", "b"); err == nil {
		t.Error("Send with no recipients should error")
	}
}
