// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"
)

// Mailer sends plain-text notification email over SMTP. A nil Mailer is
// valid and drops all messages, so callers never have to branch on
// whether mail is configured.
type Mailer struct {
	addr string // host:port
	host string
	auth smtp.Auth
	from string
}

// NewMailer creates a mailer for the given SMTP server. user may be
// empty for servers that accept unauthenticated relay (local dev).
func NewMailer(host string, port int, user, password, from string) *Mailer {
	m := &Mailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		host: host,
		from: from,
	}
	if user != "" {
		m.auth = smtp.PlainAuth("", user, password, host)
	}
	return m
}

// Send delivers a plain-text message to the given recipients.
func (m *Mailer) Send(to []string, subject, body string) error {
	if m == nil {
		return nil
	}
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}

	msg := buildMessage(m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, to, msg); err != nil {
		return fmt.Errorf("sending mail via %s: %w", m.addr, err)
	}
	return nil
}

// SendAsync delivers a message in the background. Failures are logged
// and never surface to the caller; notification mail must not block or
// fail the request that triggered it.
func (m *Mailer) SendAsync(to []string, subject, body string) {
	if m == nil {
		return
	}
	go func() {
		if err := m.Send(to, subject, body); err != nil {
			slog.Error("failed to send notification email",
				"to", strings.Join(to, ","),
				"subject", subject,
				"error", err)
		}
	}()
}

// NotifyContactMessage sends the contact-form notification to the
// configured inbox address.
func (m *Mailer) NotifyContactMessage(to, name, email, subject, message string) {
	if m == nil || to == "" {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New contact message received.\r\n\r\n")
	fmt.Fprintf(&b, "From: %s <%s>\r\n", name, email)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Received: %s\r\n\r\n", time.Now().Format(time.RFC1123))
	fmt.Fprintf(&b, "%s\r\n", message)

	m.SendAsync([]string{to}, "New contact message: "+sanitizeHeader(subject), b.String())
}

// buildMessage assembles an RFC 5322 plain-text message.
func buildMessage(from string, to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// sanitizeHeader strips CR/LF to prevent header injection via
// user-supplied subjects.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
