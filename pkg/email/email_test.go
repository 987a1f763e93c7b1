package email_test

import (
	"context"
	"net"
	"net/textproto"
	"strings"
	"testing"

	"go-studio-backend/config"
	"go-studio-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIME(t *testing.T) {
	raw := string(email.BuildMIME(email.Message{
		From:    "Contact Form <noreply@prostolab.ru>",
		To:      "hello@prostolab.ru",
		ReplyTo: "ivan@example.com",
		Subject: "New Inquiry from Ivan: LANDING",
		Body:    "NEW PROJECT INQUIRY\n",
	}))

	assert.Contains(t, raw, "From: Contact Form <noreply@prostolab.ru>\r\n")
	assert.Contains(t, raw, "To: hello@prostolab.ru\r\n")
	assert.Contains(t, raw, "Reply-To: ivan@example.com\r\n")
	assert.Contains(t, raw, "Subject: New Inquiry from Ivan: LANDING\r\n")
	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8\r\n")

	// Headers and body separated by a blank line.
	parts := strings.SplitN(raw, "\r\n\r\n", 2)
	assert.Len(t, parts, 2)
	assert.Equal(t, "NEW PROJECT INQUIRY\n", parts[1])
}

func TestSMTPMailerUnconfigured(t *testing.T) {
	m := &email.SMTPMailer{}
	assert.False(t, m.IsConfigured())
}

func TestEnvelopeFrom(t *testing.T) {
	assert.Equal(t, "noreply@prostolab.ru", email.EnvelopeFrom("Contact Form <noreply@prostolab.ru>"))
	assert.Equal(t, "noreply@prostolab.ru", email.EnvelopeFrom("noreply@prostolab.ru"))
}

// fakeSMTPServer speaks just enough ESMTP for one delivery and records the
// MAIL command as it appeared on the wire.
func fakeSMTPServer(t *testing.T, ln net.Listener, mailCmd chan<- string) {
	t.Helper()
	conn, err := ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	tc := textproto.NewConn(conn)
	tc.PrintfLine("220 test ESMTP")
	for {
		line, err := tc.ReadLine()
		if err != nil {
			return
		}
		switch {
		case strings.HasPrefix(line, "EHLO"), strings.HasPrefix(line, "HELO"):
			tc.PrintfLine("250-test")
			tc.PrintfLine("250 AUTH PLAIN")
		case strings.HasPrefix(line, "AUTH"):
			tc.PrintfLine("235 ok")
		case strings.HasPrefix(line, "MAIL FROM:"):
			mailCmd <- line
			tc.PrintfLine("250 OK")
		case strings.HasPrefix(line, "RCPT TO:"):
			tc.PrintfLine("250 OK")
		case line == "DATA":
			tc.PrintfLine("354 go ahead")
			for {
				l, err := tc.ReadLine()
				if err != nil {
					return
				}
				if l == "." {
					break
				}
			}
			tc.PrintfLine("250 queued")
		case line == "QUIT":
			tc.PrintfLine("221 bye")
			return
		default:
			tc.PrintfLine("250 OK")
		}
	}
}

func TestSMTPEnvelopeSenderIsBareAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	mailCmd := make(chan string, 1)
	go fakeSMTPServer(t, ln, mailCmd)

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	m := email.NewSMTPMailer(&config.Config{
		SMTPHost:     host,
		SMTPPort:     port,
		SMTPUsername: "user",
		SMTPPassword: "secret",
	})

	id, err := m.Send(context.Background(), email.Message{
		From:    "Contact Form <noreply@prostolab.ru>",
		To:      "hello@prostolab.ru",
		ReplyTo: "ivan@example.com",
		Subject: "New Inquiry from Ivan: LANDING",
		Body:    "NEW PROJECT INQUIRY\n",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// The reverse-path must carry the bare address, never the display name.
	assert.Equal(t, "MAIL FROM:<noreply@prostolab.ru>", <-mailCmd)
}
