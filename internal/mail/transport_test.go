package mail

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/church-cms/internal/config"
)

func TestNewTransportDebugMode(t *testing.T) {
	transport := NewTransport(config.MailConfig{Debug: true}, zap.NewNop())

	id, err := transport.Send(context.Background(), Message{
		To:      "user@example.com",
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !strings.HasPrefix(id, "debug-") {
		t.Errorf("message id = %q, want debug- prefix", id)
	}
}

func TestSMTPTransportRequiresHost(t *testing.T) {
	transport := NewTransport(config.MailConfig{Debug: false}, zap.NewNop())

	if _, err := transport.Send(context.Background(), Message{To: "user@example.com"}); err == nil {
		t.Fatal("Send() without configured host expected error")
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	transport := &smtpTransport{cfg: config.MailConfig{
		FromName:    "House of Praise",
		FromAddress: "noreply@example.com",
	}, logger: zap.NewNop()}

	body := string(transport.buildMessage("abc@example.com", Message{
		To:      "user@example.com",
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
	}))

	for _, want := range []string{
		"From: House of Praise <noreply@example.com>\r\n",
		"To: user@example.com\r\n",
		"Reply-To: noreply@example.com\r\n",
		"Subject: Hello\r\n",
		"Message-ID: <abc@example.com>\r\n",
		"Content-Type: text/html; charset=UTF-8\r\n",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("message missing header %q", want)
		}
	}
	if !strings.HasSuffix(body, "<p>Hi</p>\r\n") {
		t.Error("message body not terminated correctly")
	}
}

func TestBuildMessageReplyToOverride(t *testing.T) {
	transport := &smtpTransport{cfg: config.MailConfig{
		FromName:    "House of Praise",
		FromAddress: "noreply@example.com",
	}, logger: zap.NewNop()}

	body := string(transport.buildMessage("abc@example.com", Message{
		To:      "office@example.com",
		Subject: "New Contact Message",
		HTML:    "<p>Hi</p>",
		ReplyTo: "visitor@example.com",
	}))

	if !strings.Contains(body, "Reply-To: visitor@example.com\r\n") {
		t.Error("Reply-To override not applied")
	}
}
