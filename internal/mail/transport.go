package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/church-cms/internal/config"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Transport delivers one message and reports the provider message id.
type Transport interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// NewTransport builds the configured transport. Debug mode substitutes a
// logging stub for real delivery.
func NewTransport(cfg config.MailConfig, logger *zap.Logger) Transport {
	if cfg.Debug {
		logger.Info("email debug mode enabled; messages will be logged, not sent")
		return &debugTransport{cfg: cfg, logger: logger}
	}
	return &smtpTransport{cfg: cfg, logger: logger}
}

// smtpTransport delivers mail over plain SMTP with STARTTLS-less auth,
// dialing per message with a bounded timeout.
type smtpTransport struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

func (t *smtpTransport) Send(ctx context.Context, msg Message) (string, error) {
	if t.cfg.Host == "" {
		return "", fmt.Errorf("smtp host not configured")
	}

	timeout := t.cfg.Timeout()
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	messageID := fmt.Sprintf("%s@%s", uuid.NewString(), t.cfg.Host)
	body := t.buildMessage(messageID, msg)
	addr := fmt.Sprintf("%s:%d", t.cfg.Host, t.cfg.Port)

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return "", fmt.Errorf("dial smtp: %w", err)
	}
	_ = conn.SetDeadline(time.Now().Add(timeout))

	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		conn.Close()
		return "", fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if t.cfg.Username != "" {
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return "", fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(t.cfg.FromAddress); err != nil {
		return "", fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return "", fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		w.Close()
		return "", fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("smtp close: %w", err)
	}
	if err := client.Quit(); err != nil {
		t.logger.Debug("smtp quit", zap.Error(err))
	}

	t.logger.Info("email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("message_id", messageID))
	return messageID, nil
}

func (t *smtpTransport) buildMessage(messageID string, msg Message) []byte {
	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = t.cfg.FromAddress
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", t.cfg.FromName, t.cfg.FromAddress)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", replyTo)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Message-ID: <%s>\r\n", messageID)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// debugTransport logs messages instead of delivering them.
type debugTransport struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

func (t *debugTransport) Send(_ context.Context, msg Message) (string, error) {
	messageID := "debug-" + uuid.NewString()
	t.logger.Info("email debug",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("from", fmt.Sprintf("%s <%s>", t.cfg.FromName, t.cfg.FromAddress)),
		zap.String("message_id", messageID))
	return messageID, nil
}

// SendDetached fires a send on its own goroutine with an independent
// timeout. Used by confirmation flows whose outcome never affects the HTTP
// response; failures are logged only.
func SendDetached(transport Transport, logger *zap.Logger, timeout time.Duration, msg Message) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := transport.Send(ctx, msg); err != nil {
			logger.Warn("detached email failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err))
		}
	}()
}
