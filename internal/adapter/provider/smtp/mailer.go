// Package smtp delivers HTML email over SMTP with STARTTLS or implicit TLS.
package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/mail"
	netsmtp "net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/provider"
)

const providerName = "smtp"

// implicitTLSPort is the submission port that expects TLS from the first byte.
const implicitTLSPort = 465

// Config holds mailer connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Mailer sends one message per connection.
type Mailer struct {
	cfg       Config
	tlsConfig *tls.Config
	log       *slog.Logger
}

// NewMailer creates a Mailer.
func NewMailer(cfg Config, logger *slog.Logger) *Mailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Mailer{
		cfg:       cfg,
		tlsConfig: &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12},
		log:       logger.With("adapter", providerName),
	}
}

// Send delivers an HTML message to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) (provider.SendResult, error) {
	from, err := mail.ParseAddress(m.cfg.From)
	if err != nil {
		return provider.SendResult{}, fmt.Errorf("smtp: invalid from address: %w", err)
	}
	rcpt, err := mail.ParseAddress(to)
	if err != nil {
		return provider.SendResult{}, &provider.DeliveryError{Provider: providerName, Err: fmt.Errorf("invalid recipient: %w", err)}
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.Host)
	msg := buildMessage(from, rcpt, subject, htmlBody, messageID)

	if err := m.deliver(ctx, from.Address, rcpt.Address, msg); err != nil {
		m.log.WarnContext(ctx, "smtp delivery failed", slog.String("error", err.Error()))
		return provider.SendResult{}, classify(err)
	}

	return provider.SendResult{MessageID: messageID}, nil
}

func (m *Mailer) deliver(ctx context.Context, from, to string, msg []byte) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	deadline := time.Now().Add(m.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	dialer := &net.Dialer{Deadline: deadline}
	var (
		conn net.Conn
		err  error
	)
	if m.cfg.Port == implicitTLSPort {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: m.tlsConfig}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}

	c, err := netsmtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if m.cfg.Port != implicitTLSPort {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(m.tlsConfig); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if m.cfg.Username != "" {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(netsmtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
				return fmt.Errorf("auth: %w", err)
			}
		}
	}

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("end data: %w", err)
	}

	return c.Quit()
}

func buildMessage(from, to *mail.Address, subject, htmlBody, messageID string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from.String() + "\r\n")
	b.WriteString("To: " + to.String() + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("Message-ID: " + messageID + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// classify marks transient SMTP replies (4xx) and network errors retryable.
func classify(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return &provider.DeliveryError{
			Provider:  providerName,
			Retryable: tpErr.Code >= 400 && tpErr.Code < 500,
			Err:       err,
		}
	}
	var netErr net.Error
	retryable := errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded)
	return &provider.DeliveryError{Provider: providerName, Retryable: retryable, Err: err}
}
