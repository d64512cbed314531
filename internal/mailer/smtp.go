package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"sofa-shop/internal/config"
	"sofa-shop/internal/model"

	"github.com/rs/zerolog"
)

// smtpMailer implements Mailer over a plain SMTP relay.
type smtpMailer struct {
	cfg    config.SMTPConfig
	shop   config.ShopConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates a mailer backed by the configured SMTP relay.
func NewSMTPMailer(cfg config.SMTPConfig, shop config.ShopConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{
		cfg:    cfg,
		shop:   shop,
		logger: logger.With().Str("mailer", "smtp").Logger(),
	}
}

// New returns the SMTP mailer when SMTP is configured and the nop mailer
// otherwise, so callers never need the distinction.
func New(cfg config.SMTPConfig, shop config.ShopConfig, logger zerolog.Logger) Mailer {
	if cfg.Enabled() {
		return NewSMTPMailer(cfg, shop, logger)
	}
	logger.Info().Msg("SMTP not configured, outbound mail disabled")
	return NewNopMailer(logger)
}

func (m *smtpMailer) SendOrderConfirmation(ctx context.Context, order *model.Order) error {
	subject, body := confirmationEmail(m.shop.Name, m.shop.SiteURL, order)
	return m.send(ctx, order.CustomerEmail, "", subject, body)
}

func (m *smtpMailer) SendStatusUpdate(ctx context.Context, order *model.Order, status string) error {
	subject, body := statusEmail(m.shop.Name, m.shop.SiteURL, order, status)
	return m.send(ctx, order.CustomerEmail, "", subject, body)
}

func (m *smtpMailer) SendContactMessage(ctx context.Context, req *model.ContactRequest) error {
	subject, body := contactEmail(m.shop.Name, req)
	return m.send(ctx, m.cfg.ContactInbox, req.Email, subject, body)
}

// send delivers one HTML message. Port 465 uses implicit TLS; everything
// else goes through smtp.SendMail which negotiates STARTTLS when offered.
func (m *smtpMailer) send(ctx context.Context, to, replyTo, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	raw := m.buildRaw(to, replyTo, subject, body)

	m.logger.Debug().
		Str("to", to).
		Str("subject", subject).
		Msg("sending email")

	var err error
	if m.cfg.Port == 465 {
		err = m.sendTLS(addr, auth, to, raw)
	} else {
		err = smtp.SendMail(addr, auth, m.cfg.From, []string{to}, raw)
	}
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// sendTLS delivers over an implicit-TLS connection (port 465).
func (m *smtpMailer) sendTLS(addr string, auth smtp.Auth, to string, raw []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("TLS dial: %w", err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Quit()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// buildRaw assembles the RFC 5322 message bytes.
func (m *smtpMailer) buildRaw(to, replyTo, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", m.cfg.FromName, m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if replyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
