// Package mailer provides a small SMTP relay client for outbound notifications.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// 既定の SMTP リレー (Gmail, STARTTLS)
const (
	DefaultHost = "smtp.gmail.com"
	DefaultPort = 587
)

var (
	// ErrNotConfigured は認証情報または宛先が未設定の場合のエラー
	ErrNotConfigured = errors.New("mailer: not configured")
	// ErrSendFailed wraps every failure to build or deliver a message.
	ErrSendFailed = errors.New("mailer: send failed")
)

// Config holds relay credentials and addressing.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From defaults to Username when empty.
	From string
	To   string
}

// Configured reports whether the three required values are present.
func (c Config) Configured() bool {
	return c.Username != "" && c.Password != "" && c.To != ""
}

func (c Config) sender() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

// Message is a single notification email. HTML is sent as an alternative part
// when set.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Client は通知メール送信のインターフェース
type Client interface {
	// Configured reports whether Send can be attempted.
	Configured() bool
	// Send delivers msg to the configured recipient.
	Send(ctx context.Context, msg Message) error
}

// SMTPClient sends mail through an authenticated SMTP relay using STARTTLS.
type SMTPClient struct {
	cfg Config
}

// NewSMTPClient creates an SMTPClient. Missing host and port fall back to
// DefaultHost and DefaultPort.
func NewSMTPClient(cfg Config) *SMTPClient {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return &SMTPClient{cfg: cfg}
}

var _ Client = (*SMTPClient)(nil)

// Configured reports whether username, password and recipient are all set.
func (c *SMTPClient) Configured() bool {
	return c.cfg.Configured()
}

// Send builds msg and delivers it in a single SMTP session.
func (c *SMTPClient) Send(ctx context.Context, msg Message) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	m, err := c.build(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(c.cfg.Host,
		mail.WithPort(c.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.cfg.Username),
		mail.WithPassword(c.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("%w: client: %w", ErrSendFailed, err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	return nil
}

func (c *SMTPClient) build(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(c.cfg.sender()); err != nil {
		return nil, fmt.Errorf("%w: from: %w", ErrSendFailed, err)
	}
	if err := m.To(c.cfg.To); err != nil {
		return nil, fmt.Errorf("%w: to: %w", ErrSendFailed, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}
