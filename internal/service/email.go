package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/internal/metrics"
)

// Mailer sends transactional email. Implementations must not block the caller.
type Mailer interface {
	SendVerificationEmail(email, code string)
}

// EmailVar is a template variable passed to Mailgun as "v:<Key>".
type EmailVar struct {
	Key   string
	Value string
}

const defaultMailgunBaseURL = "https://api.mailgun.net"

type MailgunConfig struct {
	APIKey    string
	Domain    string
	FromEmail string
	// BaseURL overrides the Mailgun API host.
	BaseURL string
	Timeout time.Duration
}

// MailgunMailer sends template emails through the Mailgun HTTP API
type MailgunMailer struct {
	cfg    MailgunConfig
	client *http.Client
	log    *zap.Logger
	wg     sync.WaitGroup
}

func NewMailgunMailer(cfg MailgunConfig, log *zap.Logger) *MailgunMailer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultMailgunBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = fmt.Sprintf("Nuber Eats <mailgun@%s>", cfg.Domain)
	}
	return &MailgunMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// SendVerificationEmail sends the verify-email template in the background.
// Failures are logged, never returned.
func (m *MailgunMailer) SendVerificationEmail(email, code string) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.Timeout)
		defer cancel()

		err := m.Send(ctx, "Verify Your Email", "verify-email", email, []EmailVar{
			{Key: "code", Value: code},
			{Key: "username", Value: email},
		})
		if err != nil {
			m.log.Error("failed to send verification email", zap.String("to", email), zap.Error(err))
		}
	}()
}

// Wait blocks until every background send has finished.
func (m *MailgunMailer) Wait() {
	m.wg.Wait()
}

// Send posts a template message to Mailgun. Without an API key the message
// is logged instead of sent.
func (m *MailgunMailer) Send(ctx context.Context, subject, template, to string, vars []EmailVar) error {
	if m.cfg.APIKey == "" || m.cfg.Domain == "" {
		m.log.Info("Mailgun not configured, logging email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.String("template", template),
			zap.Any("vars", vars),
		)
		metrics.EmailsSent.WithLabelValues("logged").Inc()
		return nil
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	fields := []EmailVar{
		{Key: "from", Value: m.cfg.FromEmail},
		{Key: "to", Value: to},
		{Key: "subject", Value: subject},
		{Key: "template", Value: template},
	}
	for _, v := range vars {
		fields = append(fields, EmailVar{Key: "v:" + v.Key, Value: v.Value})
	}
	for _, f := range fields {
		if err := form.WriteField(f.Key, f.Value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", f.Key, err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("failed to close form: %w", err)
	}

	url := fmt.Sprintf("%s/v3/%s/messages", m.cfg.BaseURL, m.cfg.Domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth("api", m.cfg.APIKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := m.client.Do(req)
	if err != nil {
		metrics.EmailsSent.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		metrics.EmailsSent.WithLabelValues("failed").Inc()
		return fmt.Errorf("mailgun returned %d: %s", resp.StatusCode, bytes.TrimSpace(excerpt))
	}

	metrics.EmailsSent.WithLabelValues("sent").Inc()
	return nil
}
