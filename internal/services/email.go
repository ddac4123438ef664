package services

import (
  "context"
  "fmt"
  "os"

  "github.com/sendgrid/sendgrid-go"
  "github.com/sendgrid/sendgrid-go/helpers/mail"

  "github.com/onlyfrogs/stylesync-backend/internal/logger"
)

type EmailService interface {
  SendEmail(ctx context.Context, toEmail string, subject string, plainText string, htmlContent string) error
  SendWelcomeEmail(ctx context.Context, toEmail string, firstName string) error
}

type emailService struct {
  log       *logger.Logger
  client    *sendgrid.Client
  fromEmail string
}

func NewEmailService(log *logger.Logger) (EmailService, error) {
  serviceLog := log.With("service", "EmailService")
  apiKey := os.Getenv("SENDGRID_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("Missing SENDGRID_API_KEY environment variable")
  }
  fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
  if fromEmail == "" {
    serviceLog.Warn("SENDGRID_FROM_EMAIL not set; using fallback no-reply@stylesync.app")
    fromEmail = "no-reply@stylesync.app"
  }
  client := sendgrid.NewSendClient(apiKey)

  return &emailService{
    log:       serviceLog,
    client:    client,
    fromEmail: fromEmail,
  }, nil
}

func (es *emailService) SendEmail(ctx context.Context, toEmail string, subject string, plainText string, htmlContent string) error {
  from := mail.NewEmail("StyleSync", es.fromEmail)
  to := mail.NewEmail("", toEmail)
  message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
  response, err := es.client.SendWithContext(ctx, message)
  if err != nil {
    es.log.Warn("Sendgrid email send failed", "error", err)
    return err
  }
  es.log.Info("Email sent", "to", toEmail, "statusCode", response.StatusCode)
  return nil
}

func (es *emailService) SendWelcomeEmail(ctx context.Context, toEmail string, firstName string) error {
  subject := "Welcome to StyleSync!"
  plain := fmt.Sprintf("Hi %s, welcome to StyleSync! Upload your closet and let Ali style you.", firstName)
  html := fmt.Sprintf("<p>Hi %s,</p><p>Welcome to <strong>StyleSync</strong>! Upload your closet and let Ali style you.</p>", firstName)
  return es.SendEmail(ctx, toEmail, subject, plain, html)
}
