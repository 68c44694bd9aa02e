package notifications

import (
	"context"
	"strconv"

	sendinblue "github.com/sendinblue/APIv3-go-library/lib"
	"github.com/sirupsen/logrus"
)

// Email is the template and recipient data of one outbound message
type Email struct {
	ReceiverName    string
	ReceiverAddress string
	Template        string
	Parameters      map[string]interface{}
}

// Mailer is the interface email services implement
type Mailer interface {
	SendEmail(ctx context.Context, mail *Email) error
}

// SendinblueMailer sends transactional template emails through sendinblue
type SendinblueMailer struct {
	client    *sendinblue.APIClient
	fromName  string
	fromEmail string
}

// NewSendinblueMailer constructs a mailer from an API key
func NewSendinblueMailer(apiKey, fromName, fromEmail string) *SendinblueMailer {
	cfg := sendinblue.NewConfiguration()
	cfg.AddDefaultHeader("api-key", apiKey)

	return &SendinblueMailer{
		client:    sendinblue.NewAPIClient(cfg),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendEmail sends one transactional email
func (m *SendinblueMailer) SendEmail(ctx context.Context, mail *Email) error {
	templateID, err := strconv.Atoi(mail.Template)
	if err != nil {
		return err
	}

	params := interface{}(mail.Parameters)

	_, _, err = m.client.TransactionalEmailsApi.SendTransacEmail(ctx, sendinblue.SendSmtpEmail{
		TemplateId: int64(templateID),
		To: []sendinblue.SendSmtpEmailTo{
			{
				Email: mail.ReceiverAddress,
				Name:  mail.ReceiverName,
			},
		},
		ReplyTo: &sendinblue.SendSmtpEmailReplyTo{
			Name:  m.fromName,
			Email: m.fromEmail,
		},
		Params: &params,
	})
	return err
}

// NoopMailer logs instead of sending. Used when no API key is configured.
type NoopMailer struct{}

// SendEmail logs the would-be email and returns nil
func (NoopMailer) SendEmail(_ context.Context, mail *Email) error {
	logrus.WithFields(logrus.Fields{
		"receiver": mail.ReceiverAddress,
		"template": mail.Template,
	}).Info("email sending disabled, skipping reminder")
	return nil
}
