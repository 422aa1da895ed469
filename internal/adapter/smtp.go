package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/models"
	"github.com/wneessen/go-mail"
)

// mailSender is the part of *mail.Client the relay uses.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type smtpMailRelay struct {
	client  mailSender
	from    string
	to      string
	subject string

	logger *logger.Logger
}

// NewSMTPMailRelay constructs an SMTP implementation of [MailRelay] that
// authenticates with PLAIN over a mandatory STARTTLS connection.
func NewSMTPMailRelay(cfg config.Mail, log *logger.Logger) (MailRelay, error) {
	client, err := mail.NewClient(cfg.SMTP.Host,
		mail.WithPort(cfg.SMTP.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTP.Username),
		mail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		log.Err(err).Str("func", "NewSMTPMailRelay").Msg("error creating smtp client")
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return &smtpMailRelay{
		client:  client,
		from:    cfg.Sender(),
		to:      cfg.Recipient(),
		subject: cfg.Subject,
		logger:  log,
	}, nil
}

func (s *smtpMailRelay) Deliver(ctx context.Context, sender, message string, files []models.UploadedFile) error {
	msg, err := s.buildMessage(sender, message, files)
	if err != nil {
		return err
	}

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "smtpMailRelay.Deliver").Int("attachments", len(files)).Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrSendingMessage, err)
	}
	return nil
}

func (s *smtpMailRelay) buildMessage(sender, message string, files []models.UploadedFile) (*mail.Msg, error) {
	body, err := renderMailBody(sender, message)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err = msg.From(s.from); err != nil {
		return nil, fmt.Errorf("%w: from: %w", ErrBuildingMessage, err)
	}
	if err = msg.To(s.to); err != nil {
		return nil, fmt.Errorf("%w: to: %w", ErrBuildingMessage, err)
	}
	msg.Subject(s.subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	for _, file := range files {
		msg.AttachFile(file.Path,
			mail.WithFileName(file.OriginalName),
			mail.WithFileContentType(mail.ContentType(file.MIMEType)),
		)
	}

	return msg, nil
}
