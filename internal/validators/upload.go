package validators

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/models"
)

// Field names accepted by UploadValidator for field-level scoping.
const (
	FieldSender  = "sender"
	FieldMessage = "message"
)

// UploadValidator checks the text fields of a contact-form upload against
// the configured sender list and message bounds.
type UploadValidator struct {
	allowedSenders []string
	minLen, maxLen int
}

// NewUploadValidator constructs an UploadValidator for the given limits.
func NewUploadValidator(cfg config.Upload) Validator {
	return &UploadValidator{
		allowedSenders: cfg.AllowedSenders,
		minLen:         cfg.MinMessageLength,
		maxLen:         cfg.MaxMessageLength,
	}
}

// Validate checks models.UploadRequest values. Fields are checked in the
// given order (sender, then message by default) and only the first failure
// is returned, as a *FieldError.
func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadValidator) validateUploadRequest(_ context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSender, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldSender:
			sender := strings.TrimSpace(request.Sender)
			if sender == "" || !slices.Contains(v.allowedSenders, sender) {
				return newFieldError(FieldSender, MsgInvalidSender, ErrInvalidSender)
			}
		case FieldMessage:
			message := strings.TrimSpace(request.Message)
			n := utf8.RuneCountInString(message)
			if message == "" || n < v.minLen || n > v.maxLen {
				return newFieldError(FieldMessage, MsgInvalidMessage(v.minLen, v.maxLen), ErrInvalidMessage)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
