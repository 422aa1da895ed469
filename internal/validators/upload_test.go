package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadValidator() Validator {
	return NewUploadValidator(config.Defaults().Upload)
}

func TestUploadValidator_Validate(t *testing.T) {
	v := newTestUploadValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.UploadRequest
		wantErr error
		wantMsg string
	}{
		{
			name: "valid",
			req:  models.UploadRequest{Sender: "Od Spottera", Message: "Hello"},
		},
		{
			name: "sender is trimmed",
			req:  models.UploadRequest{Sender: "  Od Spotterki ", Message: "Hello"},
		},
		{
			name:    "unknown sender",
			req:     models.UploadRequest{Sender: "Anonim", Message: "Hello"},
			wantErr: ErrInvalidSender,
			wantMsg: "Nieprawidłowa wartość pola nadawcy",
		},
		{
			name:    "blank sender reported before bad message",
			req:     models.UploadRequest{Sender: "   ", Message: ""},
			wantErr: ErrInvalidSender,
			wantMsg: "Nieprawidłowa wartość pola nadawcy",
		},
		{
			name:    "message too short after trim",
			req:     models.UploadRequest{Sender: "Od Spottera", Message: "  hi  "},
			wantErr: ErrInvalidMessage,
			wantMsg: "Wiadomość może mieć od 3 do 2000 znaków",
		},
		{
			name: "message exactly at minimum",
			req:  models.UploadRequest{Sender: "Od Spottera", Message: "abc"},
		},
		{
			name: "message at maximum counted in runes",
			req:  models.UploadRequest{Sender: "Od Spottera", Message: strings.Repeat("ż", 2000)},
		},
		{
			name:    "message over maximum",
			req:     models.UploadRequest{Sender: "Od Spottera", Message: strings.Repeat("a", 2001)},
			wantErr: ErrInvalidMessage,
			wantMsg: "Wiadomość może mieć od 3 do 2000 znaków",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}
}

func TestUploadValidator_Dispatch(t *testing.T) {
	v := newTestUploadValidator()
	ctx := context.Background()

	t.Run("pointer", func(t *testing.T) {
		req := &models.UploadRequest{Sender: "Od Spottera", Message: "Hello"}
		assert.NoError(t, v.Validate(ctx, req))
	})

	t.Run("unsupported type", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("single field", func(t *testing.T) {
		req := models.UploadRequest{Sender: "nobody", Message: "Hello"}
		assert.NoError(t, v.Validate(ctx, req, FieldMessage))
	})

	t.Run("unknown field", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.UploadRequest{}, "author"), ErrUnknownField)
	})
}
