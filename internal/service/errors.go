package service

import (
	"errors"

	"github.com/MKhiriev/spotted-relay/internal/store"
	"github.com/MKhiriev/spotted-relay/internal/validators"
)

// Upload pipeline errors.
var (
	ErrInvalidSender     = validators.ErrInvalidSender
	ErrInvalidMessage    = validators.ErrInvalidMessage
	ErrTooManyFiles      = errors.New("too many files")
	ErrFileTooLarge      = errors.New("file is too large")
	ErrTotalSizeExceeded = errors.New("total size of files exceeded")
	ErrInvalidFileType   = errors.New("file signature is not an allowed image type")
	ErrDeliveryFailed    = errors.New("mail delivery failed")
)

// Catalog errors.
var (
	ErrWorkNotFound     = store.ErrWorkNotFound
	ErrContactIntegrity = errors.New("stored contact failed output schema")
)

// MsgWorkNotCurrent annotates favorites that no longer exist.
const MsgWorkNotCurrent = "Ogłoszenie nie aktualne."
