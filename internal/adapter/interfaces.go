// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers accepted contact-form uploads to the site owners.
//
// The primary abstraction is [MailRelay], which decouples the upload pipeline
// from the delivery protocol. Two drivers are shipped: SMTP via go-mail
// ([NewSMTPMailRelay]) and an HTTP mail API via resty ([NewHTTPMailRelay]).
// [NewMailRelay] picks one from configuration.
//
// Non-2xx responses of the HTTP driver are mapped by mapHTTPError to the
// sentinel values in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/spotted-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mail_relay_mock.go -package=mock

// MailRelay sends one message with its attachments. Implementations must
// not retain or delete the files; the caller owns them.
type MailRelay interface {
	// Deliver sends sender and message as an HTML mail with one attachment
	// per file, named after the file's original name and carrying its
	// declared content type.
	Deliver(ctx context.Context, sender, message string, files []models.UploadedFile) error
}
