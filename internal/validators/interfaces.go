// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks contact-form uploads and catalog requests.
//
// UploadValidator enforces the sender list, message length, file count,
// sizes and magic-byte signatures of an upload. CatalogValidator validates
// catalog ids, list queries, favorites batches and stored contact records
// with go-playground/validator tags. Failures are *FieldError values that
// wrap one of the package sentinels, so callers can map them with errors.Is.
package validators

import "context"

// Validator validates obj. When fields are given, only those checks run.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
