// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/MKhiriev/spotted-relay/internal/adapter"
	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/store"
	"github.com/MKhiriev/spotted-relay/internal/validators"
	"github.com/MKhiriev/spotted-relay/models"
)

type uploadService struct {
	uploadStorage store.UploadStorage
	mailRelay     adapter.MailRelay
	validator     validators.Validator

	maxFiles         int
	maxFileSize      int64
	maxTotalSize     int64
	allowedMIMETypes []string
	debugLog         bool

	logger *logger.Logger
}

func NewUploadService(uploadStorage store.UploadStorage, mailRelay adapter.MailRelay, cfg config.Upload, app config.App, logger *logger.Logger) UploadService {
	return &uploadService{
		uploadStorage:    uploadStorage,
		mailRelay:        mailRelay,
		validator:        validators.NewUploadValidator(cfg),
		maxFiles:         cfg.MaxFiles,
		maxFileSize:      cfg.MaxFileSize,
		maxTotalSize:     cfg.MaxTotalSize,
		allowedMIMETypes: cfg.AllowedMIMETypes,
		debugLog:         !app.IsProduction(),
		logger:           logger,
	}
}

func (s *uploadService) Receive(ctx context.Context, body *multipart.Reader) (models.UploadRequest, error) {
	return s.uploadStorage.SaveUploads(ctx, body)
}

// Process validates fields, limits and file signatures, in that order, and
// hands the upload to the mail relay. Temporary files are released on every
// path, including panics and canceled requests.
func (s *uploadService) Process(ctx context.Context, request models.UploadRequest) error {
	defer s.release(context.WithoutCancel(ctx), request.Files)

	if err := s.validator.Validate(ctx, request); err != nil {
		return err
	}
	sender := strings.TrimSpace(request.Sender)
	message := strings.TrimSpace(request.Message)

	if err := s.checkLimits(request); err != nil {
		return err
	}

	if !validators.ValidateSignatures(request.Files, s.allowedMIMETypes) {
		return ErrInvalidFileType
	}

	log := logger.FromContext(ctx)
	if s.debugLog {
		log.Debug().
			Str("sender", sender).
			Int("message_length", len([]rune(message))).
			Int("files", len(request.Files)).
			Int64("total_size", request.TotalSize()).
			Msg("upload accepted")
	}

	if err := s.mailRelay.Deliver(ctx, sender, message, request.Files); err != nil {
		log.Err(err).Str("func", "uploadService.Process").Int("files", len(request.Files)).Msg("mail relay failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return nil
}

func (s *uploadService) checkLimits(request models.UploadRequest) error {
	if len(request.Files) > s.maxFiles {
		return ErrTooManyFiles
	}
	for _, file := range request.Files {
		if file.Size > s.maxFileSize {
			return ErrFileTooLarge
		}
	}
	if request.TotalSize() > s.maxTotalSize {
		return ErrTotalSizeExceeded
	}
	return nil
}

// release removes the request's temporary files. Failures are logged and
// never change the outcome of the request.
func (s *uploadService) release(ctx context.Context, files []models.UploadedFile) {
	log := logger.FromContext(ctx)
	for _, file := range files {
		if err := s.uploadStorage.Remove(file.Path); err != nil {
			log.Err(err).Str("func", "uploadService.release").Str("path", file.Path).Msg("failed to remove temp file")
		}
	}
}
