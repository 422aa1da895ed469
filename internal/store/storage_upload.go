// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/models"
	"github.com/google/uuid"
)

// Multipart field names of the contact form.
const (
	FormFieldFile    = "file"
	FormFieldSender  = "sender"
	FormFieldMessage = "message"
)

const (
	maxSafeFilenameLength = 120
	maxTextFieldBytes     = 1 << 20
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]`)

// SafeFilename replaces every character outside [a-zA-Z0-9._-] with an
// underscore and keeps at most the last 120 characters.
func SafeFilename(name string) string {
	safe := unsafeFilenameChars.ReplaceAllString(name, "_")
	if len(safe) > maxSafeFilenameLength {
		safe = safe[len(safe)-maxSafeFilenameLength:]
	}
	return safe
}

// tempFileStorage streams multipart uploads into a temporary directory.
// Every stored file gets a unique name so concurrent requests never share
// a path.
type tempFileStorage struct {
	dir               string
	maxFiles          int
	maxFileSize       int64
	allowedMIMETypes  []string
	allowedExtensions []string

	now    func() time.Time
	newID  func() string
	logger *logger.Logger
}

// NewTempFileStorage creates the temporary directory if needed and returns
// an [UploadStorage] enforcing the configured count, size and type limits.
func NewTempFileStorage(cfg config.Upload, logger *logger.Logger) (UploadStorage, error) {
	if err := os.MkdirAll(cfg.TempDir, 0o700); err != nil {
		logger.Err(err).Str("func", "NewTempFileStorage").Str("dir", cfg.TempDir).Msg("failed to create temp upload dir")
		return nil, fmt.Errorf("failed to create temp upload dir: %w", err)
	}
	logger.Debug().Str("dir", cfg.TempDir).Msg("creating temp file storage")

	return &tempFileStorage{
		dir:               cfg.TempDir,
		maxFiles:          cfg.MaxFiles,
		maxFileSize:       cfg.MaxFileSize,
		allowedMIMETypes:  cfg.AllowedMIMETypes,
		allowedExtensions: cfg.AllowedExtensions,
		now:               time.Now,
		newID:             uuid.NewString,
		logger:            logger,
	}, nil
}

func (s *tempFileStorage) SaveUploads(ctx context.Context, body *multipart.Reader) (models.UploadRequest, error) {
	log := logger.FromContext(ctx)

	var (
		request         models.UploadRequest
		sender, message bool
	)

	fail := func(err error) (models.UploadRequest, error) {
		s.removeAll(ctx, request.Files)
		log.Debug().Err(err).Str("func", "tempFileStorage.SaveUploads").Int("files_removed", len(request.Files)).Msg("upload rejected by transport")
		return models.UploadRequest{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrMalformedUpload, err))
		}

		part, err := body.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fail(fmt.Errorf("%w: %w", ErrMalformedUpload, err))
		}

		switch {
		case part.FileName() != "":
			if part.FormName() != FormFieldFile {
				part.Close()
				return fail(fmt.Errorf("%w: unexpected file field %q", ErrMalformedUpload, part.FormName()))
			}
			if len(request.Files) >= s.maxFiles {
				part.Close()
				return fail(ErrTooManyFiles)
			}
			file, saveErr := s.savePart(part)
			part.Close()
			if saveErr != nil {
				return fail(saveErr)
			}
			request.Files = append(request.Files, file)

		case part.FormName() == FormFieldSender && !sender:
			value, readErr := readTextField(part)
			part.Close()
			if readErr != nil {
				return fail(readErr)
			}
			request.Sender, sender = value, true

		case part.FormName() == FormFieldMessage && !message:
			value, readErr := readTextField(part)
			part.Close()
			if readErr != nil {
				return fail(readErr)
			}
			request.Message, message = value, true

		default:
			// repeated or unknown text fields are drained and ignored
			_, copyErr := io.Copy(io.Discard, io.LimitReader(part, maxTextFieldBytes+1))
			part.Close()
			if copyErr != nil {
				return fail(fmt.Errorf("%w: %w", ErrMalformedUpload, copyErr))
			}
		}
	}

	return request, nil
}

// savePart checks the declared type of a file part and streams it to a new
// temporary file, aborting as soon as the per-file limit is exceeded.
func (s *tempFileStorage) savePart(part *multipart.Part) (models.UploadedFile, error) {
	originalName := part.FileName()
	declared := strings.ToLower(strings.TrimSpace(part.Header.Get("Content-Type")))
	ext := strings.ToLower(filepath.Ext(originalName))

	if !slices.Contains(s.allowedMIMETypes, declared) || !slices.Contains(s.allowedExtensions, ext) {
		return models.UploadedFile{}, ErrFileTypeRejected
	}

	storedName := fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), s.newID(), SafeFilename(originalName))
	path := filepath.Join(s.dir, storedName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("%w: %w", ErrSavingUpload, err)
	}

	n, copyErr := io.Copy(f, io.LimitReader(part, s.maxFileSize+1))
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		_ = s.Remove(path)
		return models.UploadedFile{}, fmt.Errorf("%w: %w", ErrMalformedUpload, copyErr)
	case n > s.maxFileSize:
		_ = s.Remove(path)
		return models.UploadedFile{}, ErrFileTooLarge
	case closeErr != nil:
		_ = s.Remove(path)
		return models.UploadedFile{}, fmt.Errorf("%w: %w", ErrSavingUpload, closeErr)
	}

	return models.UploadedFile{
		OriginalName: originalName,
		StoredName:   storedName,
		Path:         path,
		Size:         n,
		MIMEType:     declared,
	}, nil
}

func (s *tempFileStorage) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove temp file: %w", err)
	}
	return nil
}

// SweepStale removes regular files in the upload directory whose
// modification time is older than olderThan and reports how many were
// removed.
func (s *tempFileStorage) SweepStale(ctx context.Context, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read temp upload dir: %w", err)
	}

	log := logger.FromContext(ctx)
	cutoff := s.now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := s.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			log.Err(err).Str("func", "tempFileStorage.SweepStale").Str("name", entry.Name()).Msg("failed to remove stale temp file")
			continue
		}
		removed++
	}
	return removed, nil
}

func (s *tempFileStorage) removeAll(ctx context.Context, files []models.UploadedFile) {
	log := logger.FromContext(ctx)
	for _, file := range files {
		if err := s.Remove(file.Path); err != nil {
			log.Err(err).Str("func", "tempFileStorage.removeAll").Str("path", file.Path).Msg("failed to remove temp file")
		}
	}
}

func readTextField(part *multipart.Part) (string, error) {
	data, err := io.ReadAll(io.LimitReader(part, maxTextFieldBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedUpload, err)
	}
	if len(data) > maxTextFieldBytes {
		return "", ErrMalformedUpload
	}
	return string(data), nil
}
