// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/spotted-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	jpegHead = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}
	pngHead  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, content, 0o600))
	return p
}

var defaultAllowed = []string{"image/jpeg", "image/png", "image/jpg"}

// ---------------------------------------------------------------------------
// DetectMIMEType
// ---------------------------------------------------------------------------

func TestDetectMIMEType(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{name: "jpeg", content: jpegHead, want: "image/jpeg"},
		{name: "jpeg exactly three bytes", content: []byte{0xFF, 0xD8, 0xFF}, want: "image/jpeg"},
		{name: "png", content: pngHead, want: "image/png"},
		{name: "png signature only", content: pngHead[:8], want: "image/png"},
		{name: "truncated png", content: pngHead[:7], want: MIMETypeUnrecognized},
		{name: "empty file", content: nil, want: MIMETypeUnrecognized},
		{name: "gif", content: []byte("GIF89a......"), want: MIMETypeUnrecognized},
		{name: "text", content: []byte("hello world, not an image"), want: MIMETypeUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, "f.bin", tt.content)

			got, err := DetectMIMEType(p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectMIMEType_MissingFile(t *testing.T) {
	got, err := DetectMIMEType(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
	assert.Equal(t, MIMETypeUnrecognized, got)
}

// ---------------------------------------------------------------------------
// ValidateSignatures
// ---------------------------------------------------------------------------

func TestValidateSignatures(t *testing.T) {
	jpeg := models.UploadedFile{Path: writeFile(t, "a.jpg", jpegHead)}
	png := models.UploadedFile{Path: writeFile(t, "b.png", pngHead)}
	// declared as jpeg but carries text bytes
	disguised := models.UploadedFile{
		OriginalName: "evil.jpg",
		MIMEType:     "image/jpeg",
		Path:         writeFile(t, "evil.jpg", []byte("#!/bin/sh\necho")),
	}
	missing := models.UploadedFile{Path: filepath.Join(t.TempDir(), "gone.png")}

	t.Run("empty list is valid", func(t *testing.T) {
		assert.True(t, ValidateSignatures(nil, defaultAllowed))
	})

	t.Run("all recognized and allowed", func(t *testing.T) {
		assert.True(t, ValidateSignatures([]models.UploadedFile{jpeg, png}, defaultAllowed))
	})

	t.Run("one unrecognized fails the set", func(t *testing.T) {
		assert.False(t, ValidateSignatures([]models.UploadedFile{jpeg, disguised}, defaultAllowed))
	})

	t.Run("recognized but not allowed", func(t *testing.T) {
		assert.False(t, ValidateSignatures([]models.UploadedFile{png}, []string{"image/jpeg"}))
	})

	t.Run("unreadable file is unrecognized", func(t *testing.T) {
		assert.False(t, ValidateSignatures([]models.UploadedFile{missing}, defaultAllowed))
	})
}
