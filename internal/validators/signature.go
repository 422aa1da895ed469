package validators

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/MKhiriev/spotted-relay/models"
)

// MIMETypeUnrecognized is returned by DetectMIMEType when the leading bytes
// match no known signature.
const MIMETypeUnrecognized = ""

// signatureProbeSize is the number of leading bytes inspected.
const signatureProbeSize = 12

type magicSignature struct {
	mime  string
	magic []byte
}

var magicSignatures = []magicSignature{
	{mime: "image/jpeg", magic: []byte{0xFF, 0xD8, 0xFF}},
	{mime: "image/png", magic: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
}

// DetectMIMEType sniffs the content type of the file at path from its
// leading bytes. Client-supplied names and content types are never used.
func DetectMIMEType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return MIMETypeUnrecognized, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, signatureProbeSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return MIMETypeUnrecognized, fmt.Errorf("read %s: %w", path, err)
	}

	return matchSignature(buf[:n]), nil
}

func matchSignature(head []byte) string {
	for _, sig := range magicSignatures {
		if bytes.HasPrefix(head, sig.magic) {
			return sig.mime
		}
	}
	return MIMETypeUnrecognized
}

// ValidateSignatures reports whether every file's sniffed type is recognized
// and allowed. It stops at the first failure; an empty list is valid.
func ValidateSignatures(files []models.UploadedFile, allowed []string) bool {
	for _, file := range files {
		detected, err := DetectMIMEType(file.Path)
		if err != nil || detected == MIMETypeUnrecognized {
			return false
		}
		if !slices.Contains(allowed, detected) {
			return false
		}
	}
	return true
}
