package store

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/MKhiriev/spotted-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// WorkRepository is the read-only access path to the job-posting catalog.
// Implementations never return the author of a posting, and never return
// contact details except through FindWorkContact.
type WorkRepository interface {
	// FindWorks returns at most n postings, newest id first. When cursor is
	// non-empty only postings with an id strictly below it are returned.
	FindWorks(ctx context.Context, cursor string, n int) ([]models.WorkRecord, error)

	// FindWorkByID returns one posting or ErrWorkNotFound.
	FindWorkByID(ctx context.Context, id string) (models.WorkRecord, error)

	// FindWorkContact returns the stored contact sub-document of a posting
	// or ErrWorkNotFound. A posting without contact details yields nil.
	FindWorkContact(ctx context.Context, id string) (models.RawContact, error)

	// FindWorksByIDs returns the postings whose ids are in ids, in no
	// particular order. Unknown ids are silently skipped.
	FindWorksByIDs(ctx context.Context, ids []string) ([]models.WorkRecord, error)
}

// UploadStorage persists the file parts of a multipart upload to temporary
// storage and removes them again.
type UploadStorage interface {
	// SaveUploads reads every part of the multipart body, writing "file"
	// parts to temporary files and collecting text fields. On any failure
	// the files already written are removed before returning.
	SaveUploads(ctx context.Context, body *multipart.Reader) (models.UploadRequest, error)

	// Remove deletes the file at path. A missing file is not an error.
	Remove(path string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// StaleUploadSweeper removes temporary upload files that outlived every
// request that could still own them, such as leftovers of a crashed process.
type StaleUploadSweeper interface {
	SweepStale(ctx context.Context, olderThan time.Duration) (int, error)
}
