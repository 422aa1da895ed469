package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrWorkNotFound is returned when no posting has the requested id.
	ErrWorkNotFound = errors.New("work was not found")

	// ErrQueryingWorks wraps every back-end failure while reading the
	// catalog, whichever driver is in use.
	ErrQueryingWorks = errors.New("error querying works")

	// ErrInvalidWorkID is returned when an id cannot be converted to the
	// back end's key type. Ids are validated before they reach the store,
	// so this indicates a programming error.
	ErrInvalidWorkID = errors.New("invalid work id")
)

// Low-level database operation errors. These are wrapped together with
// [ErrQueryingWorks] by the SQL repository.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan work row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan work rows")
)

// Upload transport errors returned by [UploadStorage.SaveUploads].
var (
	// ErrTooManyFiles is returned when the body carries more file parts
	// than allowed.
	ErrTooManyFiles = errors.New("too many files in upload")

	// ErrFileTooLarge is returned when a single file part exceeds the
	// per-file size limit.
	ErrFileTooLarge = errors.New("uploaded file is too large")

	// ErrFileTypeRejected is returned when a file part declares a content
	// type or extension outside the allowed sets.
	ErrFileTypeRejected = errors.New("uploaded file type rejected")

	// ErrMalformedUpload is returned when the multipart body cannot be read.
	ErrMalformedUpload = errors.New("malformed multipart upload")

	// ErrSavingUpload is returned when a temporary file cannot be written.
	ErrSavingUpload = errors.New("failed to save uploaded file")
)
