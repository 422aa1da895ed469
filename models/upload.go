package models

// UploadedFile describes one file of a contact-form upload that the transport
// layer has already persisted to temporary storage.
type UploadedFile struct {
	// OriginalName is the file name supplied by the client.
	OriginalName string

	// StoredName is the server-assigned name (timestamp, random part and
	// sanitized original name) under which the file was written.
	StoredName string

	// Path is the absolute location of the temporary file.
	Path string

	// Size is the number of bytes written to Path.
	Size int64

	// MIMEType is the content type declared by the client. It is never
	// trusted for validation; the byte signature is.
	MIMEType string
}

// UploadRequest is a single contact-form submission: who sends it, the
// message and up to a configured number of image attachments.
type UploadRequest struct {
	Sender  string
	Message string
	Files   []UploadedFile
}

// TotalSize returns the sum of sizes of all files in the request.
func (r UploadRequest) TotalSize() int64 {
	var total int64
	for _, f := range r.Files {
		total += f.Size
	}
	return total
}
