package models

// ErrorResponse is the body of every non-2xx JSON response. It always carries
// exactly one client-facing message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of a successful upload.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
