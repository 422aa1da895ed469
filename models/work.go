package models

import "time"

// WorkRecord is a job posting as exposed to clients. The author of a posting
// is never part of this type, so it cannot be serialized by any endpoint.
// Contact details are served only by the dedicated contact endpoint.
type WorkRecord struct {
	ID          string    `json:"_id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Contact holds the optional contact details of a job posting after they
// passed the output schema. Empty fields are omitted from responses.
type Contact struct {
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// ListQuery is a validated request for one page of the catalog.
type ListQuery struct {
	// Limit is the page size, 1..25.
	Limit int

	// Cursor is the id of the last item of the previous page. Empty means
	// the first page.
	Cursor string
}

// WorkPage is one page of the catalog, newest first.
type WorkPage struct {
	Items []WorkRecord `json:"items"`

	// NextCursor is nil when there are no further pages.
	NextCursor *string `json:"nextCursor"`
}

// ContactResponse wraps validated contact details for the contact endpoint.
type ContactResponse struct {
	Contact Contact `json:"contact"`
}

// FavoritesRequest is the body of the favorites batch check.
type FavoritesRequest struct {
	IDs []string `json:"ids"`
}

// MissingWork reports a favorite id that no longer matches a posting.
type MissingWork struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// FavoritesResult partitions requested favorite ids into postings that still
// exist and ids that do not.
type FavoritesResult struct {
	Found   []WorkRecord  `json:"found"`
	Missing []MissingWork `json:"missing"`
}

// RawContact is the contact sub-document exactly as stored, before it is
// checked against the output schema. A nil RawContact means the posting has
// no contact details.
type RawContact map[string]any
