// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself, before a request
// reaches the service layer.
var (
	// ErrInvalidJSONBody is returned when a JSON request body cannot be
	// decoded into the expected shape.
	ErrInvalidJSONBody = errors.New("invalid json body")

	// ErrJSONBodyTooLarge is returned when a JSON body exceeds the
	// configured limit.
	ErrJSONBodyTooLarge = errors.New("json body too large")

	// ErrUploadTooLarge is returned when a multipart upload exceeds the hard
	// body ceiling.
	ErrUploadTooLarge = errors.New("upload body too large")
)

// Client-facing messages.
const (
	MsgServerError       = "Wystąpił błąd serwera."
	MsgInvalidFileData   = "Nieprawidłowe dane pliku."
	MsgFileTooLarge      = "Pojedynczy plik nie może być większy niż 15 MB."
	MsgTotalSizeExceeded = "Łączny rozmiar wszystkich plików nie może przekroczyć 20 MB."
	MsgInvalidFileType   = "Nieprawidłowy typ pliku. Akceptowane typy to: .jpeg, .png, .jpg"
	MsgWorkNotFound      = "Ogloszenie nie istnieje."
	MsgContactIntegrity  = "Nieprawidlowe dane kontaktowe ogloszenia."
	MsgInvalidBody       = "Nieprawidlowe dane zapytania."
	MsgBodyTooLarge      = "Zbyt duze zapytanie."
	MsgUploadRateLimited = "Zbyt wiele żądań, spróbuj ponownie później."
	MsgAPIRateLimited    = "Zbyt wiele żądań API, spróbuj ponownie później."
	MsgRouteNotFound     = "Nie znaleziono."
	MsgUploadOK          = "ok"
)
