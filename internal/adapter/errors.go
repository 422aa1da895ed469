package adapter

import "errors"

var (
	ErrUnknownMailDriver = errors.New("unknown mail driver")
	ErrBuildingMessage   = errors.New("error building mail message")
	ErrSendingMessage    = errors.New("error sending mail message")
)

// Mail API response errors.
var (
	ErrBadRequest          = errors.New("mail api rejected the request")
	ErrUnauthorized        = errors.New("mail api unauthorized")
	ErrTooManyRequests     = errors.New("mail api rate limited")
	ErrInternalServerError = errors.New("mail api internal error")
	ErrBadGateway          = errors.New("mail api unavailable")
)
