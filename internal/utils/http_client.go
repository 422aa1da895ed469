package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the relay in outgoing requests.
const UserAgent = "spotted-relay"

// HTTPClient wraps resty.Client for outgoing calls such as the mail API.
// Embedding exposes every resty method directly.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetFormData(fields).Post(endpoint)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Retries are disabled: a failed delivery is reported, never repeated.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)
	return &HTTPClient{Client: client}
}
