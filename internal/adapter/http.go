package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/utils"
	"github.com/MKhiriev/spotted-relay/models"
)

// Multipart field names sent to the mail API.
const (
	httpFieldFrom    = "from"
	httpFieldTo      = "to"
	httpFieldSubject = "subject"
	httpFieldHTML    = "html"
	httpFieldFile    = "attachment"
)

const traceIDHeader = "X-Trace-ID"

type httpMailRelay struct {
	client   *utils.HTTPClient
	endpoint string
	token    string
	from     string
	to       string
	subject  string

	logger *logger.Logger
}

// NewHTTPMailRelay constructs an implementation of [MailRelay] that posts
// every message as a multipart form to cfg.HTTP.Endpoint with a bearer
// token. Returns an error if the endpoint is empty or not a valid URL.
func NewHTTPMailRelay(cfg config.Mail, log *logger.Logger) (MailRelay, error) {
	endpoint, err := normalizeEndpoint(cfg.HTTP.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid mail api endpoint: %w", err)
	}

	client := utils.NewHTTPClient()
	if cfg.HTTP.Timeout > 0 {
		client.SetTimeout(cfg.HTTP.Timeout)
	}

	return &httpMailRelay{
		client:   client,
		endpoint: endpoint,
		token:    strings.TrimSpace(cfg.HTTP.Token),
		from:     cfg.Sender(),
		to:       cfg.Recipient(),
		subject:  cfg.Subject,
		logger:   log,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return u.String(), nil
}

func (h *httpMailRelay) Deliver(ctx context.Context, sender, message string, files []models.UploadedFile) error {
	body, err := renderMailBody(sender, message)
	if err != nil {
		return err
	}

	req := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			httpFieldFrom:    h.from,
			httpFieldTo:      h.to,
			httpFieldSubject: h.subject,
			httpFieldHTML:    body,
		})
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	for _, file := range files {
		f, openErr := os.Open(file.Path)
		if openErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingMessage, openErr)
		}
		defer f.Close()
		req.SetMultipartField(httpFieldFile, file.OriginalName, file.MIMEType, f)
	}

	resp, err := req.Post(h.endpoint)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpMailRelay.Deliver").Msg("mail api request failed")
		return fmt.Errorf("%w: %w", ErrSendingMessage, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpMailRelay.Deliver").Int("status", resp.StatusCode()).Msg("mail api rejected message")
		return fmt.Errorf("%w: %w", ErrSendingMessage, err)
	}

	return nil
}
