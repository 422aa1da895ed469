package config

import (
	"net/url"
	"strconv"
)

// ConnectionURI returns the MongoDB connection string. An explicit URI wins;
// otherwise it is assembled from the discrete fields with credentials
// percent-encoded.
func (m Mongo) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}

	protocol := m.Protocol
	if protocol == "" {
		protocol = "mongodb"
	}

	u := url.URL{
		Scheme: protocol,
		Host:   m.Host,
		Path:   "/" + m.DBName,
	}
	if protocol != "mongodb+srv" && m.Port > 0 {
		u.Host = m.Host + ":" + strconv.Itoa(m.Port)
	}
	if m.User != "" {
		u.User = url.UserPassword(decodeCredential(m.User), decodeCredential(m.Password))
	}

	return u.String()
}

// decodeCredential accepts both raw and already percent-encoded credentials
// so that they are encoded exactly once.
func decodeCredential(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}
