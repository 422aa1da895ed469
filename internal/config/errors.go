package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, an empty address or a non-positive body limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUploadConfigs indicates inconsistent upload limits.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage driver or
	// missing connection settings for the selected one.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidMailConfigs indicates an unknown mail driver or missing
	// relay settings for the selected one.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidSecurityConfigs indicates an unparsable trust-proxy value
	// or a non-positive rate limit.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
)
