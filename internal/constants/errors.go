package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoSpaceConfigured = errors.New("no space configured, pass --space or set CDA_SPACE")
	ErrNoTokenConfigured = errors.New("no access token configured, pass --token or set CDA_TOKEN")
	ErrUnknownOutput     = errors.New("unknown output format")
)

// CLI argument errors.
var (
	ErrContentTypeArgRequired = errors.New("content type id argument is required")
	ErrEntryArgRequired       = errors.New("entry id argument is required")
	ErrAssetArgRequired       = errors.New("asset id argument is required")
)
