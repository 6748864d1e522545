// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Anibot is the canonical application identifier used for filesystem paths and CLI branding.
	Anibot = "anibot"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every request to the MyAnimeList API.
	UserAgent = Anibot + "/" + Version
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
