// Package constants holds domain-level enumeration values shared across layers.
package constants

// Pub/Sub provider selection in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Password hash scheme selection in config.
const (
	// HashSchemeSHA256 is the unsalted SHA-256 hex digest the platform
	// shipped with. Kept as the default for compatibility with existing
	// password_hash rows.
	HashSchemeSHA256 = "sha256"

	// HashSchemeBcrypt is the salted, slow scheme recommended for new
	// deployments without legacy rows.
	HashSchemeBcrypt = "bcrypt"
)
