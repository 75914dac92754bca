// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// CORS). AppConfig is everything specific to this application: the MongoDB
// connection, the JWT signing material for the admin back office, and the
// seeded admin account.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max driver connection pool size
	MongoMinPoolSize uint64 // Min driver connection pool size

	// Admin token configuration
	JWTSecret string        // Secret for signing admin tokens (must be strong in production)
	TokenTTL  time.Duration // Admin token lifetime

	// Auth cookie configuration
	CookieDomain string // Cookie domain (blank means current host)

	// Seeded admin account, created on startup if absent
	AdminEmail    string
	AdminPassword string
	AdminName     string
}
