// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	authsys "github.com/oakhaven/schoolhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for SchoolHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: SCHOOLHUB_MONGO_URI, SCHOOLHUB_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "school_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "jwt_secret", Default: "", Desc: "Admin token signing secret (required)"},
	{Name: "token_ttl", Default: "168h", Desc: "Admin token lifetime (e.g., 168h, 24h)"},
	{Name: "cookie_domain", Default: "", Desc: "Auth cookie domain (blank means current host)"},

	{Name: "admin_email", Default: "", Desc: "Seeded admin email (required)"},
	{Name: "admin_password", Default: "", Desc: "Seeded admin password (required)"},
	{Name: "admin_name", Default: "Administrator", Desc: "Seeded admin display name"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SCHOOLHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret:    appValues.String("jwt_secret"),
		TokenTTL:     appValues.Duration("token_ttl", authsys.TokenTTL),
		CookieDomain: appValues.String("cookie_domain"),

		AdminEmail:    appValues.String("admin_email"),
		AdminPassword: appValues.String("admin_password"),
		AdminName:     appValues.String("admin_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// SchoolHub validates the MongoDB URI format and requires the token secret
// and seeded admin credentials so misconfiguration fails before connecting.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	if appCfg.TokenTTL < time.Minute {
		return fmt.Errorf("token_ttl must be at least one minute")
	}
	if appCfg.AdminEmail == "" || appCfg.AdminPassword == "" {
		return fmt.Errorf("admin_email and admin_password are required")
	}
	return nil
}
