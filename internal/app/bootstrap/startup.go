// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/oakhaven/schoolhub/internal/app/store/admins"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. SchoolHub
// uses it to seed the admin account so the back office is reachable on a
// fresh database.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	admins := adminstore.New(deps.MongoDatabase)
	created, err := admins.Seed(ctx, appCfg.AdminEmail, appCfg.AdminPassword, appCfg.AdminName)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		logger.Info("seeded admin account", zap.String("email", appCfg.AdminEmail))
	}
	return nil
}
