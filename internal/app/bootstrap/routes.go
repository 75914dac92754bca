// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	academicsfeature "github.com/oakhaven/schoolhub/internal/app/features/academics"
	activitiesfeature "github.com/oakhaven/schoolhub/internal/app/features/activities"
	admissionsfeature "github.com/oakhaven/schoolhub/internal/app/features/admissions"
	authfeature "github.com/oakhaven/schoolhub/internal/app/features/auth"
	contactsfeature "github.com/oakhaven/schoolhub/internal/app/features/contacts"
	eventsfeature "github.com/oakhaven/schoolhub/internal/app/features/events"
	featuresfeature "github.com/oakhaven/schoolhub/internal/app/features/features"
	healthfeature "github.com/oakhaven/schoolhub/internal/app/features/health"
	homestatsfeature "github.com/oakhaven/schoolhub/internal/app/features/homestats"
	jobapplicationsfeature "github.com/oakhaven/schoolhub/internal/app/features/jobapplications"
	jobsfeature "github.com/oakhaven/schoolhub/internal/app/features/jobs"
	parentsfeature "github.com/oakhaven/schoolhub/internal/app/features/parents"
	schoolinfofeature "github.com/oakhaven/schoolhub/internal/app/features/schoolinfo"
	servicesfeature "github.com/oakhaven/schoolhub/internal/app/features/services"
	sysauth "github.com/oakhaven/schoolhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. SchoolHub mounts the health endpoints,
// the admin auth feature, and one API router per content resource. Each
// feature router decides internally which of its routes sit behind the
// admin gate.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens := sysauth.NewTokens(appCfg.JWTSecret, appCfg.TokenTTL)
	cookies := sysauth.CookieOptions{
		Domain: appCfg.CookieDomain,
		Secure: coreCfg.Env == "prod",
	}

	r := chi.NewRouter()

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Admin authentication
	authHandler := authfeature.NewHandler(deps.MongoDatabase, tokens, cookies, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler, tokens))

	// Site content resources
	r.Mount("/api/academic-programs",
		academicsfeature.Routes(academicsfeature.NewHandler(deps.MongoDatabase, logger), tokens))
	r.Mount("/api/activities",
		activitiesfeature.Routes(activitiesfeature.NewHandler(deps.MongoDatabase, logger), tokens))
	r.Mount("/api/events",
		eventsfeature.Routes(eventsfeature.NewHandler(deps.MongoDatabase, logger), tokens))
	r.Mount("/api/features",
		featuresfeature.Routes(featuresfeature.NewHandler(deps.MongoDatabase, logger), tokens))
	r.Mount("/api/services",
		servicesfeature.Routes(servicesfeature.NewHandler(deps.MongoDatabase, logger), tokens))
	r.Mount("/api/parents",
		parentsfeature.Routes(parentsfeature.NewHandler(deps.MongoDatabase, logger), tokens))

	// Singleton documents
	r.Mount("/api/home-stats",
		homestatsfeature.Routes(homestatsfeature.NewHandler(deps.MongoDatabase, logger), tokens))
	r.Mount("/api/school-info",
		schoolinfofeature.Routes(schoolinfofeature.NewHandler(deps.MongoDatabase, logger), tokens))

	// Public submissions with gated back-office views
	r.Mount("/api/admissions",
		admissionsfeature.Routes(admissionsfeature.NewHandler(deps.MongoDatabase, logger), tokens))
	r.Mount("/api/contacts",
		contactsfeature.Routes(contactsfeature.NewHandler(deps.MongoDatabase, logger), tokens))

	// Careers
	r.Mount("/api/jobs",
		jobsfeature.Routes(jobsfeature.NewHandler(deps.MongoDatabase, logger), tokens))
	r.Mount("/api/job-applications",
		jobapplicationsfeature.Routes(jobapplicationsfeature.NewHandler(deps.MongoDatabase, logger), tokens))

	return r, nil
}
