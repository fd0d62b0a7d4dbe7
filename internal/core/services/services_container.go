package services

import (
	portsrepo "github.com/rovema/comercial-backend/internal/core/ports/repositories"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Geocoder first since the visit ledger depends on it.
	container.Geocoder = NewNominatimGeocoder(cfg)

	container.User = NewUserService(repos.UserRepo, cfg)
	container.Visit = NewVisitService(
		repos.VisitRepo,
		container.Geocoder,
		WithAccuracyLimit(cfg.GPSAccuracyLimitMeters),
	)
	container.Quota = NewQuotaService(repos.QuotaRepo, repos.UserRepo, repos.ReportingRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.Quota)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
