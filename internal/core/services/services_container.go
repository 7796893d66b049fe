package services

import (
	portsrepo "github.com/priceworks/price_calculator_app/internal/core/ports/repositories"
	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, rateFetcher portssvc.RateFetcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first: item creation and summaries read the current settings.
	container.Settings = NewSettingsService(repos.SettingsRepo, rateFetcher)
	container.Item = NewItemService(repos.ItemRepo, container.Settings)
	container.Summary = NewSummaryService(repos.ItemRepo, container.Settings)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.ItemSvcFacade     = (*itemService)(nil)
	_ portssvc.SettingsSvcFacade = (*settingsService)(nil)
	_ portssvc.SummarySvcFacade  = (*summaryService)(nil)
)
