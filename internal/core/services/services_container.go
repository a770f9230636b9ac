package services

import (
	portsrepo "github.com/SscSPs/resale_hub/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Stateless services first; the rest depend on them.
	container.Currency = NewCurrencyService()
	container.Classifier = NewClassifierService()

	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo, repos.ItemRepo, container.Currency)
	container.Item = NewItemService(repos.ItemRepo, container.Settings, container.Classifier)
	container.Customer = NewCustomerService(repos.CustomerRepo, WithMaxImageBytes(cfg.MaxImageBytes))

	return container
}
