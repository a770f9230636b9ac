package pgsql

import (
	portsrepo "github.com/SscSPs/resale_hub/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres repository onto the same pool.
func NewRepositoryProvider(dbPool PgxPool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		ItemRepo:     newPgxItemRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
	}
}
