package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/priceworks/price_calculator_app/internal/core/ports/repositories"
)

// NewRepositoryProvider creates all pgx-backed repositories sharing one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ItemRepo:     newPgxItemRepository(pool),
		SettingsRepo: newPgxSettingsRepository(pool),
	}
}
