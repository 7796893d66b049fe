package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
	portsrepo "github.com/priceworks/price_calculator_app/internal/core/ports/repositories"
	"github.com/priceworks/price_calculator_app/internal/models"
	"github.com/priceworks/price_calculator_app/internal/utils/mapping"
)

// settingsRowID pins the singleton row; exactly one settings record exists.
const settingsRowID = 1

// PgxSettingsRepository implements the ports SettingsRepositoryFacade using pgxpool.
type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the settings singleton.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetSettings retrieves the settings row, or the hard-coded defaults when no
// row has ever been written.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT tax_rate_percent, usd_to_inr_rate, created_at, last_updated_at
		FROM settings
		WHERE id = $1;
	`

	var modelSettings models.Settings
	err := r.Pool.QueryRow(ctx, query, settingsRowID).Scan(
		&modelSettings.TaxRatePercent,
		&modelSettings.USDToINRRate,
		&modelSettings.CreatedAt,
		&modelSettings.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, apperrors.NewAppError(500, "failed to get settings", err)
	}

	domainSettings := mapping.ToDomainSettings(modelSettings)
	return &domainSettings, nil
}

// SaveSettings replaces the settings row in place (upsert on the fixed ID).
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	modelSettings := mapping.ToModelSettings(settings)

	query := `
		INSERT INTO settings (id, tax_rate_percent, usd_to_inr_rate, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			tax_rate_percent = EXCLUDED.tax_rate_percent,
			usd_to_inr_rate = EXCLUDED.usd_to_inr_rate,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		settingsRowID,
		modelSettings.TaxRatePercent,
		modelSettings.USDToINRRate,
		modelSettings.CreatedAt,
		modelSettings.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save settings", err)
	}
	return nil
}
