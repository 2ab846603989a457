package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"
)

type tariffRepository struct {
	db *sql.DB
}

func NewTariffRepository(db *sql.DB) repository.TariffRepository {
	return &tariffRepository{db: db}
}

// Get returns the single tariff row, the one with the lowest id if more exist.
func (r *tariffRepository) Get(ctx context.Context) (*domain.Tariff, error) {
	t := &domain.Tariff{}
	query := `SELECT id, daily_rent_fee, daily_late_fee, repair_fee FROM tariffs ORDER BY id LIMIT 1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query).Scan(&t.ID, &t.DailyRentFee, &t.DailyLateFee, &t.RepairFee)
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *tariffRepository) Update(ctx context.Context, t *domain.Tariff) error {
	query := `UPDATE tariffs SET daily_rent_fee=$1, daily_late_fee=$2, repair_fee=$3 WHERE id=$4`
	logger.DatabaseCall("UPDATE", query, "tariffID", t.ID)
	res, err := conn(ctx, r.db).ExecContext(ctx, query, t.DailyRentFee, t.DailyLateFee, t.RepairFee, t.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return fmt.Errorf("failed to update tariff: %w", err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, nil)
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
