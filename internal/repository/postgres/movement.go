package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const (
	dialectPostgres = "postgres"
	movementTable   = "movements"
)

type movementRepository struct {
	db *sql.DB
}

func NewMovementRepository(db *sql.DB) repository.MovementRepository {
	return &movementRepository{db: db}
}

func (r *movementRepository) Create(ctx context.Context, m *domain.MovementRecord) error {
	query := `INSERT INTO movements (tool_id, movement_type, movement_date, quantity, user_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	logger.DatabaseCall("INSERT", query, "toolID", m.ToolID, "type", m.Type, "quantity", m.Quantity)
	err := conn(ctx, r.db).QueryRowContext(ctx, query, m.ToolID, m.Type, m.MovementDate, m.Quantity, m.UserID).Scan(&m.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err)
		return fmt.Errorf("failed to insert movement: %w", mapError(err))
	}
	return nil
}

// List returns the movements matching filter in chronological order, oldest
// first, ties broken by id.
func (r *movementRepository) List(ctx context.Context, filter repository.MovementFilter) ([]domain.MovementRecord, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(movementTable).
		Select("id", "tool_id", "movement_type", "movement_date", "quantity", "user_id").
		Order(goqu.I("movement_date").Asc(), goqu.I("id").Asc()).
		Prepared(true)

	if filter.ToolID != 0 {
		ds = ds.Where(goqu.C("tool_id").Eq(filter.ToolID))
	}
	if filter.Type != "" {
		ds = ds.Where(goqu.C("movement_type").Eq(string(filter.Type)))
	}
	if filter.From != nil {
		ds = ds.Where(goqu.C("movement_date").Gte(*filter.From))
	}
	if filter.To != nil {
		ds = ds.Where(goqu.C("movement_date").Lte(*filter.To))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build movement query: %w", err)
	}
	logger.DatabaseCall("SELECT", query, "toolID", filter.ToolID, "type", filter.Type)

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []domain.MovementRecord
	for rows.Next() {
		var m domain.MovementRecord
		if err := rows.Scan(&m.ID, &m.ToolID, &m.Type, &m.MovementDate, &m.Quantity, &m.UserID); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
