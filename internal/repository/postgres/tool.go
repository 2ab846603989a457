package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"
)

const toolColumns = `id, name, category, status, stock, in_repair, replacement_value`

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTool(row rowScanner, t *domain.Tool) error {
	return row.Scan(&t.ID, &t.Name, &t.Category, &t.Status, &t.Stock, &t.InRepair, &t.ReplacementValue)
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (name, category, status, stock, in_repair, replacement_value)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	logger.DatabaseCall("INSERT", query, "name", t.Name)
	err := conn(ctx, r.db).QueryRowContext(ctx, query, t.Name, t.Category, t.Status, t.Stock, t.InRepair, t.ReplacementValue).Scan(&t.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err)
		return fmt.Errorf("failed to insert tool: %w", mapError(err))
	}
	return nil
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	return r.get(ctx, `SELECT `+toolColumns+` FROM tools WHERE id = $1`, id)
}

func (r *toolRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Tool, error) {
	return r.get(ctx, `SELECT `+toolColumns+` FROM tools WHERE id = $1 FOR UPDATE`, id)
}

func (r *toolRepository) get(ctx context.Context, query string, id int32) (*domain.Tool, error) {
	t := &domain.Tool{}
	if err := scanTool(conn(ctx, r.db).QueryRowContext(ctx, query, id), t); err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, category=$2, status=$3, stock=$4, in_repair=$5, replacement_value=$6 WHERE id=$7`
	logger.DatabaseCall("UPDATE", query, "toolID", t.ID)
	res, err := conn(ctx, r.db).ExecContext(ctx, query, t.Name, t.Category, t.Status, t.Stock, t.InRepair, t.ReplacementValue, t.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return fmt.Errorf("failed to update tool %d: %w", t.ID, err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, nil)
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *toolRepository) ExistsByID(ctx context.Context, id int32) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM tools WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `SELECT `+toolColumns+` FROM tools ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		if err := scanTool(rows, &t); err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}
