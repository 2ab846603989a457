package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"
)

const clientColumns = `id, name, rut, phone, email, status`

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func scanClient(row rowScanner, c *domain.Client) error {
	return row.Scan(&c.ID, &c.Name, &c.Rut, &c.Phone, &c.Email, &c.Status)
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (name, rut, phone, email, status) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	logger.DatabaseCall("INSERT", query, "rut", c.Rut)
	err := conn(ctx, r.db).QueryRowContext(ctx, query, c.Name, c.Rut, c.Phone, c.Email, c.Status).Scan(&c.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err)
		return fmt.Errorf("failed to insert client: %w", mapError(err))
	}
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	return r.get(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
}

func (r *clientRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Client, error) {
	return r.get(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1 FOR UPDATE`, id)
}

func (r *clientRepository) get(ctx context.Context, query string, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	if err := scanClient(conn(ctx, r.db).QueryRowContext(ctx, query, id), c); err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name=$1, phone=$2, email=$3, status=$4 WHERE id=$5`
	logger.DatabaseCall("UPDATE", query, "clientID", c.ID, "status", c.Status)
	res, err := conn(ctx, r.db).ExecContext(ctx, query, c.Name, c.Phone, c.Email, c.Status, c.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return fmt.Errorf("failed to update client %d: %w", c.ID, err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, nil)
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *clientRepository) ExistsByID(ctx context.Context, id int32) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *clientRepository) ExistsByRut(ctx context.Context, rut string) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE rut = $1)`, rut).Scan(&exists)
	return exists, err
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
}

func (r *clientRepository) ListByStatus(ctx context.Context, status domain.ClientStatus) ([]domain.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients WHERE status = $1 ORDER BY id`, status)
}

func (r *clientRepository) list(ctx context.Context, query string, args ...any) ([]domain.Client, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func scanClients(rows *sql.Rows) ([]domain.Client, error) {
	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
