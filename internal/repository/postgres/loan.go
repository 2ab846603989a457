package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"

	"github.com/doug-martin/goqu/v9"
)

const loanColumns = `id, client_id, tool_id, start_date, due_date, return_date, status, total_penalty`

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

func scanLoan(row rowScanner, l *domain.Loan) error {
	var returnDate sql.NullTime
	if err := row.Scan(&l.ID, &l.ClientID, &l.ToolID, &l.StartDate, &l.DueDate, &returnDate, &l.Status, &l.TotalPenalty); err != nil {
		return err
	}
	if returnDate.Valid {
		t := returnDate.Time
		l.ReturnDate = &t
	}
	return nil
}

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (client_id, tool_id, start_date, due_date, return_date, status, total_penalty)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	logger.DatabaseCall("INSERT", query, "clientID", l.ClientID, "toolID", l.ToolID)
	err := conn(ctx, r.db).QueryRowContext(ctx, query, l.ClientID, l.ToolID, l.StartDate, l.DueDate, l.ReturnDate, l.Status, l.TotalPenalty).Scan(&l.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err)
		return fmt.Errorf("failed to insert loan: %w", mapError(err))
	}
	return nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	return r.get(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, id)
}

func (r *loanRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Loan, error) {
	return r.get(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1 FOR UPDATE`, id)
}

func (r *loanRepository) get(ctx context.Context, query string, id int32) (*domain.Loan, error) {
	l := &domain.Loan{}
	if err := scanLoan(conn(ctx, r.db).QueryRowContext(ctx, query, id), l); err != nil {
		return nil, mapError(err)
	}
	return l, nil
}

func (r *loanRepository) Update(ctx context.Context, l *domain.Loan) error {
	query := `UPDATE loans SET start_date=$1, due_date=$2, return_date=$3, status=$4, total_penalty=$5 WHERE id=$6`
	logger.DatabaseCall("UPDATE", query, "loanID", l.ID, "status", l.Status)
	res, err := conn(ctx, r.db).ExecContext(ctx, query, l.StartDate, l.DueDate, l.ReturnDate, l.Status, l.TotalPenalty, l.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return fmt.Errorf("failed to update loan %d: %w", l.ID, err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, nil)
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *loanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans ORDER BY id`)
}

func (r *loanRepository) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE status = $1 ORDER BY id`, status)
}

func (r *loanRepository) ListByClientAndStatus(ctx context.Context, clientID int32, status domain.LoanStatus) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE client_id = $1 AND status = $2 ORDER BY id`, clientID, status)
}

func (r *loanRepository) ListByClientAndStatusWithPenalty(ctx context.Context, clientID int32, status domain.LoanStatus) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE client_id = $1 AND status = $2 AND total_penalty > 0 ORDER BY id`, clientID, status)
}

func (r *loanRepository) CountByClientAndStatuses(ctx context.Context, clientID int32, statuses ...domain.LoanStatus) (int64, error) {
	values := make([]any, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	query, args, err := goqu.Dialect(dialectPostgres).
		From("loans").
		Select(goqu.COUNT("*")).
		Where(goqu.C("client_id").Eq(clientID), goqu.C("status").In(values...)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build loan count query: %w", err)
	}

	var count int64
	if err := conn(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *loanRepository) ExistsOpenByClientAndTool(ctx context.Context, clientID, toolID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM loans WHERE client_id = $1 AND tool_id = $2 AND status IN ($3, $4))`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, clientID, toolID, domain.LoanStatusActive, domain.LoanStatusLate).Scan(&exists)
	return exists, err
}

// MarkOverdue flips every ACTIVE loan due before asOf to LATE in one statement.
func (r *loanRepository) MarkOverdue(ctx context.Context, asOf time.Time) ([]int32, error) {
	query := `UPDATE loans SET status = $1 WHERE status = $2 AND due_date < $3 RETURNING id`
	logger.DatabaseCall("UPDATE", query, "asOf", asOf)
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, domain.LoanStatusLate, domain.LoanStatusActive, asOf)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return nil, fmt.Errorf("failed to mark overdue loans: %w", err)
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("UPDATE", int64(len(ids)), nil)
	return ids, nil
}

func (r *loanRepository) ListByStatusAndStartDateBetween(ctx context.Context, status domain.LoanStatus, from, to time.Time) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE status = $1 AND start_date BETWEEN $2 AND $3 ORDER BY start_date, id`, status, from, to)
}

func (r *loanRepository) ListClientsByLoanStatus(ctx context.Context, status domain.LoanStatus, from, to *time.Time) ([]domain.Client, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("clients").As("c")).
		Join(goqu.T("loans").As("l"), goqu.On(goqu.I("l.client_id").Eq(goqu.I("c.id")))).
		Select(goqu.I("c.id"), goqu.I("c.name"), goqu.I("c.rut"), goqu.I("c.phone"), goqu.I("c.email"), goqu.I("c.status")).
		Distinct().
		Where(goqu.I("l.status").Eq(string(status))).
		Order(goqu.I("c.id").Asc()).
		Prepared(true)
	if from != nil && to != nil {
		ds = ds.Where(goqu.I("l.start_date").Between(goqu.Range(*from, *to)))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build client report query: %w", err)
	}
	logger.DatabaseCall("SELECT", query, "status", status)

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func (r *loanRepository) TopTools(ctx context.Context, from, to time.Time) ([]domain.ToolLoanCount, error) {
	query, args, err := goqu.Dialect(dialectPostgres).
		From(goqu.T("loans").As("l")).
		Join(goqu.T("tools").As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("l.tool_id")))).
		Select(
			goqu.I("t.id"), goqu.I("t.name"), goqu.I("t.category"), goqu.I("t.status"),
			goqu.I("t.stock"), goqu.I("t.in_repair"), goqu.I("t.replacement_value"),
			goqu.COUNT(goqu.I("l.id")).As("total"),
		).
		Where(goqu.I("l.start_date").Between(goqu.Range(from, to))).
		GroupBy(goqu.I("t.id")).
		Order(goqu.I("total").Desc(), goqu.I("t.id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build top tools query: %w", err)
	}
	logger.DatabaseCall("SELECT", query, "from", from, "to", to)

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ToolLoanCount
	for rows.Next() {
		var tc domain.ToolLoanCount
		t := &tc.Tool
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Status, &t.Stock, &t.InRepair, &t.ReplacementValue, &tc.Total); err != nil {
			return nil, err
		}
		result = append(result, tc)
	}
	return result, rows.Err()
}

func (r *loanRepository) list(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		if err := scanLoan(rows, &l); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
