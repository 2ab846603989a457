package repository

import (
	"context"
	"errors"
	"time"

	"toollending-backend/internal/domain"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Transactor runs fn inside a single storage transaction. Repositories called
// with the context passed to fn take part in that transaction; a nested call
// joins the outer one.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	ExistsByID(ctx context.Context, id int32) (bool, error)
	List(ctx context.Context) ([]domain.Tool, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	ExistsByID(ctx context.Context, id int32) (bool, error)
	ExistsByRut(ctx context.Context, rut string) (bool, error)
	List(ctx context.Context) ([]domain.Client, error)
	ListByStatus(ctx context.Context, status domain.ClientStatus) ([]domain.Client, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error
	List(ctx context.Context) ([]domain.Loan, error)
	ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error)
	ListByClientAndStatus(ctx context.Context, clientID int32, status domain.LoanStatus) ([]domain.Loan, error)
	ListByClientAndStatusWithPenalty(ctx context.Context, clientID int32, status domain.LoanStatus) ([]domain.Loan, error)
	CountByClientAndStatuses(ctx context.Context, clientID int32, statuses ...domain.LoanStatus) (int64, error)
	ExistsOpenByClientAndTool(ctx context.Context, clientID, toolID int32) (bool, error)
	MarkOverdue(ctx context.Context, asOf time.Time) ([]int32, error)

	// Reporting
	ListByStatusAndStartDateBetween(ctx context.Context, status domain.LoanStatus, from, to time.Time) ([]domain.Loan, error)
	ListClientsByLoanStatus(ctx context.Context, status domain.LoanStatus, from, to *time.Time) ([]domain.Client, error)
	TopTools(ctx context.Context, from, to time.Time) ([]domain.ToolLoanCount, error)
}

// MovementFilter narrows ledger queries. Zero-valued fields are not applied.
type MovementFilter struct {
	ToolID int32
	Type   domain.MovementType
	From   *time.Time
	To     *time.Time
}

type MovementRepository interface {
	Create(ctx context.Context, movement *domain.MovementRecord) error
	List(ctx context.Context, filter MovementFilter) ([]domain.MovementRecord, error)
}

type TariffRepository interface {
	Get(ctx context.Context) (*domain.Tariff, error)
	Update(ctx context.Context, tariff *domain.Tariff) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
