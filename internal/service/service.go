package service

import (
	"context"
	"time"

	"toollending-backend/internal/domain"
)

type TariffService interface {
	GetTariff(ctx context.Context) (*domain.Tariff, error)
	UpdateTariff(ctx context.Context, rates domain.Tariff) (*domain.Tariff, error)
	DailyRentFee(ctx context.Context) (int32, error)
	DailyLateFee(ctx context.Context) (int32, error)
	RepairFee(ctx context.Context) (int32, error)
}

type MovementService interface {
	RegisterMovement(ctx context.Context, tool *domain.Tool, movementType domain.MovementType, quantity int32, user *domain.User) (*domain.MovementRecord, error)
	GetMovementsByToolID(ctx context.Context, toolID int32) ([]domain.MovementRecord, error)
	GetMovementsByToolIDAndType(ctx context.Context, toolID int32, movementType domain.MovementType) ([]domain.MovementRecord, error)
	GetMovementsByDateRange(ctx context.Context, start, end *time.Time) ([]domain.MovementRecord, error)
	GetMovementsByDateRangeAndType(ctx context.Context, start, end *time.Time, movementType domain.MovementType) ([]domain.MovementRecord, error)
}

// ToolService owns tool stock and status. The stock operations are meant to
// run inside a loan transaction and expect the tool to be locked by the caller.
type ToolService interface {
	CreateTool(ctx context.Context, tool *domain.Tool, user *domain.User) (*domain.Tool, error)
	UpdateTool(ctx context.Context, id int32, name, category string, replacementValue int32) (*domain.Tool, error)
	DecommissionTool(ctx context.Context, id int32, user *domain.User) (*domain.Tool, error)
	AdjustStock(ctx context.Context, id int32, delta int32, movementType domain.MovementType, user *domain.User) (*domain.Tool, error)
	GetAllTools(ctx context.Context) ([]domain.Tool, error)
	GetToolByID(ctx context.Context, id int32) (*domain.Tool, error)

	IncrementStockForReturn(ctx context.Context, tool *domain.Tool, user *domain.User) error
	DecrementStockForLoan(ctx context.Context, tool *domain.Tool, user *domain.User) error
	MarkAsRepairing(ctx context.Context, tool *domain.Tool, user *domain.User) error
	MarkAsDecommissioned(ctx context.Context, tool *domain.Tool, user *domain.User) error
}

type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetAllClients(ctx context.Context) ([]domain.Client, error)
	GetClientByID(ctx context.Context, id int32) (*domain.Client, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ClientStatus) (*domain.Client, error)
	UpdateClientDetails(ctx context.Context, id int32, details domain.ClientDetails) (*domain.Client, error)
	AttemptReactivation(ctx context.Context, id int32) (*domain.Client, error)
}

type LoanService interface {
	CreateLoan(ctx context.Context, clientID, toolID int32, startDate, dueDate *time.Time, user *domain.User) (*domain.Loan, error)
	ReturnLoan(ctx context.Context, loanID, toolID int32, damaged, irreparable bool, user *domain.User, returnDate *time.Time) (*domain.Loan, error)
	MarkLoanAsPaid(ctx context.Context, loanID int32) (*domain.Loan, error)
	GetLoanByID(ctx context.Context, id int32) (*domain.Loan, error)
	GetAllLoans(ctx context.Context) ([]domain.Loan, error)
	GetActiveLoans(ctx context.Context) ([]domain.Loan, error)
	GetLateLoans(ctx context.Context) ([]domain.Loan, error)
	GetUnpaidReceivedLoansByClientID(ctx context.Context, clientID int32) ([]domain.Loan, error)
	MarkOverdueLoans(ctx context.Context, asOf time.Time) ([]int32, error)
}

type UserService interface {
	CreateUser(ctx context.Context, username, password string, role domain.UserRole) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ResolveActingUser(ctx context.Context) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type ReportService interface {
	LoansByStatus(ctx context.Context, status string, from, to *time.Time) ([]domain.Loan, error)
	ClientsWithLateLoans(ctx context.Context, from, to *time.Time) ([]domain.Client, error)
	TopTools(ctx context.Context, from, to *time.Time) ([]domain.ToolLoanCount, error)
	RestrictedClients(ctx context.Context) ([]domain.Client, error)
}
