package http_test

import (
	"context"
	"time"

	"toollending-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, username, password string, role domain.UserRole) (*domain.User, error) {
	args := m.Called(ctx, username, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockUserService) ResolveActingUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockToolService
type MockToolService struct {
	mock.Mock
}

func (m *MockToolService) CreateTool(ctx context.Context, tool *domain.Tool, user *domain.User) (*domain.Tool, error) {
	args := m.Called(ctx, tool, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) UpdateTool(ctx context.Context, id int32, name, category string, replacementValue int32) (*domain.Tool, error) {
	args := m.Called(ctx, id, name, category, replacementValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) DecommissionTool(ctx context.Context, id int32, user *domain.User) (*domain.Tool, error) {
	args := m.Called(ctx, id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) AdjustStock(ctx context.Context, id int32, delta int32, movementType domain.MovementType, user *domain.User) (*domain.Tool, error) {
	args := m.Called(ctx, id, delta, movementType, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) GetAllTools(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolService) GetToolByID(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) IncrementStockForReturn(ctx context.Context, tool *domain.Tool, user *domain.User) error {
	return m.Called(ctx, tool, user).Error(0)
}
func (m *MockToolService) DecrementStockForLoan(ctx context.Context, tool *domain.Tool, user *domain.User) error {
	return m.Called(ctx, tool, user).Error(0)
}
func (m *MockToolService) MarkAsRepairing(ctx context.Context, tool *domain.Tool, user *domain.User) error {
	return m.Called(ctx, tool, user).Error(0)
}
func (m *MockToolService) MarkAsDecommissioned(ctx context.Context, tool *domain.Tool, user *domain.User) error {
	return m.Called(ctx, tool, user).Error(0)
}

// MockTariffService
type MockTariffService struct {
	mock.Mock
}

func (m *MockTariffService) GetTariff(ctx context.Context) (*domain.Tariff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}
func (m *MockTariffService) UpdateTariff(ctx context.Context, rates domain.Tariff) (*domain.Tariff, error) {
	args := m.Called(ctx, rates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}
func (m *MockTariffService) DailyRentFee(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockTariffService) DailyLateFee(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockTariffService) RepairFee(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockClientService
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) GetAllClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) GetClientByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateStatus(ctx context.Context, id int32, status domain.ClientStatus) (*domain.Client, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClientDetails(ctx context.Context, id int32, details domain.ClientDetails) (*domain.Client, error) {
	args := m.Called(ctx, id, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) AttemptReactivation(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// MockLoanService
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) CreateLoan(ctx context.Context, clientID, toolID int32, startDate, dueDate *time.Time, user *domain.User) (*domain.Loan, error) {
	args := m.Called(ctx, clientID, toolID, startDate, dueDate, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) ReturnLoan(ctx context.Context, loanID, toolID int32, damaged, irreparable bool, user *domain.User, returnDate *time.Time) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, toolID, damaged, irreparable, user, returnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) MarkLoanAsPaid(ctx context.Context, loanID int32) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) GetLoanByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) GetAllLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) GetActiveLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) GetLateLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) GetUnpaidReceivedLoansByClientID(ctx context.Context, clientID int32) ([]domain.Loan, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) MarkOverdueLoans(ctx context.Context, asOf time.Time) ([]int32, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]int32), args.Error(1)
}

// MockMovementService
type MockMovementService struct {
	mock.Mock
}

func (m *MockMovementService) RegisterMovement(ctx context.Context, tool *domain.Tool, movementType domain.MovementType, quantity int32, user *domain.User) (*domain.MovementRecord, error) {
	args := m.Called(ctx, tool, movementType, quantity, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovementRecord), args.Error(1)
}
func (m *MockMovementService) GetMovementsByToolID(ctx context.Context, toolID int32) ([]domain.MovementRecord, error) {
	args := m.Called(ctx, toolID)
	return args.Get(0).([]domain.MovementRecord), args.Error(1)
}
func (m *MockMovementService) GetMovementsByToolIDAndType(ctx context.Context, toolID int32, movementType domain.MovementType) ([]domain.MovementRecord, error) {
	args := m.Called(ctx, toolID, movementType)
	return args.Get(0).([]domain.MovementRecord), args.Error(1)
}
func (m *MockMovementService) GetMovementsByDateRange(ctx context.Context, start, end *time.Time) ([]domain.MovementRecord, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.MovementRecord), args.Error(1)
}
func (m *MockMovementService) GetMovementsByDateRangeAndType(ctx context.Context, start, end *time.Time, movementType domain.MovementType) ([]domain.MovementRecord, error) {
	args := m.Called(ctx, start, end, movementType)
	return args.Get(0).([]domain.MovementRecord), args.Error(1)
}

// MockReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) LoansByStatus(ctx context.Context, status string, from, to *time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, status, from, to)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockReportService) ClientsWithLateLoans(ctx context.Context, from, to *time.Time) ([]domain.Client, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockReportService) TopTools(ctx context.Context, from, to *time.Time) ([]domain.ToolLoanCount, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.ToolLoanCount), args.Error(1)
}
func (m *MockReportService) RestrictedClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}
