package service

import (
	"context"
	"time"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"
	"toollending-backend/internal/utils"
)

type loanService struct {
	tx         repository.Transactor
	loanRepo   repository.LoanRepository
	clientRepo repository.ClientRepository
	toolRepo   repository.ToolRepository
	tools      ToolService
	tariffs    TariffService
	today      func() time.Time
}

func NewLoanService(
	tx repository.Transactor,
	loanRepo repository.LoanRepository,
	clientRepo repository.ClientRepository,
	toolRepo repository.ToolRepository,
	tools ToolService,
	tariffs TariffService,
) LoanService {
	return &loanService{
		tx:         tx,
		loanRepo:   loanRepo,
		clientRepo: clientRepo,
		toolRepo:   toolRepo,
		tools:      tools,
		tariffs:    tariffs,
		today:      utils.Today,
	}
}

// CreateLoan lends one unit of a tool to a client. Eligibility is checked in a
// fixed order and the first failure is returned with nothing written.
func (s *loanService) CreateLoan(ctx context.Context, clientID, toolID int32, startDate, dueDate *time.Time, user *domain.User) (*domain.Loan, error) {
	logger.EnterMethod("loanService.CreateLoan", "clientID", clientID, "toolID", toolID)

	var loan *domain.Loan
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		client, err := s.clientRepo.GetByIDForUpdate(ctx, clientID)
		if err != nil {
			return notFound(err, "Client not found with id: %d", clientID)
		}
		tool, err := s.toolRepo.GetByIDForUpdate(ctx, toolID)
		if err != nil {
			return notFound(err, "Tool not found with id: %d", toolID)
		}

		if client.Status == domain.ClientStatusRestricted {
			return domain.InvalidOperation("Client is restricted and cannot request loans.")
		}

		late, err := s.loanRepo.CountByClientAndStatuses(ctx, clientID, domain.LoanStatusLate)
		if err != nil {
			return err
		}
		if late > 0 {
			return domain.InvalidOperation("Client has %d late loan(s) that must be returned.", late)
		}

		owed, err := s.loanRepo.ListByClientAndStatusWithPenalty(ctx, clientID, domain.LoanStatusReceived)
		if err != nil {
			return err
		}
		if len(owed) > 0 {
			return domain.InvalidOperation("Client has outstanding payments due for %d previous loan(s).", len(owed))
		}

		if !tool.IsLendable() {
			return domain.InvalidOperation("Tool is not available or out of stock.")
		}

		start := s.today()
		if startDate != nil {
			start = utils.TruncateToDate(*startDate)
		}
		if dueDate == nil {
			return domain.InvalidArgument("dueDate is required.")
		}
		due := utils.TruncateToDate(*dueDate)
		if due.Before(start) {
			return domain.InvalidArgument("Due date cannot be before start date.")
		}

		open, err := s.loanRepo.CountByClientAndStatuses(ctx, clientID, domain.LoanStatusActive, domain.LoanStatusLate)
		if err != nil {
			return err
		}
		if open >= domain.MaxOpenLoansPerClient {
			return domain.InvalidOperation("Client has reached the maximum number of active/late loans (%d).", domain.MaxOpenLoansPerClient)
		}

		holds, err := s.loanRepo.ExistsOpenByClientAndTool(ctx, clientID, toolID)
		if err != nil {
			return err
		}
		if holds {
			return domain.InvalidOperation("Client already has an active or late loan for this tool.")
		}

		loan = &domain.Loan{
			ClientID:  clientID,
			ToolID:    toolID,
			StartDate: start,
			DueDate:   due,
			Status:    domain.LoanStatusActive,
		}
		if err := s.tools.DecrementStockForLoan(ctx, tool, user); err != nil {
			return err
		}
		return s.loanRepo.Create(ctx, loan)
	})
	if err != nil {
		logger.ExitMethodWithError("loanService.CreateLoan", err, "clientID", clientID, "toolID", toolID)
		return nil, err
	}

	logger.ExitMethod("loanService.CreateLoan", "loanID", loan.ID)
	return loan, nil
}

// ReturnLoan closes the rental side of a loan, bills it and restricts the
// client until the debt is settled.
func (s *loanService) ReturnLoan(ctx context.Context, loanID, toolID int32, damaged, irreparable bool, user *domain.User, returnDate *time.Time) (*domain.Loan, error) {
	logger.EnterMethod("loanService.ReturnLoan", "loanID", loanID, "toolID", toolID, "damaged", damaged, "irreparable", irreparable)

	var loan *domain.Loan
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		loan, err = s.loanRepo.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			return notFound(err, "Loan not found with id: %d", loanID)
		}
		if loan.ToolID != toolID {
			return domain.InvalidArgument("Tool ID (%d) does not match the tool ID in the loan (%d).", toolID, loan.ToolID)
		}
		if !loan.Status.IsOpen() {
			return domain.InvalidOperation("Loan is already closed and cannot be returned again.")
		}

		returned := s.today()
		if returnDate != nil {
			returned = utils.TruncateToDate(*returnDate)
		}
		if returned.Before(loan.StartDate) {
			return domain.InvalidArgument("Return date cannot be before the loan start date.")
		}

		// Client before tool, the same order CreateLoan locks them in.
		client, err := s.clientRepo.GetByIDForUpdate(ctx, loan.ClientID)
		if err != nil {
			return notFound(err, "Client not found with id: %d", loan.ClientID)
		}
		tool, err := s.toolRepo.GetByIDForUpdate(ctx, loan.ToolID)
		if err != nil {
			return notFound(err, "Tool not found with id: %d", loan.ToolID)
		}
		tariff, err := s.tariffs.GetTariff(ctx)
		if err != nil {
			return err
		}

		outcome := utils.ClassifyDamage(damaged, irreparable)
		penalty, err := utils.CalculatePenalty(loan.StartDate, loan.DueDate, returned, tariff, outcome, tool.ReplacementValue)
		if err != nil {
			return err
		}

		switch outcome {
		case utils.DamageIrreparable:
			err = s.tools.MarkAsDecommissioned(ctx, tool, user)
		case utils.DamageRepairable:
			err = s.tools.MarkAsRepairing(ctx, tool, user)
		default:
			err = s.tools.IncrementStockForReturn(ctx, tool, user)
		}
		if err != nil {
			return err
		}

		loan.ReturnDate = &returned
		loan.Status = domain.LoanStatusReceived
		loan.TotalPenalty = int32(penalty.Total)
		if err := s.loanRepo.Update(ctx, loan); err != nil {
			return err
		}

		client.Status = domain.ClientStatusRestricted
		if err := s.clientRepo.Update(ctx, client); err != nil {
			return err
		}

		logger.Info("Loan returned",
			"loanID", loan.ID,
			"rentalDays", penalty.RentalDays,
			"lateDays", penalty.LateDays,
			"rentalCost", penalty.RentalCost,
			"lateFee", penalty.LateFee,
			"damagePenalty", penalty.DamagePenalty,
			"total", penalty.Total,
		)
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("loanService.ReturnLoan", err, "loanID", loanID)
		return nil, err
	}

	logger.ExitMethod("loanService.ReturnLoan", "loanID", loan.ID, "totalPenalty", loan.TotalPenalty)
	return loan, nil
}

func (s *loanService) MarkLoanAsPaid(ctx context.Context, loanID int32) (*domain.Loan, error) {
	var loan *domain.Loan
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		loan, err = s.loanRepo.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			return notFound(err, "Loan not found with id: %d", loanID)
		}
		if loan.Status != domain.LoanStatusReceived {
			return domain.InvalidOperation("Only received loans can be marked as paid. Current status: %s", loan.Status)
		}
		loan.TotalPenalty = 0
		loan.Status = domain.LoanStatusClosed
		return s.loanRepo.Update(ctx, loan)
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

func (s *loanService) GetLoanByID(ctx context.Context, id int32) (*domain.Loan, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Loan not found with id: %d", id)
	}
	return l, nil
}

func (s *loanService) GetAllLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.List(ctx)
}

func (s *loanService) GetActiveLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.ListByStatus(ctx, domain.LoanStatusActive)
}

func (s *loanService) GetLateLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.ListByStatus(ctx, domain.LoanStatusLate)
}

func (s *loanService) GetUnpaidReceivedLoansByClientID(ctx context.Context, clientID int32) ([]domain.Loan, error) {
	exists, err := s.clientRepo.ExistsByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NotFound("Client not found with id: %d", clientID)
	}
	return s.loanRepo.ListByClientAndStatusWithPenalty(ctx, clientID, domain.LoanStatusReceived)
}

// MarkOverdueLoans flips every ACTIVE loan due before asOf to LATE.
func (s *loanService) MarkOverdueLoans(ctx context.Context, asOf time.Time) ([]int32, error) {
	var ids []int32
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		ids, err = s.loanRepo.MarkOverdue(ctx, utils.TruncateToDate(asOf))
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
