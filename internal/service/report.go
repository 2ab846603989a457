package service

import (
	"context"
	"strings"
	"time"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/repository"
)

type reportService struct {
	loanRepo   repository.LoanRepository
	clientRepo repository.ClientRepository
}

func NewReportService(loanRepo repository.LoanRepository, clientRepo repository.ClientRepository) ReportService {
	return &reportService{loanRepo: loanRepo, clientRepo: clientRepo}
}

// LoansByStatus filters by start date only when both bounds are given.
func (s *reportService) LoansByStatus(ctx context.Context, status string, from, to *time.Time) ([]domain.Loan, error) {
	st := domain.LoanStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, domain.InvalidArgument("Invalid loan status: %s", status)
	}
	if from == nil || to == nil {
		return s.loanRepo.ListByStatus(ctx, st)
	}
	if from.After(*to) {
		return nil, domain.InvalidArgument("Start date cannot be after end date.")
	}
	return s.loanRepo.ListByStatusAndStartDateBetween(ctx, st, *from, *to)
}

func (s *reportService) ClientsWithLateLoans(ctx context.Context, from, to *time.Time) ([]domain.Client, error) {
	if from == nil || to == nil {
		return s.loanRepo.ListClientsByLoanStatus(ctx, domain.LoanStatusLate, nil, nil)
	}
	if from.After(*to) {
		return nil, domain.InvalidArgument("Start date cannot be after end date.")
	}
	return s.loanRepo.ListClientsByLoanStatus(ctx, domain.LoanStatusLate, from, to)
}

func (s *reportService) TopTools(ctx context.Context, from, to *time.Time) ([]domain.ToolLoanCount, error) {
	if from == nil || to == nil {
		return nil, domain.InvalidArgument("Date range is required for Top Tools report.")
	}
	if from.After(*to) {
		return nil, domain.InvalidArgument("Start date cannot be after end date.")
	}
	return s.loanRepo.TopTools(ctx, *from, *to)
}

func (s *reportService) RestrictedClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.ListByStatus(ctx, domain.ClientStatusRestricted)
}
