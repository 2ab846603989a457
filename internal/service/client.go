package service

import (
	"context"
	"errors"
	"strings"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"
)

type clientService struct {
	tx         repository.Transactor
	clientRepo repository.ClientRepository
	loanRepo   repository.LoanRepository
}

func NewClientService(tx repository.Transactor, clientRepo repository.ClientRepository, loanRepo repository.LoanRepository) ClientService {
	return &clientService{
		tx:         tx,
		clientRepo: clientRepo,
		loanRepo:   loanRepo,
	}
}

func (s *clientService) GetAllClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) GetClientByID(ctx context.Context, id int32) (*domain.Client, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Client not found with id: %d", id)
	}
	return c, nil
}

func (s *clientService) lock(ctx context.Context, id int32) (*domain.Client, error) {
	c, err := s.clientRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, notFound(err, "Client not found with id: %d", id)
	}
	return c, nil
}

func (s *clientService) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	logger.EnterMethod("clientService.CreateClient", "rut", client.Rut)

	if blank(client.Name, client.Rut, client.Phone, client.Email) {
		return nil, domain.InvalidArgument("Client must have name, rut, phone, and email")
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	} else if !client.Status.Valid() {
		return nil, domain.InvalidArgument("Unknown client status: %s", client.Status)
	}
	client.Rut = strings.TrimSpace(client.Rut)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.clientRepo.ExistsByRut(ctx, client.Rut)
		if err != nil {
			return err
		}
		if exists {
			return domain.InvalidOperation("Client with this RUT already exists")
		}
		if err := s.clientRepo.Create(ctx, client); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domain.InvalidOperation("Client with this RUT already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("clientService.CreateClient", err, "rut", client.Rut)
		return nil, err
	}

	logger.ExitMethod("clientService.CreateClient", "clientID", client.ID)
	return client, nil
}

func (s *clientService) UpdateStatus(ctx context.Context, id int32, status domain.ClientStatus) (*domain.Client, error) {
	if !status.Valid() {
		return nil, domain.InvalidArgument("Unknown client status: %s", status)
	}

	var client *domain.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		client, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		client.Status = status
		return s.clientRepo.Update(ctx, client)
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) UpdateClientDetails(ctx context.Context, id int32, details domain.ClientDetails) (*domain.Client, error) {
	if blank(details.Name, details.Phone, details.Email) {
		return nil, domain.InvalidArgument("Client must have name, phone, and email")
	}

	var client *domain.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		client, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		client.Name = details.Name
		client.Phone = details.Phone
		client.Email = details.Email
		return s.clientRepo.Update(ctx, client)
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// AttemptReactivation returns a restricted client to ACTIVE once it has no
// LATE loans and no unpaid RECEIVED loans. The debt lookup only runs after the
// LATE check passes.
func (s *clientService) AttemptReactivation(ctx context.Context, id int32) (*domain.Client, error) {
	logger.EnterMethod("clientService.AttemptReactivation", "clientID", id)

	var client *domain.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		client, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		if client.Status == domain.ClientStatusActive {
			logger.Info("Client is already active", "clientID", id)
			return nil
		}

		late, err := s.loanRepo.CountByClientAndStatuses(ctx, id, domain.LoanStatusLate)
		if err != nil {
			return err
		}
		if late > 0 {
			return domain.InvalidOperation("Cannot reactivate client: %d late loan(s) found.", late)
		}

		unpaid, err := s.loanRepo.ListByClientAndStatusWithPenalty(ctx, id, domain.LoanStatusReceived)
		if err != nil {
			return err
		}
		if len(unpaid) > 0 {
			return domain.InvalidOperation("Cannot reactivate client: %d unpaid loan(s) found.", len(unpaid))
		}

		client.Status = domain.ClientStatusActive
		return s.clientRepo.Update(ctx, client)
	})
	if err != nil {
		logger.ExitMethodWithError("clientService.AttemptReactivation", err, "clientID", id)
		return nil, err
	}

	logger.ExitMethod("clientService.AttemptReactivation", "clientID", id, "status", client.Status)
	return client, nil
}
