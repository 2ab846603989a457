package service

import (
	"context"
	"errors"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"
)

type tariffService struct {
	tx         repository.Transactor
	tariffRepo repository.TariffRepository
}

func NewTariffService(tx repository.Transactor, tariffRepo repository.TariffRepository) TariffService {
	return &tariffService{tx: tx, tariffRepo: tariffRepo}
}

func (s *tariffService) GetTariff(ctx context.Context) (*domain.Tariff, error) {
	t, err := s.tariffRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ConfigurationMissing("No tariffs configured")
		}
		return nil, err
	}
	return t, nil
}

func (s *tariffService) UpdateTariff(ctx context.Context, rates domain.Tariff) (*domain.Tariff, error) {
	logger.EnterMethod("tariffService.UpdateTariff", "rent", rates.DailyRentFee, "late", rates.DailyLateFee, "repair", rates.RepairFee)

	if rates.DailyRentFee <= 0 || rates.DailyLateFee <= 0 || rates.RepairFee <= 0 {
		return nil, domain.InvalidArgument("Tariff rates must be positive")
	}

	var current *domain.Tariff
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		current, err = s.GetTariff(ctx)
		if err != nil {
			return err
		}
		current.DailyRentFee = rates.DailyRentFee
		current.DailyLateFee = rates.DailyLateFee
		current.RepairFee = rates.RepairFee
		return s.tariffRepo.Update(ctx, current)
	})
	if err != nil {
		logger.ExitMethodWithError("tariffService.UpdateTariff", err)
		return nil, err
	}

	logger.ExitMethod("tariffService.UpdateTariff", "tariffID", current.ID)
	return current, nil
}

func (s *tariffService) DailyRentFee(ctx context.Context) (int32, error) {
	t, err := s.GetTariff(ctx)
	if err != nil {
		return 0, err
	}
	return t.DailyRentFee, nil
}

func (s *tariffService) DailyLateFee(ctx context.Context) (int32, error) {
	t, err := s.GetTariff(ctx)
	if err != nil {
		return 0, err
	}
	return t.DailyLateFee, nil
}

func (s *tariffService) RepairFee(ctx context.Context) (int32, error) {
	t, err := s.GetTariff(ctx)
	if err != nil {
		return 0, err
	}
	return t.RepairFee, nil
}
