package service

import (
	"context"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"
)

type toolService struct {
	tx        repository.Transactor
	toolRepo  repository.ToolRepository
	movements MovementService
}

func NewToolService(tx repository.Transactor, toolRepo repository.ToolRepository, movements MovementService) ToolService {
	return &toolService{
		tx:        tx,
		toolRepo:  toolRepo,
		movements: movements,
	}
}

func (s *toolService) GetAllTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.List(ctx)
}

func (s *toolService) GetToolByID(ctx context.Context, id int32) (*domain.Tool, error) {
	t, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Tool not found with id: %d", id)
	}
	return t, nil
}

func (s *toolService) lock(ctx context.Context, id int32) (*domain.Tool, error) {
	t, err := s.toolRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, notFound(err, "Tool not found with id: %d", id)
	}
	return t, nil
}

func (s *toolService) CreateTool(ctx context.Context, tool *domain.Tool, user *domain.User) (*domain.Tool, error) {
	logger.EnterMethod("toolService.CreateTool", "name", tool.Name, "stock", tool.Stock)

	if blank(tool.Name, tool.Category) {
		return nil, domain.InvalidArgument("Tool must have a name and a category")
	}
	if tool.Stock < 0 {
		return nil, domain.InvalidArgument("Stock cannot be negative")
	}
	if tool.InRepair < 0 {
		return nil, domain.InvalidArgument("In-repair count cannot be negative")
	}
	if tool.ReplacementValue < domain.MinReplacementValue {
		return nil, domain.InvalidArgument("Replacement value must be at least %d", domain.MinReplacementValue)
	}
	if tool.Status != "" && !tool.Status.Valid() {
		return nil, domain.InvalidArgument("Unknown tool status: %s", tool.Status)
	}

	switch {
	case tool.Status == "":
		tool.Status = domain.ToolStatusAvailable
	case tool.Stock > 0 && tool.Status != domain.ToolStatusAvailable:
		tool.Status = domain.ToolStatusAvailable
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.toolRepo.Create(ctx, tool); err != nil {
			return err
		}
		if tool.Stock > 0 {
			_, err := s.movements.RegisterMovement(ctx, tool, domain.MovementTypeIncome, tool.Stock, user)
			return err
		}
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("toolService.CreateTool", err, "name", tool.Name)
		return nil, err
	}

	logger.ExitMethod("toolService.CreateTool", "toolID", tool.ID)
	return tool, nil
}

func (s *toolService) UpdateTool(ctx context.Context, id int32, name, category string, replacementValue int32) (*domain.Tool, error) {
	if blank(name, category) {
		return nil, domain.InvalidArgument("Tool must have a name and a category")
	}
	if replacementValue < domain.MinReplacementValue {
		return nil, domain.InvalidArgument("Replacement value must be at least %d", domain.MinReplacementValue)
	}

	var tool *domain.Tool
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		tool, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		if tool.ReplacementValue < domain.MinReplacementValue {
			return domain.InvalidOperation("Cannot update a tool with replacement value less than $%d.", domain.MinReplacementValue)
		}
		tool.Name = name
		tool.Category = category
		tool.ReplacementValue = replacementValue
		return s.toolRepo.Update(ctx, tool)
	})
	if err != nil {
		return nil, err
	}
	return tool, nil
}

func (s *toolService) DecommissionTool(ctx context.Context, id int32, user *domain.User) (*domain.Tool, error) {
	logger.EnterMethod("toolService.DecommissionTool", "toolID", id)

	var tool *domain.Tool
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		tool, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		if tool.IsDecommissioned() {
			return domain.InvalidOperation("Tool is already decommissioned.")
		}
		if tool.Status == domain.ToolStatusLoaned || tool.Status == domain.ToolStatusRepairing {
			return domain.InvalidOperation("Cannot decommission a tool while loaned or under repair.")
		}

		quantity := tool.Stock
		if quantity == 0 {
			quantity = 1
		}
		tool.Stock = 0
		tool.Status = domain.ToolStatusDecommissioned
		if err := s.toolRepo.Update(ctx, tool); err != nil {
			return err
		}
		_, err = s.movements.RegisterMovement(ctx, tool, domain.MovementTypeDecommission, quantity, user)
		return err
	})
	if err != nil {
		logger.ExitMethodWithError("toolService.DecommissionTool", err, "toolID", id)
		return nil, err
	}

	logger.ExitMethod("toolService.DecommissionTool", "toolID", id)
	return tool, nil
}

func (s *toolService) AdjustStock(ctx context.Context, id int32, delta int32, movementType domain.MovementType, user *domain.User) (*domain.Tool, error) {
	logger.EnterMethod("toolService.AdjustStock", "toolID", id, "delta", delta, "type", movementType)

	if delta == 0 {
		return nil, domain.InvalidOperation("Quantity change cannot be zero.")
	}
	if delta > 0 && movementType != domain.MovementTypeIncome {
		return nil, domain.InvalidOperation("Positive stock adjustment requires INCOME movement type.")
	}
	if delta < 0 && movementType != domain.MovementTypeManualDecrease {
		return nil, domain.InvalidOperation("Negative stock adjustment requires MANUAL_DECREASE movement type.")
	}

	var tool *domain.Tool
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		tool, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		if tool.IsDecommissioned() {
			return domain.InvalidOperation("Cannot adjust stock for a decommissioned tool.")
		}

		newStock := tool.Stock + delta
		if newStock < 0 {
			return domain.InvalidOperation("Stock adjustment would result in negative stock.")
		}
		tool.Stock = newStock

		switch {
		case newStock > 0 && tool.Status != domain.ToolStatusRepairing:
			tool.Status = domain.ToolStatusAvailable
		case newStock == 0 && (tool.Status == domain.ToolStatusAvailable || tool.Status == domain.ToolStatusLoaned):
			tool.Status = domain.ToolStatusLoaned
		}

		if err := s.toolRepo.Update(ctx, tool); err != nil {
			return err
		}
		quantity := delta
		if quantity < 0 {
			quantity = -quantity
		}
		_, err = s.movements.RegisterMovement(ctx, tool, movementType, quantity, user)
		return err
	})
	if err != nil {
		logger.ExitMethodWithError("toolService.AdjustStock", err, "toolID", id)
		return nil, err
	}

	logger.ExitMethod("toolService.AdjustStock", "toolID", id, "stock", tool.Stock, "status", tool.Status)
	return tool, nil
}

// The operations below act on a tool the caller already holds locked, as the
// loan engine does. They still open a transaction so they are atomic when used
// alone; inside the loan transaction they join it.

func (s *toolService) IncrementStockForReturn(ctx context.Context, tool *domain.Tool, user *domain.User) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		tool.Stock++
		if tool.Status == domain.ToolStatusLoaned {
			tool.Status = domain.ToolStatusAvailable
		}
		if err := s.toolRepo.Update(ctx, tool); err != nil {
			return err
		}
		_, err := s.movements.RegisterMovement(ctx, tool, domain.MovementTypeReturn, 1, user)
		return err
	})
}

func (s *toolService) DecrementStockForLoan(ctx context.Context, tool *domain.Tool, user *domain.User) error {
	if tool.Stock <= 0 {
		return domain.InvalidOperation("Tool is not available or out of stock.")
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		tool.Stock--
		if tool.Stock == 0 {
			tool.Status = domain.ToolStatusLoaned
		}
		if err := s.toolRepo.Update(ctx, tool); err != nil {
			return err
		}
		_, err := s.movements.RegisterMovement(ctx, tool, domain.MovementTypeLoan, 1, user)
		return err
	})
}

// MarkAsRepairing counts one more unit under repair. Stock and status are left
// as they are.
func (s *toolService) MarkAsRepairing(ctx context.Context, tool *domain.Tool, user *domain.User) error {
	if tool.IsDecommissioned() {
		return domain.InvalidOperation("Cannot mark a decommissioned tool as repairing.")
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		tool.InRepair++
		if err := s.toolRepo.Update(ctx, tool); err != nil {
			return err
		}
		_, err := s.movements.RegisterMovement(ctx, tool, domain.MovementTypeRepair, 1, user)
		return err
	})
}

// MarkAsDecommissioned writes off a single unit in the ledger only.
func (s *toolService) MarkAsDecommissioned(ctx context.Context, tool *domain.Tool, user *domain.User) error {
	if tool.IsDecommissioned() {
		return domain.InvalidOperation("Tool is already decommissioned.")
	}
	_, err := s.movements.RegisterMovement(ctx, tool, domain.MovementTypeDecommission, 1, user)
	return err
}
