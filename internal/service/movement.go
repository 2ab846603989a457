package service

import (
	"context"
	"time"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"
)

type movementService struct {
	movementRepo repository.MovementRepository
	toolRepo     repository.ToolRepository
	now          func() time.Time
}

func NewMovementService(movementRepo repository.MovementRepository, toolRepo repository.ToolRepository) MovementService {
	return &movementService{
		movementRepo: movementRepo,
		toolRepo:     toolRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// RegisterMovement appends one ledger entry. It runs in the caller's
// transaction and does not undo anything the caller already changed.
func (s *movementService) RegisterMovement(ctx context.Context, tool *domain.Tool, movementType domain.MovementType, quantity int32, user *domain.User) (*domain.MovementRecord, error) {
	if tool == nil || tool.ID == 0 {
		return nil, domain.NotFound("Cannot register movement for non-existent tool.")
	}
	exists, err := s.toolRepo.ExistsByID(ctx, tool.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NotFound("Cannot register movement for non-existent tool.")
	}
	if !movementType.Valid() {
		return nil, domain.InvalidArgument("Unknown movement type: %s", movementType)
	}
	if quantity <= 0 {
		return nil, domain.InvalidArgument("Movement quantity must be positive.")
	}
	if user == nil {
		return nil, domain.Unauthenticated("Acting user is required.")
	}

	m := &domain.MovementRecord{
		ToolID:       tool.ID,
		Type:         movementType,
		MovementDate: s.now(),
		Quantity:     quantity,
		UserID:       user.ID,
	}
	if err := s.movementRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	logger.Debug("Movement registered", "toolID", m.ToolID, "type", m.Type, "quantity", m.Quantity, "userID", m.UserID)
	return m, nil
}

func (s *movementService) GetMovementsByToolID(ctx context.Context, toolID int32) ([]domain.MovementRecord, error) {
	if err := s.requireTool(ctx, toolID); err != nil {
		return nil, err
	}
	return s.movementRepo.List(ctx, repository.MovementFilter{ToolID: toolID})
}

func (s *movementService) GetMovementsByToolIDAndType(ctx context.Context, toolID int32, movementType domain.MovementType) ([]domain.MovementRecord, error) {
	if !movementType.Valid() {
		return nil, domain.InvalidArgument("Unknown movement type: %s", movementType)
	}
	if err := s.requireTool(ctx, toolID); err != nil {
		return nil, err
	}
	return s.movementRepo.List(ctx, repository.MovementFilter{ToolID: toolID, Type: movementType})
}

func (s *movementService) GetMovementsByDateRange(ctx context.Context, start, end *time.Time) ([]domain.MovementRecord, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.movementRepo.List(ctx, repository.MovementFilter{From: start, To: end})
}

func (s *movementService) GetMovementsByDateRangeAndType(ctx context.Context, start, end *time.Time, movementType domain.MovementType) ([]domain.MovementRecord, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if !movementType.Valid() {
		return nil, domain.InvalidArgument("Unknown movement type: %s", movementType)
	}
	return s.movementRepo.List(ctx, repository.MovementFilter{From: start, To: end, Type: movementType})
}

func (s *movementService) requireTool(ctx context.Context, toolID int32) error {
	if toolID == 0 {
		return domain.InvalidArgument("Tool ID cannot be null.")
	}
	exists, err := s.toolRepo.ExistsByID(ctx, toolID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound("Tool not found with id: %d", toolID)
	}
	return nil
}

func validateRange(start, end *time.Time) error {
	if start == nil || end == nil {
		return domain.InvalidArgument("Start and end dates cannot be null.")
	}
	if end.Before(*start) {
		return domain.InvalidArgument("End date cannot be before start date.")
	}
	return nil
}
