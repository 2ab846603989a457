package domain

import "time"

type MovementType string

const (
	MovementTypeIncome         MovementType = "INCOME"
	MovementTypeLoan           MovementType = "LOAN"
	MovementTypeReturn         MovementType = "RETURN"
	MovementTypeRepair         MovementType = "REPAIR"
	MovementTypeDecommission   MovementType = "DECOMMISSION"
	MovementTypeManualDecrease MovementType = "MANUAL_DECREASE"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeIncome, MovementTypeLoan, MovementTypeReturn,
		MovementTypeRepair, MovementTypeDecommission, MovementTypeManualDecrease:
		return true
	}
	return false
}

// MovementRecord is one kardex entry. Records are never updated or deleted.
type MovementRecord struct {
	ID           int32        `json:"id"`
	ToolID       int32        `json:"tool_id"`
	Type         MovementType `json:"type"`
	MovementDate time.Time    `json:"movement_date"`
	Quantity     int32        `json:"quantity"`
	UserID       int32        `json:"user_id"`
}
