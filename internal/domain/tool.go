package domain

type ToolStatus string

const (
	ToolStatusAvailable      ToolStatus = "AVAILABLE"
	ToolStatusLoaned         ToolStatus = "LOANED"
	ToolStatusRepairing      ToolStatus = "REPAIRING"
	ToolStatusDecommissioned ToolStatus = "DECOMMISSIONED"
)

// MinReplacementValue is the lowest replacement value a tool may carry.
const MinReplacementValue int32 = 1000

func (s ToolStatus) Valid() bool {
	switch s {
	case ToolStatusAvailable, ToolStatusLoaned, ToolStatusRepairing, ToolStatusDecommissioned:
		return true
	}
	return false
}

type Tool struct {
	ID               int32      `json:"id"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	Status           ToolStatus `json:"status"`
	Stock            int32      `json:"stock"`
	InRepair         int32      `json:"in_repair"`
	ReplacementValue int32      `json:"replacement_value"`
}

// IsLendable reports whether a unit of the tool can be handed out right now.
func (t *Tool) IsLendable() bool {
	return t.Status == ToolStatusAvailable && t.Stock > 0
}

func (t *Tool) IsDecommissioned() bool {
	return t.Status == ToolStatusDecommissioned
}
