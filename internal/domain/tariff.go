package domain

// Tariff is the single fee schedule applied when loans are returned.
type Tariff struct {
	ID           int32 `json:"id"`
	DailyRentFee int32 `json:"daily_rent_fee"`
	DailyLateFee int32 `json:"daily_late_fee"`
	RepairFee    int32 `json:"repair_fee"`
}
