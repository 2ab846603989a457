package utils

import (
	"fmt"
	"math"
	"time"

	"toollending-backend/internal/domain"
)

const DateLayout = "2006-01-02"

// DamageOutcome classifies the condition of a returned tool.
type DamageOutcome int

const (
	DamageNone DamageOutcome = iota
	DamageRepairable
	DamageIrreparable
)

// ClassifyDamage maps the damaged/irreparable flags of a return to an outcome.
// The irreparable flag is ignored for undamaged returns.
func ClassifyDamage(damaged, irreparable bool) DamageOutcome {
	switch {
	case damaged && irreparable:
		return DamageIrreparable
	case damaged:
		return DamageRepairable
	default:
		return DamageNone
	}
}

// PenaltyBreakdown provides the detailed amounts charged on a return
type PenaltyBreakdown struct {
	RentalDays    int
	LateDays      int
	RentalCost    int64
	LateFee       int64
	DamagePenalty int64
	Total         int64
}

// ParseDate converts a yyyy-mm-dd formatted string into a UTC calendar date
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}
	return t, nil
}

// FormatDate renders a calendar date as yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateToDate drops the clock part of t, keeping its calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in UTC
func Today() time.Time {
	return TruncateToDate(time.Now())
}

// DaysBetween counts whole calendar days from start to end. The result is
// negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	s := TruncateToDate(start)
	e := TruncateToDate(end)
	return int(e.Sub(s).Hours() / 24)
}

// MaxPenalty is the largest total a loan can carry.
const MaxPenalty = math.MaxInt32

// CalculatePenalty computes the amount owed for a returned loan.
//
// Rental is billed on the contracted duration (start to due), never less than
// one day. Late days run from due to return and only count when positive.
// Amounts are summed in int64; a total above MaxPenalty is rejected.
func CalculatePenalty(startDate, dueDate, returnDate time.Time, tariff *domain.Tariff, outcome DamageOutcome, replacementValue int32) (PenaltyBreakdown, error) {
	rentalDays := DaysBetween(startDate, dueDate)
	if rentalDays < 1 {
		rentalDays = 1
	}

	lateDays := DaysBetween(dueDate, returnDate)
	if lateDays < 0 {
		lateDays = 0
	}

	var damage int64
	switch outcome {
	case DamageIrreparable:
		damage = int64(replacementValue)
	case DamageRepairable:
		damage = int64(tariff.RepairFee)
	}

	b := PenaltyBreakdown{
		RentalDays:    rentalDays,
		LateDays:      lateDays,
		RentalCost:    int64(rentalDays) * int64(tariff.DailyRentFee),
		LateFee:       int64(lateDays) * int64(tariff.DailyLateFee),
		DamagePenalty: damage,
	}
	b.Total = b.RentalCost + b.LateFee + b.DamagePenalty
	if b.Total > MaxPenalty {
		return b, domain.InvalidOperation("Total penalty of %d exceeds the maximum of %d.", b.Total, MaxPenalty)
	}
	return b, nil
}
