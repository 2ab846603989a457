package jobs

import (
	"context"

	"toollending-backend/internal/logger"
)

// MarkLateLoans moves every ACTIVE loan whose due date has passed to LATE
func (jr *JobRunner) MarkLateLoans() error {
	return jr.runWithRecovery("MarkLateLoans", func(ctx context.Context) error {
		asOf := jr.today()
		ids, err := jr.services.Loan.MarkOverdueLoans(ctx, asOf)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "Marked loans as late", "count", len(ids), "as_of", asOf.Format("2006-01-02"), "loan_ids", ids)
		return nil
	})
}
