package domain

import "time"

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "ACTIVE"
	LoanStatusLate     LoanStatus = "LATE"
	LoanStatusReceived LoanStatus = "RECEIVED"
	LoanStatusClosed   LoanStatus = "CLOSED"
)

// MaxOpenLoansPerClient caps the ACTIVE plus LATE loans a client may hold.
const MaxOpenLoansPerClient = 5

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanStatusActive, LoanStatusLate, LoanStatusReceived, LoanStatusClosed:
		return true
	}
	return false
}

// IsOpen reports whether the tool is still out with the client.
func (s LoanStatus) IsOpen() bool {
	return s == LoanStatusActive || s == LoanStatusLate
}

type Loan struct {
	ID           int32      `json:"id"`
	ClientID     int32      `json:"client_id"`
	ToolID       int32      `json:"tool_id"`
	StartDate    time.Time  `json:"start_date"`
	DueDate      time.Time  `json:"due_date"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	Status       LoanStatus `json:"status"`
	TotalPenalty int32      `json:"total_penalty"`
}

// ToolLoanCount is a row of the top tools report.
type ToolLoanCount struct {
	Tool  Tool  `json:"tool"`
	Total int64 `json:"total"`
}
