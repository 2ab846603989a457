package http_test

import (
	"net/http"
	"testing"
	"time"

	httpapi "toollending-backend/internal/api/http"
	"toollending-backend/internal/domain"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoanHandler_CreateLoan(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := newAPIHarness()
		h.users.On("ResolveActingUser", mock.Anything).Return(staffUser, nil)
		h.loans.On("CreateLoan", mock.Anything, int32(2), int32(5), sameDate("2025-03-01"), sameDate("2025-03-04"), staffUser).
			Return(&domain.Loan{
				ID: 11, ClientID: 2, ToolID: 5,
				StartDate: *dateRef("2025-03-01"), DueDate: *dateRef("2025-03-04"),
				Status: domain.LoanStatusActive,
			}, nil)

		rec := h.do(t, http.MethodPost, "/api/v1/loans",
			`{"client_id":2,"tool_id":5,"start_date":"2025-03-01","due_date":"2025-03-04"}`, "STAFF")

		assert.Equal(t, http.StatusCreated, rec.Code)
		var loan httpapi.LoanResponse
		require.NoError(t, jsoniter.Unmarshal(decode(t, rec).Data, &loan))
		assert.Equal(t, int32(11), loan.ID)
		assert.Equal(t, "2025-03-01", loan.StartDate)
		assert.Equal(t, "2025-03-04", loan.DueDate)
		assert.Equal(t, "ACTIVE", loan.Status)
		assert.Nil(t, loan.ReturnDate)
	})

	t.Run("Omitted start date passes nil", func(t *testing.T) {
		h := newAPIHarness()
		h.users.On("ResolveActingUser", mock.Anything).Return(staffUser, nil)
		h.loans.On("CreateLoan", mock.Anything, int32(2), int32(5), (*time.Time)(nil), sameDate("2025-03-04"), staffUser).
			Return(&domain.Loan{ID: 12, StartDate: *dateRef("2025-03-01"), DueDate: *dateRef("2025-03-04"), Status: domain.LoanStatusActive}, nil)

		rec := h.do(t, http.MethodPost, "/api/v1/loans", `{"client_id":2,"tool_id":5,"due_date":"2025-03-04"}`, "STAFF")

		assert.Equal(t, http.StatusCreated, rec.Code)
		h.loans.AssertExpectations(t)
	})

	t.Run("Malformed date", func(t *testing.T) {
		h := newAPIHarness()
		rec := h.do(t, http.MethodPost, "/api/v1/loans", `{"client_id":2,"tool_id":5,"due_date":"04/03/2025"}`, "STAFF")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, httpapi.CodeInvalidArgument, decode(t, rec).Error.Code)
		h.loans.AssertNotCalled(t, "CreateLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty body", func(t *testing.T) {
		h := newAPIHarness()
		rec := h.do(t, http.MethodPost, "/api/v1/loans", "", "STAFF")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Request body is required", decode(t, rec).Error.Message)
	})

	t.Run("Business rule rejection", func(t *testing.T) {
		h := newAPIHarness()
		h.users.On("ResolveActingUser", mock.Anything).Return(staffUser, nil)
		h.loans.On("CreateLoan", mock.Anything, int32(2), int32(5), mock.Anything, mock.Anything, staffUser).
			Return(nil, domain.InvalidOperation("Client is restricted and cannot request new loans."))

		rec := h.do(t, http.MethodPost, "/api/v1/loans", `{"client_id":2,"tool_id":5,"due_date":"2025-03-04"}`, "STAFF")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		res := decode(t, rec)
		assert.Equal(t, httpapi.CodeInvalidOperation, res.Error.Code)
		assert.Equal(t, "Client is restricted and cannot request new loans.", res.Error.Message)
	})
}

func TestLoanHandler_ReturnLoan(t *testing.T) {
	h := newAPIHarness()
	returned := *dateRef("2025-03-06")
	h.users.On("ResolveActingUser", mock.Anything).Return(staffUser, nil)
	h.loans.On("ReturnLoan", mock.Anything, int32(11), int32(5), true, false, staffUser, sameDate("2025-03-06")).
		Return(&domain.Loan{
			ID: 11, ClientID: 2, ToolID: 5,
			StartDate: *dateRef("2025-03-01"), DueDate: *dateRef("2025-03-04"), ReturnDate: &returned,
			Status: domain.LoanStatusReceived, TotalPenalty: 14000,
		}, nil)

	rec := h.do(t, http.MethodPut, "/api/v1/loans/11/return",
		`{"tool_id":5,"damaged":true,"irreparable":false,"return_date":"2025-03-06"}`, "STAFF")

	assert.Equal(t, http.StatusOK, rec.Code)
	var loan httpapi.LoanResponse
	require.NoError(t, jsoniter.Unmarshal(decode(t, rec).Data, &loan))
	assert.Equal(t, "RECEIVED", loan.Status)
	assert.Equal(t, int32(14000), loan.TotalPenalty)
	require.NotNil(t, loan.ReturnDate)
	assert.Equal(t, "2025-03-06", *loan.ReturnDate)
}

func TestLoanHandler_Routing(t *testing.T) {
	t.Run("Active is not an id", func(t *testing.T) {
		h := newAPIHarness()
		h.loans.On("GetActiveLoans", mock.Anything).Return([]domain.Loan{{ID: 1, Status: domain.LoanStatusActive}}, nil)

		rec := h.do(t, http.MethodGet, "/api/v1/loans/active", "", "STAFF")

		assert.Equal(t, http.StatusOK, rec.Code)
		h.loans.AssertNotCalled(t, "GetLoanByID", mock.Anything, mock.Anything)
	})

	t.Run("Late", func(t *testing.T) {
		h := newAPIHarness()
		h.loans.On("GetLateLoans", mock.Anything).Return([]domain.Loan{}, nil)

		rec := h.do(t, http.MethodGet, "/api/v1/loans/late", "", "ADMIN")

		assert.Equal(t, http.StatusOK, rec.Code)
		h.loans.AssertExpectations(t)
	})

	t.Run("Unpaid by client", func(t *testing.T) {
		h := newAPIHarness()
		h.loans.On("GetUnpaidReceivedLoansByClientID", mock.Anything, int32(2)).Return([]domain.Loan{{ID: 4, Status: domain.LoanStatusReceived}}, nil)

		rec := h.do(t, http.MethodGet, "/api/v1/loans/client/2/unpaid", "", "STAFF")

		assert.Equal(t, http.StatusOK, rec.Code)
		var loans []httpapi.LoanResponse
		require.NoError(t, jsoniter.Unmarshal(decode(t, rec).Data, &loans))
		assert.Len(t, loans, 1)
	})

	t.Run("Pay", func(t *testing.T) {
		h := newAPIHarness()
		h.loans.On("MarkLoanAsPaid", mock.Anything, int32(4)).Return(&domain.Loan{ID: 4, Status: domain.LoanStatusClosed}, nil)

		rec := h.do(t, http.MethodPatch, "/api/v1/loans/4/pay", "", "STAFF")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestToolHandler_AdjustStock(t *testing.T) {
	h := newAPIHarness()
	admin := &domain.User{ID: 1, Username: "admin", Role: domain.UserRoleAdmin}
	h.users.On("ResolveActingUser", mock.Anything).Return(admin, nil)
	h.tools.On("AdjustStock", mock.Anything, int32(3), int32(-2), domain.MovementTypeManualDecrease, admin).
		Return(&domain.Tool{ID: 3, Name: "Drill", Status: domain.ToolStatusAvailable, Stock: 1}, nil)

	rec := h.do(t, http.MethodPatch, "/api/v1/tools/3/stock", `{"quantity_change":-2,"movement_type":"manual_decrease"}`, "ADMIN")

	assert.Equal(t, http.StatusOK, rec.Code)
	var tool domain.Tool
	require.NoError(t, jsoniter.Unmarshal(decode(t, rec).Data, &tool))
	assert.Equal(t, int32(1), tool.Stock)
}

func TestToolHandler_CreateTool(t *testing.T) {
	h := newAPIHarness()
	h.users.On("ResolveActingUser", mock.Anything).Return(staffUser, nil)
	h.tools.On("CreateTool", mock.Anything, mock.MatchedBy(func(tool *domain.Tool) bool {
		return tool.Name == "Hammer" && tool.Stock == 3 && tool.ReplacementValue == 15000
	}), staffUser).Return(&domain.Tool{ID: 9, Name: "Hammer", Status: domain.ToolStatusAvailable, Stock: 3, ReplacementValue: 15000}, nil)

	rec := h.do(t, http.MethodPost, "/api/v1/tools",
		`{"name":"  Hammer ","category":"Manual","stock":3,"replacement_value":15000}`, "STAFF")

	assert.Equal(t, http.StatusCreated, rec.Code)
	h.tools.AssertExpectations(t)
}

func TestClientHandler_Reactivate(t *testing.T) {
	h := newAPIHarness()
	h.clients.On("AttemptReactivation", mock.Anything, int32(2)).
		Return(nil, domain.InvalidOperation("Cannot reactivate client: 1 late loan(s) found."))

	rec := h.do(t, http.MethodPost, "/api/v1/clients/2/reactivate", "", "STAFF")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot reactivate client: 1 late loan(s) found.", decode(t, rec).Error.Message)
}

func TestMovementHandler_ByDate(t *testing.T) {
	h := newAPIHarness()
	start := *dateRef("2025-03-01")
	end := dateRef("2025-03-02").Add(-time.Nanosecond)
	h.movements.On("GetMovementsByDateRangeAndType", mock.Anything,
		mock.MatchedBy(func(s *time.Time) bool { return s != nil && s.Equal(start) }),
		mock.MatchedBy(func(e *time.Time) bool { return e != nil && e.Equal(end) }),
		domain.MovementTypeLoan,
	).Return([]domain.MovementRecord{{ID: 1, ToolID: 5, Type: domain.MovementTypeLoan, Quantity: 1, UserID: 7, MovementDate: start.Add(10 * time.Hour)}}, nil)

	rec := h.do(t, http.MethodGet, "/api/v1/movements/date?start=2025-03-01&end=2025-03-01&type=loan", "", "STAFF")

	assert.Equal(t, http.StatusOK, rec.Code)
	var records []httpapi.MovementResponse
	require.NoError(t, jsoniter.Unmarshal(decode(t, rec).Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "LOAN", records[0].Type)
	assert.Equal(t, "2025-03-01T10:00:00Z", records[0].MovementDate)
}

func TestReportHandler_TopTools(t *testing.T) {
	t.Run("Ranking", func(t *testing.T) {
		h := newAPIHarness()
		h.reports.On("TopTools", mock.Anything, sameDate("2025-01-01"), sameDate("2025-01-31")).
			Return([]domain.ToolLoanCount{{Tool: domain.Tool{ID: 5, Name: "Drill"}, Total: 4}}, nil)

		rec := h.do(t, http.MethodGet, "/api/v1/reports/tools/top?from=2025-01-01&to=2025-01-31", "", "STAFF")

		assert.Equal(t, http.StatusOK, rec.Code)
		var rows []httpapi.ToolRankingResponse
		require.NoError(t, jsoniter.Unmarshal(decode(t, rec).Data, &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, int64(4), rows[0].LoanCount)
	})

	t.Run("Bad date", func(t *testing.T) {
		h := newAPIHarness()
		rec := h.do(t, http.MethodGet, "/api/v1/reports/tools/top?from=yesterday", "", "STAFF")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		h.reports.AssertNotCalled(t, "TopTools", mock.Anything, mock.Anything, mock.Anything)
	})
}
