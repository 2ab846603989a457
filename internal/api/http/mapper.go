package http

import (
	"time"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/utils"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserResponse struct {
	ID        int32  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedOn string `json:"created_on"`
}

type TariffRequest struct {
	DailyRentFee int32 `json:"daily_rent_fee"`
	DailyLateFee int32 `json:"daily_late_fee"`
	RepairFee    int32 `json:"repair_fee"`
}

type CreateToolRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Status           string `json:"status"`
	Stock            int32  `json:"stock"`
	ReplacementValue int32  `json:"replacement_value"`
}

type UpdateToolRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ReplacementValue int32  `json:"replacement_value"`
}

type AdjustStockRequest struct {
	QuantityChange int32  `json:"quantity_change"`
	MovementType   string `json:"movement_type"`
}

type CreateClientRequest struct {
	Name   string `json:"name"`
	Rut    string `json:"rut"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type UpdateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type UpdateClientStatusRequest struct {
	Status string `json:"status"`
}

type CreateLoanRequest struct {
	ClientID  int32  `json:"client_id"`
	ToolID    int32  `json:"tool_id"`
	StartDate string `json:"start_date"`
	DueDate   string `json:"due_date"`
}

type ReturnLoanRequest struct {
	ToolID      int32  `json:"tool_id"`
	Damaged     bool   `json:"damaged"`
	Irreparable bool   `json:"irreparable"`
	ReturnDate  string `json:"return_date"`
}

type LoanResponse struct {
	ID           int32   `json:"id"`
	ClientID     int32   `json:"client_id"`
	ToolID       int32   `json:"tool_id"`
	StartDate    string  `json:"start_date"`
	DueDate      string  `json:"due_date"`
	ReturnDate   *string `json:"return_date"`
	Status       string  `json:"status"`
	TotalPenalty int32   `json:"total_penalty"`
}

type MovementResponse struct {
	ID           int32  `json:"id"`
	ToolID       int32  `json:"tool_id"`
	Type         string `json:"type"`
	MovementDate string `json:"movement_date"`
	Quantity     int32  `json:"quantity"`
	UserID       int32  `json:"user_id"`
}

type ToolRankingResponse struct {
	Tool      domain.Tool `json:"tool"`
	LoanCount int64       `json:"loan_count"`
}

func MapUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedOn: u.CreatedOn,
	}
}

func MapUsers(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, MapUser(&users[i]))
	}
	return out
}

func MapLoan(l *domain.Loan) LoanResponse {
	res := LoanResponse{
		ID:           l.ID,
		ClientID:     l.ClientID,
		ToolID:       l.ToolID,
		StartDate:    utils.FormatDate(l.StartDate),
		DueDate:      utils.FormatDate(l.DueDate),
		Status:       string(l.Status),
		TotalPenalty: l.TotalPenalty,
	}
	if l.ReturnDate != nil {
		d := utils.FormatDate(*l.ReturnDate)
		res.ReturnDate = &d
	}
	return res
}

func MapLoans(loans []domain.Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for i := range loans {
		out = append(out, MapLoan(&loans[i]))
	}
	return out
}

func MapMovements(records []domain.MovementRecord) []MovementResponse {
	out := make([]MovementResponse, 0, len(records))
	for _, m := range records {
		out = append(out, MovementResponse{
			ID:           m.ID,
			ToolID:       m.ToolID,
			Type:         string(m.Type),
			MovementDate: m.MovementDate.UTC().Format(time.RFC3339),
			Quantity:     m.Quantity,
			UserID:       m.UserID,
		})
	}
	return out
}

func MapToolRanking(rows []domain.ToolLoanCount) []ToolRankingResponse {
	out := make([]ToolRankingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToolRankingResponse{Tool: r.Tool, LoanCount: r.Total})
	}
	return out
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
