package dto

import (
	"elliora-dashboard/internal/format"
	"elliora-dashboard/internal/models"
)

// AccountView is one account card on the dashboard
type AccountView struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	Currency       string `json:"currency"`
	Balance        string `json:"balance"`
	BalanceDisplay string `json:"balanceDisplay"`
}

// AccountListResponse represents the response for listing accounts
type AccountListResponse struct {
	Accounts []AccountView `json:"accounts"`
}

// NewAccountView converts an account to its display card
func NewAccountView(account models.Account) AccountView {
	return AccountView{
		ID:             account.ID,
		Type:           account.Type,
		Currency:       account.Currency,
		Balance:        account.Balance.String(),
		BalanceDisplay: format.Currency(account.Balance, account.Currency),
	}
}

// NewAccountListResponse converts accounts to the wire response
func NewAccountListResponse(accounts []models.Account) AccountListResponse {
	cards := make([]AccountView, 0, len(accounts))
	for _, account := range accounts {
		cards = append(cards, NewAccountView(account))
	}
	return AccountListResponse{Accounts: cards}
}
