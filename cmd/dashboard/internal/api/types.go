package api

import "time"

type Transaction struct {
	ID            int64     `json:"id"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	CategoryID    *int64    `json:"category_id"`
	Type          string    `json:"type"`
	Date          string    `json:"date"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
	CategoryName  string    `json:"category_name"`
	CategoryType  string    `json:"category_type"`
	CreatedAt     time.Time `json:"created_at"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

type CategoryTotal struct {
	Name  string  `json:"name"`
	Icon  string  `json:"icon"`
	Total float64 `json:"total"`
}

type TrendPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// TransactionParams is the full writable record for creates and updates.
type TransactionParams struct {
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	CategoryID    *int64  `json:"category_id"`
	Type          string  `json:"type"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

type CategoryParams struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}
