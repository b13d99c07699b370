package report

import (
	"github.com/shopspring/decimal"
)

// Summary is the all-time total income, total expense, and derived balance.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryTotal is the summed amount of one category's transactions.
// Categories without matching transactions never appear.
type CategoryTotal struct {
	Name  string
	Icon  string
	Total decimal.Decimal
}

// TrendPoint is one month of the rolling six-month income/expense trend.
// Month is a YYYY-MM label.
type TrendPoint struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}
