package model

import "github.com/shopspring/decimal"

// MonthlyTotals holds income and expense sums for one calendar month.
type MonthlyTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (m MonthlyTotals) Net() decimal.Decimal {
	return m.Income.Sub(m.Expense)
}

// Dashboard is the read-only summary computed from all four stores.
type Dashboard struct {
	Greeting     string
	Balance      decimal.Decimal
	Streak       int
	TodayMission string
	HasMission   bool
	Weekday      string
	TodayWorkout string
	Month        MonthlyTotals
	PendingTasks int
	OverdueTasks int
}
