// Package models contains the database models and the database connection
// for the expense tracker.
package models

import (
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single expense record.
//
// The column shape is kept compatible with existing database files:
// an auto-incrementing integer primary key, a REAL amount, the category
// as plain text, the date as epoch milliseconds and nullable notes.
type Expense struct {
	ID       uint64          `json:"id" gorm:"primaryKey" example:"17"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:REAL;not null" example:"14.03"`
	Category string          `json:"category" gorm:"type:TEXT;not null" example:"Food"`
	Date     types.Time      `json:"date" gorm:"not null" example:"2023-08-04T12:30:45.123Z"`
	Notes    *string         `json:"notes" gorm:"type:TEXT" example:"Lunch"`
}

// BeforeSave normalizes the expense before it is written.
//
// The date defaults to the current time since the app sets the current
// date when an expense is created.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	if e.Category == "" {
		return ErrExpenseCategoryRequired
	}

	if e.Date.IsZero() {
		e.Date = types.TimeOf(time.Now())
	}

	if e.Notes != nil {
		notes := strings.TrimSpace(*e.Notes)
		e.Notes = &notes
	}

	return nil
}

// BeforeCreate verifies that all required fields are set.
func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	if e.Amount.IsZero() {
		return ErrExpenseAmountRequired
	}

	return nil
}

// CategorySum is the aggregated spend for a single category.
type CategorySum struct {
	Category string          `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"85.17"`
}

// Expenses returns all expenses, ordered by date descending.
func Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Order("date DESC, id DESC").Find(&expenses).Error
	return expenses, err
}

// ExpenseByID returns the expense with the given ID.
func ExpenseByID(db *gorm.DB, id uint64) (Expense, error) {
	var expense Expense
	err := db.First(&expense, id).Error
	return expense, err
}

// ExpensesByCategory returns all expenses with the category, ordered by
// date descending.
func ExpensesByCategory(db *gorm.DB, category string) ([]Expense, error) {
	var expenses []Expense
	err := db.Where("category = ?", category).Order("date DESC, id DESC").Find(&expenses).Error
	return expenses, err
}

// ExpensesInRange returns all expenses with start <= date <= end, ordered
// by date descending. Both bounds are inclusive.
func ExpensesInRange(db *gorm.DB, start, end time.Time) ([]Expense, error) {
	var expenses []Expense
	err := db.
		Where("date >= ? AND date <= ?", types.TimeOf(start), types.TimeOf(end)).
		Order("date DESC, id DESC").
		Find(&expenses).Error
	return expenses, err
}

// SumInRange returns the sum of all expense amounts with
// start <= date <= end. When no expense matches, the sum is 0.
func SumInRange(db *gorm.DB, start, end time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := db.
		Model(&Expense{}).
		Where("date >= ? AND date <= ?", types.TimeOf(start), types.TimeOf(end)).
		Select("SUM(amount)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}

	// SUM over zero rows is NULL, which is normalized to 0 here
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// CategorySumsInRange returns the per-category sums of all expenses with
// start <= date <= end. Categories without expenses in the range are not
// part of the result.
func CategorySumsInRange(db *gorm.DB, start, end time.Time) ([]CategorySum, error) {
	var sums []CategorySum
	err := db.
		Model(&Expense{}).
		Where("date >= ? AND date <= ?", types.TimeOf(start), types.TimeOf(end)).
		Select("category, SUM(amount) AS total").
		Group("category").
		Order("category ASC").
		Scan(&sums).Error
	return sums, err
}
