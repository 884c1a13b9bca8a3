// Package v1 implements the v1 API of the expense tracker.
package v1

import (
	"github.com/expense-tracker/backend/internal/budget"
	"github.com/expense-tracker/backend/internal/live"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Controller holds the dependencies of the v1 API handlers.
//
// The database handle and the budget state are owned by the composition
// root and injected here, controllers never reach for globals.
type Controller struct {
	DB     *gorm.DB
	Budget *budget.State

	// Expenses is the observable expense list. It is refreshed after
	// every mutation and feeds the event stream for list views.
	Expenses *live.Value[[]models.Expense]

	// ExportDir is the directory export files are written to when a
	// request does not specify one.
	ExportDir string
}

// NewController returns a Controller for the given dependencies.
func NewController(db *gorm.DB, state *budget.State, exportDir string) (Controller, error) {
	expenses, err := models.Expenses(db)
	if err != nil {
		return Controller{}, err
	}

	return Controller{
		DB:        db,
		Budget:    state,
		Expenses:  live.NewValue(expenses),
		ExportDir: exportDir,
	}, nil
}

// publishExpenses pushes the current expense list to all subscribers.
// It is called after every successful mutation.
func (co Controller) publishExpenses() {
	expenses, err := models.Expenses(co.DB)
	if err != nil {
		log.Error().Err(err).Msg("refreshing the expense list failed")
		return
	}

	co.Expenses.Set(expenses)
}
