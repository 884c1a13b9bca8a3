// Package budget holds the monthly budget state.
//
// The budget is a process-lifetime setting: it is owned by the composition
// root and not persisted across restarts, every start begins with the
// default amount and the current month selected.
package budget

import (
	"errors"
	"time"

	"github.com/expense-tracker/backend/internal/live"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ErrNotPositive is returned when a budget amount is zero or negative.
var ErrNotPositive = errors.New("the budget amount must be larger than zero")

// Tier classifies how much of the budget is spent.
type Tier string

const (
	TierGood     Tier = "good"     // less than 80 % spent
	TierWarning  Tier = "warning"  // 80 % or more spent
	TierExceeded Tier = "exceeded" // 100 % or more spent
)

// DefaultAmount is the monthly budget before the user sets one.
var DefaultAmount = decimal.NewFromInt(1000)

// Settings are the user-settable parts of the budget state.
type Settings struct {
	Amount decimal.Decimal `json:"amount" example:"1000"` // The monthly budget
	Month  types.Month     `json:"month" example:"2023-08"` // The selected month
}

// State is the budget state. All methods are safe for concurrent use.
type State struct {
	value *live.Value[Settings]
}

// NewState returns the budget state with the default amount and the
// month of the given time selected.
func NewState(now time.Time) *State {
	return &State{
		value: live.NewValue(Settings{
			Amount: DefaultAmount,
			Month:  types.MonthOf(now),
		}),
	}
}

// Settings returns the current budget settings.
func (s *State) Settings() Settings {
	return s.value.Get()
}

// Subscribe registers an observer for the budget settings, see live.Value.
func (s *State) Subscribe() (<-chan Settings, func()) {
	return s.value.Subscribe()
}

// SetAmount replaces the budget amount. The previous amount is never added
// to, setting a budget always overwrites.
//
// Amounts that are not positive return ErrNotPositive and leave the state
// unchanged.
func (s *State) SetAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNotPositive
	}

	s.value.Update(func(settings Settings) Settings {
		settings.Amount = amount
		return settings
	})

	return nil
}

// SetMonth replaces the selected month, both year and month together.
func (s *State) SetMonth(month types.Month) {
	s.value.Update(func(settings Settings) Settings {
		settings.Month = month
		return settings
	})
}

// Summary is the derived budget view for the selected month.
type Summary struct {
	Settings
	Spent        decimal.Decimal `json:"spent" example:"850"`      // Total spend in the selected month
	Remaining    decimal.Decimal `json:"remaining" example:"150"`  // Budget minus spend, negative when exceeded
	PercentSpent int64           `json:"percentSpent" example:"85"` // Percent of the budget spent
	Progress     int64           `json:"progress" example:"85"`     // PercentSpent, capped at 100 for display
	Tier         Tier            `json:"tier" example:"warning"`    // good, warning or exceeded
}

// Summarize derives the budget view from the current settings and the
// spend for the selected month. It is recomputed on every call, nothing
// is cached.
func (s *State) Summarize(spent decimal.Decimal) Summary {
	settings := s.value.Get()

	var percent int64
	if settings.Amount.IsPositive() {
		percent = spent.
			Mul(decimal.NewFromInt(100)).
			Div(settings.Amount).
			Round(0).
			IntPart()
	}

	progress := percent
	if progress > 100 {
		progress = 100
	}

	// The tier uses the uncapped percentage
	tier := TierGood
	switch {
	case percent >= 100:
		tier = TierExceeded
	case percent >= 80:
		tier = TierWarning
	}

	return Summary{
		Settings:     settings,
		Spent:        spent,
		Remaining:    settings.Amount.Sub(spent),
		PercentSpent: percent,
		Progress:     progress,
		Tier:         tier,
	}
}
