package v1

import (
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseLinks are the links for an expense.
type ExpenseLinks struct {
	Self string `json:"self" example:"http://example.com/v1/expenses/17"` // The expense itself
}

// Expense is the API representation of an expense.
type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

// links sets all links for the expense.
func (e *Expense) links(c *gin.Context) {
	e.Links.Self = fmt.Sprintf("%s/v1/expenses/%d", requestURL(c), e.ID)
}

// ExpenseCreate is the set of fields settable when creating an expense.
type ExpenseCreate struct {
	Amount   decimal.Decimal `json:"amount" example:"17.59"`
	Category string          `json:"category" example:"Food"`
	Date     time.Time       `json:"date" example:"2023-08-04T18:30:00Z"`
	Notes    *string         `json:"notes" example:"Lunch with the team"`
}

// model returns the database resource for the create request.
func (e ExpenseCreate) model() models.Expense {
	expense := models.Expense{
		Amount:   e.Amount,
		Category: e.Category,
		Notes:    e.Notes,
	}

	if !e.Date.IsZero() {
		expense.Date = types.TimeOf(e.Date)
	}

	return expense
}

type ExpenseResponse struct {
	Data Expense `json:"data"` // The expense data
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`       // List of expenses
	Pagination *Pagination `json:"pagination"` // Pagination information
}

// ExpenseQueryFilter contains the fields expenses can be filtered by.
type ExpenseQueryFilter struct {
	Category  string    `form:"category"`                                                      // Exact category match
	Note      string    `form:"note" filterField:"false"`                                      // Glob match on the notes field
	FromDate  time.Time `form:"fromDate" filterField:"false" time_format:"2006-01-02" time_utc:"1"`  // Earliest date to include
	UntilDate time.Time `form:"untilDate" filterField:"false" time_format:"2006-01-02" time_utc:"1"` // Latest date to include
	Offset    uint      `form:"offset" filterField:"false"`                                    // The offset of the first expense returned, defaults to 0
	Limit     int       `form:"limit" filterField:"false"`                                     // Maximum number of expenses to return, defaults to 50
}

// model returns the database resource the filter maps to.
func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Category: f.Category,
	}
}
