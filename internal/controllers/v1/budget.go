package v1

import (
	"fmt"
	"net/http"

	"github.com/expense-tracker/backend/internal/budget"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RegisterBudgetRoutes registers the routes for the budget.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetBudget)
	r.PATCH("", co.UpdateBudget)
}

// BudgetEditable is the set of fields settable on the budget.
type BudgetEditable struct {
	Amount *decimal.Decimal `json:"amount" example:"1200"`  // The monthly budget, must be larger than zero
	Month  *types.Month     `json:"month" example:"2023-08"` // The selected month
}

// BudgetDisplay contains preformatted strings for the budget view.
type BudgetDisplay struct {
	Spent     string `json:"spent" example:"850.00 of 1,000.00"` // Spend against the budget
	Remaining string `json:"remaining" example:"150.00"`          // Amount left in the budget
	Percent   string `json:"percent" example:"85%"`               // Percent of the budget spent
}

// BudgetLinks are the links for the budget.
type BudgetLinks struct {
	Self  string `json:"self" example:"http://example.com/v1/budget"`                 // The budget itself
	Month string `json:"month" example:"http://example.com/v1/months?month=2023-08"` // The summary of the selected month
}

// Budget is the API representation of the budget for the selected month.
type Budget struct {
	budget.Summary
	Display BudgetDisplay `json:"display"`
	Links   BudgetLinks   `json:"links"`
}

type BudgetResponse struct {
	Data Budget `json:"data"` // The budget data
}

// GetBudget returns the budget summary for the selected month
//
//	@Summary		Get budget
//	@Description	Returns the budget and the spend for the selected month
//	@Tags			Budget
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		500	{object}	httpError
//	@Router			/v1/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	co.respondBudget(c)
}

// UpdateBudget updates the budget settings
//
//	@Summary		Update budget
//	@Description	Updates the budget amount, the selected month or both. Setting an amount replaces the budget, amounts are never added up.
//	@Tags			Budget
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			budget	body		BudgetEditable	true	"Budget"
//	@Router			/v1/budget [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	var update BudgetEditable
	if err := httputil.BindData(c, &update); err != nil {
		respondError(c, err)
		return
	}

	if update.Amount != nil {
		if err := co.Budget.SetAmount(*update.Amount); err != nil {
			respondError(c, err)
			return
		}
	}

	if update.Month != nil {
		co.Budget.SetMonth(*update.Month)
	}

	co.respondBudget(c)
}

// respondBudget writes the budget summary for the selected month.
func (co Controller) respondBudget(c *gin.Context) {
	month := co.Budget.Settings().Month

	spent, err := models.SumInRange(co.DB, month.Start(), month.End())
	if err != nil {
		respondError(c, err)
		return
	}

	summary := co.Budget.Summarize(spent)

	c.JSON(http.StatusOK, BudgetResponse{Data: Budget{
		Summary: summary,
		Display: displayStrings(summary),
		Links: BudgetLinks{
			Self:  fmt.Sprintf("%s/v1/budget", requestURL(c)),
			Month: fmt.Sprintf("%s/v1/months?month=%s", requestURL(c), month),
		},
	}})
}

// displayStrings formats the summary for direct display, with digit
// grouping for the English locale.
func displayStrings(summary budget.Summary) BudgetDisplay {
	p := message.NewPrinter(language.English)

	return BudgetDisplay{
		Spent:     p.Sprintf("%.2f of %.2f", summary.Spent.InexactFloat64(), summary.Amount.InexactFloat64()),
		Remaining: p.Sprintf("%.2f", summary.Remaining.InexactFloat64()),
		Percent:   fmt.Sprintf("%d%%", summary.PercentSpent),
	}
}
