package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterMonthRoutes registers the routes for month summaries.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetMonth)
}

// MonthLinks are the links for a month summary.
type MonthLinks struct {
	Self     string `json:"self" example:"http://example.com/v1/months?month=2023-08"`                           // This month
	Next     string `json:"next" example:"http://example.com/v1/months?month=2023-09"`                           // The following month
	Previous string `json:"previous" example:"http://example.com/v1/months?month=2023-07"`                       // The preceding month
	Expenses string `json:"expenses" example:"http://example.com/v1/expenses?fromDate=2023-08-01&untilDate=2023-08-31"` // The expenses of this month
}

// MonthCategorySum is the aggregated spend for one category in a month.
type MonthCategorySum struct {
	Category models.Category `json:"category"`
	Spent    decimal.Decimal `json:"spent" example:"85.17"`
}

// Month is the spending summary for a single month.
type Month struct {
	Month      types.Month        `json:"month" example:"2023-08"`
	Start      time.Time          `json:"start" example:"2023-08-01T00:00:00Z"`                 // First moment of the month
	End        time.Time          `json:"end" example:"2023-08-31T23:59:59.999Z"`               // Last moment of the month
	Spent      decimal.Decimal    `json:"spent" example:"1174.03"`                              // Total spent in this month
	Categories []MonthCategorySum `json:"categories"`                                           // Per-category breakdown, in category order
	Links      MonthLinks         `json:"links"`
}

type MonthResponse struct {
	Data Month `json:"data"` // The month summary
}

// GetMonth returns the spending summary for a month
//
//	@Summary		Month summary
//	@Description	Returns the total and per-category spending for a month. Expenses with a category outside the fixed set count towards Other.
//	@Tags			Months
//	@Produce		json
//	@Success		200		{object}	MonthResponse
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			month	query		string	true	"The month in YYYY-MM format"
//	@Router			/v1/months [get]
func (co Controller) GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBind(&query); err != nil {
		respondError(c, err)
		return
	}

	if query.Month.IsZero() {
		respondError(c, errMonthNotSetInQuery)
		return
	}

	month := types.MonthOf(query.Month)

	spent, err := models.SumInRange(co.DB, month.Start(), month.End())
	if err != nil {
		respondError(c, err)
		return
	}

	sums, err := models.CategorySumsInRange(co.DB, month.Start(), month.End())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: Month{
		Month:      month,
		Start:      month.Start(),
		End:        month.End(),
		Spent:      spent,
		Categories: bucketSums(sums),
		Links:      monthLinks(c, month),
	}})
}

// bucketSums folds raw per-category sums into the fixed category set.
// Stored categories outside the set count towards Other. Every category
// is part of the result, categories without expenses with a sum of 0.
func bucketSums(sums []models.CategorySum) []MonthCategorySum {
	totals := make(map[string]decimal.Decimal, len(models.Categories))
	for _, sum := range sums {
		category := models.CategoryFromName(sum.Category)
		totals[category.Key] = totals[category.Key].Add(sum.Total)
	}

	buckets := make([]MonthCategorySum, 0, len(models.Categories))
	for _, category := range models.Categories {
		buckets = append(buckets, MonthCategorySum{
			Category: category,
			Spent:    totals[category.Key],
		})
	}

	return buckets
}

func monthLinks(c *gin.Context, month types.Month) MonthLinks {
	url := requestURL(c)

	return MonthLinks{
		Self:     fmt.Sprintf("%s/v1/months?month=%s", url, month),
		Next:     fmt.Sprintf("%s/v1/months?month=%s", url, month.AddDate(0, 1)),
		Previous: fmt.Sprintf("%s/v1/months?month=%s", url, month.AddDate(0, -1)),
		Expenses: fmt.Sprintf("%s/v1/expenses?fromDate=%s&untilDate=%s",
			url,
			month.Start().Format("2006-01-02"),
			month.End().Format("2006-01-02"),
		),
	}
}
