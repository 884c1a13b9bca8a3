package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
		r.GET("/feed", co.GetExpenseFeed)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// GetExpenses returns a list of expenses filtered by the query parameters
//
//	@Summary		List expenses
//	@Description	Returns a list of expenses
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{object}	ExpenseListResponse
//	@Failure		400			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			category	query		string	false	"Filter by category"
//	@Param			note		query		string	false	"Filter by notes, glob patterns are supported"
//	@Param			fromDate	query		string	false	"Earliest date to include, in YYYY-MM-DD format"
//	@Param			untilDate	query		string	false	"Latest date to include, in YYYY-MM-DD format"
//	@Param			offset		query		uint	false	"The offset of the first expense returned. Defaults to 0."
//	@Param			limit		query		int		false	"Maximum number of expenses to return. Defaults to 50."
//	@Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		respondError(c, err)
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := co.DB.Where(&model, queryFields...).Order("date DESC, id DESC")

	if !filter.FromDate.IsZero() {
		q = q.Where("date >= ?", types.TimeOf(filter.FromDate))
	}

	if !filter.UntilDate.IsZero() {
		// The untilDate day is included in the range
		q = q.Where("date <= ?", types.TimeOf(filter.UntilDate.Add(24*time.Hour-time.Millisecond)))
	}

	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		respondError(c, err)
		return
	}

	if filter.Note != "" {
		expenses = filterByNote(expenses, filter.Note)
	}

	// When the limit is not set, the default of 50 applies. A negative
	// limit returns all matching expenses.
	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}

	total := int64(len(expenses))
	expenses = paginate(expenses, filter.Offset, limit)

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		o := Expense{Expense: expense}
		o.links(c)
		data = append(data, o)
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// GetExpense returns a single expense by its ID
//
//	@Summary		Get expense
//	@Description	Returns a specific expense
//	@Tags			Expenses
//	@Produce		json
//	@Success		200	{object}	ExpenseResponse
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		uint64	true	"ID of the expense"
//	@Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	expense, err := models.ExpenseByID(co.DB, uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	data := Expense{Expense: expense}
	data.links(c)

	c.JSON(http.StatusOK, ExpenseResponse{Data: data})
}

// CreateExpense creates a new expense
//
//	@Summary		Create expense
//	@Description	Creates a new expense
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	ExpenseResponse
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			expense	body		ExpenseCreate	true	"Expense"
//	@Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var create ExpenseCreate
	if err := httputil.BindData(c, &create); err != nil {
		respondError(c, err)
		return
	}

	if !create.Amount.IsPositive() {
		respondError(c, errExpenseAmountNotPositive)
		return
	}

	expense := create.model()
	if err := co.DB.Create(&expense).Error; err != nil {
		respondError(c, err)
		return
	}

	co.publishExpenses()

	data := Expense{Expense: expense}
	data.links(c)

	c.JSON(http.StatusCreated, ExpenseResponse{Data: data})
}

// UpdateExpense updates an existing expense
//
//	@Summary		Update expense
//	@Description	Updates an expense. Only values to be updated need to be specified.
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	ExpenseResponse
//	@Failure		400		{object}	httpError
//	@Failure		404		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			id		path		uint64			true	"ID of the expense"
//	@Param			expense	body		ExpenseCreate	true	"Expense"
//	@Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	expense, err := models.ExpenseByID(co.DB, uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseCreate{})
	if err != nil {
		respondError(c, err)
		return
	}

	var update ExpenseCreate
	if err := httputil.BindData(c, &update); err != nil {
		respondError(c, err)
		return
	}

	if slices.Contains(updateFields, any("Amount")) && !update.Amount.IsPositive() {
		respondError(c, errExpenseAmountNotPositive)
		return
	}

	if err := co.DB.Model(&expense).Select("", updateFields...).Updates(update.model()).Error; err != nil {
		respondError(c, err)
		return
	}

	co.publishExpenses()

	data := Expense{Expense: expense}
	data.links(c)

	c.JSON(http.StatusOK, ExpenseResponse{Data: data})
}

// DeleteExpense deletes an expense
//
//	@Summary		Delete expense
//	@Description	Deletes an expense
//	@Tags			Expenses
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		uint64	true	"ID of the expense"
//	@Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	expense, err := models.ExpenseByID(co.DB, uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := co.DB.Delete(&expense).Error; err != nil {
		respondError(c, err)
		return
	}

	co.publishExpenses()

	c.JSON(http.StatusNoContent, nil)
}

// GetExpenseFeed streams the expense list as server-sent events
//
//	@Summary		Expense feed
//	@Description	Streams the expense list as server-sent events. The current list is sent immediately, updates follow as they happen.
//	@Tags			Expenses
//	@Produce		text/event-stream
//	@Success		200
//	@Router			/v1/expenses/feed [get]
func (co Controller) GetExpenseFeed(c *gin.Context) {
	events, cancel := co.Expenses.Subscribe()
	defer cancel()

	// The Content-Type header is set by the SSE render on the first event
	c.Writer.Header().Set("Cache-Control", "no-cache")

	for {
		select {
		case expenses, ok := <-events:
			if !ok {
				return
			}

			c.SSEvent("expenses", expenses)
			c.Writer.Flush()

		case <-c.Request.Context().Done():
			return
		}
	}
}

// filterByNote returns the expenses whose notes match the glob pattern.
// Matching is case-insensitive and the pattern matches anywhere in the
// notes.
func filterByNote(expenses []models.Expense, pattern string) []models.Expense {
	pattern = "*" + strings.ToLower(pattern) + "*"

	matching := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Notes == nil {
			continue
		}

		if glob.Glob(pattern, strings.ToLower(*expense.Notes)) {
			matching = append(matching, expense)
		}
	}

	return matching
}

// paginate returns the requested page of the expense list. A negative
// limit returns everything from the offset on.
func paginate(expenses []models.Expense, offset uint, limit int) []models.Expense {
	if offset >= uint(len(expenses)) {
		return []models.Expense{}
	}

	expenses = expenses[offset:]
	if limit >= 0 && limit < len(expenses) {
		expenses = expenses[:limit]
	}

	return expenses
}
