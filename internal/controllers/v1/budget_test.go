package v1_test

import (
	"net/http"
	"time"

	"github.com/expense-tracker/backend/internal/budget"
	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsBudget() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, baseURL+"/v1/budget", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetBudgetDefaults() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Amount.Equal(budget.DefaultAmount))
	assert.True(suite.T(), response.Data.Spent.IsZero())
	assert.Equal(suite.T(), int64(0), response.Data.PercentSpent)
	assert.Equal(suite.T(), budget.TierGood, response.Data.Tier)
	assert.Equal(suite.T(), baseURL+"/v1/budget", response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestGetBudgetWithSpending() {
	// The default selected month is the current one, expenses default to
	// the current date and therefore count towards it
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(850), Category: "Housing"})

	r := test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Spent.Equal(testAmount(850)))
	assert.True(suite.T(), response.Data.Remaining.Equal(testAmount(150)))
	assert.Equal(suite.T(), int64(85), response.Data.PercentSpent)
	assert.Equal(suite.T(), budget.TierWarning, response.Data.Tier)
	assert.Equal(suite.T(), "850.00 of 1,000.00", response.Data.Display.Spent)
	assert.Equal(suite.T(), "85%", response.Data.Display.Percent)
}

func (suite *TestSuiteStandard) TestUpdateBudgetAmount() {
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(850), Category: "Housing"})

	// Setting a budget replaces the previous one, it is never added to
	r := test.Request(suite.T(), suite.router, http.MethodPatch, baseURL+"/v1/budget", map[string]any{
		"amount": 500,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Amount.Equal(testAmount(500)))
	assert.True(suite.T(), response.Data.Remaining.Equal(testAmount(-350)))
	assert.Equal(suite.T(), int64(170), response.Data.PercentSpent)
	assert.Equal(suite.T(), int64(100), response.Data.Progress)
	assert.Equal(suite.T(), budget.TierExceeded, response.Data.Tier)
}

func (suite *TestSuiteStandard) TestUpdateBudgetAmountNotPositive() {
	r := test.Request(suite.T(), suite.router, http.MethodPatch, baseURL+"/v1/budget", map[string]any{
		"amount": -10,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The budget is unchanged
	r = test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/budget", "")

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(budget.DefaultAmount))
}

func (suite *TestSuiteStandard) TestUpdateBudgetMonth() {
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(99), Category: "Food", Date: time.Date(2023, 8, 4, 12, 0, 0, 0, time.UTC)})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, baseURL+"/v1/budget", map[string]any{
		"month": "2023-08",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "2023-08", response.Data.Month.String())
	assert.True(suite.T(), response.Data.Spent.Equal(testAmount(99)))
	assert.Equal(suite.T(), baseURL+"/v1/months?month=2023-08", response.Data.Links.Month)
}

func (suite *TestSuiteStandard) TestUpdateBudgetInvalidBody() {
	r := test.Request(suite.T(), suite.router, http.MethodPatch, baseURL+"/v1/budget", `{ invalid`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
