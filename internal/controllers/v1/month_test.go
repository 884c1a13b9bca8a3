package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsMonths() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, baseURL+"/v1/months", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetMonth() {
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(100), Category: "Food", Date: time.Date(2023, 8, 4, 12, 0, 0, 0, time.UTC)})
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(50.5), Category: "Food", Date: time.Date(2023, 8, 20, 12, 0, 0, 0, time.UTC)})
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(30), Category: "Housing", Date: time.Date(2023, 8, 31, 23, 59, 59, 0, time.UTC)})

	// In another month
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(77), Category: "Food", Date: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)})

	r := test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/months?month=2023-08", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Spent.Equal(testAmount(180.5)), "total is %s", response.Data.Spent)
	assert.Equal(suite.T(), "2023-08", response.Data.Month.String())
	assert.Equal(suite.T(), time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC), response.Data.Start)

	// All categories are part of the breakdown, in the fixed order
	assert.Len(suite.T(), response.Data.Categories, 9)
	assert.Equal(suite.T(), "food", response.Data.Categories[0].Category.Key)
	assert.True(suite.T(), response.Data.Categories[0].Spent.Equal(testAmount(150.5)))
	assert.True(suite.T(), response.Data.Categories[2].Spent.Equal(testAmount(30)))
	assert.True(suite.T(), response.Data.Categories[1].Spent.IsZero())
}

func (suite *TestSuiteStandard) TestGetMonthUnknownCategory() {
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(12), Category: "Subscriptions", Date: time.Date(2023, 8, 4, 12, 0, 0, 0, time.UTC)})

	r := test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/months?month=2023-08", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Categories outside the fixed set count towards Other
	assert.True(suite.T(), response.Data.Categories[8].Spent.Equal(testAmount(12)))
}

func (suite *TestSuiteStandard) TestGetMonthLinks() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/months?month=2023-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), baseURL+"/v1/months?month=2023-02", response.Data.Links.Next)
	assert.Equal(suite.T(), baseURL+"/v1/months?month=2022-12", response.Data.Links.Previous)
	assert.Equal(suite.T(), baseURL+"/v1/expenses?fromDate=2023-01-01&untilDate=2023-01-31", response.Data.Links.Expenses)
}

func (suite *TestSuiteStandard) TestGetMonthNoParameter() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetMonthInvalidParameter() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/months?month=August", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
