package v1_test

import (
	"net/http"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsCategories() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, baseURL+"/v1/categories", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetCategories() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 9)
	assert.Equal(suite.T(), "Food", response.Data[0].Name)
	assert.Equal(suite.T(), "Other", response.Data[8].Name)
	assert.Equal(suite.T(), baseURL+"/v1/expenses?category=Food", response.Data[0].Links.Expenses)
}
