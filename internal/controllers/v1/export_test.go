package v1_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsExport() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, baseURL+"/v1/export", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetExport() {
	suite.createTestExpense(v1.ExpenseCreate{
		Amount:   testAmount(17.5),
		Category: "Food",
		Date:     time.Date(2023, 8, 4, 18, 30, 0, 0, time.UTC),
		Notes:    testNotes("Lunch, with dessert"),
	})

	r := test.Request(suite.T(), suite.router, http.MethodGet, baseURL+"/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "text/csv", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "attachment; filename=")
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), ".csv")

	body := r.Body.String()
	assert.True(suite.T(), strings.HasPrefix(body, "ID,Amount,Category,Date,Notes\n"))
	assert.Contains(suite.T(), body, `17.5,Food,2023-08-04,"Lunch, with dessert"`)
}

func (suite *TestSuiteStandard) TestCreateExport() {
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(10), Category: "Food"})
	suite.createTestExpense(v1.ExpenseCreate{Amount: testAmount(20), Category: "Housing"})

	dir := suite.T().TempDir()

	r := test.Request(suite.T(), suite.router, http.MethodPost, baseURL+"/v1/export", map[string]any{
		"directory": dir,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 2, response.Data.Count)
	assert.Equal(suite.T(), dir, filepath.Dir(response.Data.Path))

	content, err := os.ReadFile(response.Data.Path)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), strings.HasPrefix(string(content), "ID,Amount,Category,Date,Notes\n"))
}

func (suite *TestSuiteStandard) TestCreateExportDefaultDirectory() {
	// An empty body selects the configured export directory
	r := test.Request(suite.T(), suite.router, http.MethodPost, baseURL+"/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 0, response.Data.Count)
	assert.FileExists(suite.T(), response.Data.Path)
}

func (suite *TestSuiteStandard) TestCreateExportFailure() {
	// A file blocking the directory path makes the export fail
	dir := suite.T().TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.Nil(suite.T(), os.WriteFile(blocked, []byte("not a directory"), 0o600))

	r := test.Request(suite.T(), suite.router, http.MethodPost, baseURL+"/v1/export", map[string]any{
		"directory": blocked,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
