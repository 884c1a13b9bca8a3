package v1

import (
	"time"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID uint64 `uri:"id" binding:"required"` // ID of the resource
}

type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2023-08"` // Year and month in YYYY-MM format
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

// requestURL returns the base URL for links in responses.
func requestURL(c *gin.Context) string {
	return c.GetString(httputil.ContextURL)
}

// CategoryLinks are the links for a category.
type CategoryLinks struct {
	Expenses string `json:"expenses" example:"http://example.com/v1/expenses?category=Food"` // Expenses with this category
}

// Category is the API representation of an expense category.
type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`  // List of categories
	Error *string    `json:"error"` // The error, if any occurred
}
