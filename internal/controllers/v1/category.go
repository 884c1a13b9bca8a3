package v1

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetCategories)
}

// GetCategories returns the list of expense categories
//
//	@Summary		List categories
//	@Description	Returns the fixed list of expense categories
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	data := make([]Category, 0, len(models.Categories))
	for _, category := range models.Categories {
		data = append(data, Category{
			Category: category,
			Links: CategoryLinks{
				Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", requestURL(c), url.QueryEscape(category.Name)),
			},
		})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}
