package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/expense-tracker/backend/internal/export"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterExportRoutes registers the routes for CSV exports.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetExport)
	r.POST("", co.CreateExport)
}

// ExportCreate is the request body for a server-side export.
type ExportCreate struct {
	Directory string `json:"directory" example:"/var/lib/expense-tracker/exports"` // Target directory, defaults to the configured export directory
}

// ExportCreated describes a written export file.
type ExportCreated struct {
	Path  string `json:"path" example:"/var/lib/expense-tracker/exports/expenses_1691173800000.csv"` // Full path of the file
	Count int    `json:"count" example:"214"`                                                        // Number of exported expenses
}

type ExportResponse struct {
	Data ExportCreated `json:"data"` // The created export
}

// GetExport returns all expenses as a CSV download
//
//	@Summary		Download export
//	@Description	Returns all expenses as a CSV file
//	@Tags			Export
//	@Produce		text/csv
//	@Success		200
//	@Failure		500	{object}	httpError
//	@Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	expenses, err := models.Expenses(co.DB)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))

	if err := export.Write(c.Writer, expenses); err != nil {
		// Headers are already written at this point, all that is left
		// is logging the failure
		log.Error().Err(err).Msg("writing the CSV export response failed")
	}
}

// CreateExport writes all expenses to a CSV file on the server
//
//	@Summary		Create export file
//	@Description	Writes all expenses as a CSV file into a directory on the server
//	@Tags			Export
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	ExportResponse
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			export	body		ExportCreate	false	"Export settings"
//	@Router			/v1/export [post]
func (co Controller) CreateExport(c *gin.Context) {
	// An empty body is fine here, it selects the configured directory
	var create ExportCreate
	if err := httputil.BindData(c, &create); err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		respondError(c, err)
		return
	}

	dir := create.Directory
	if dir == "" {
		dir = co.ExportDir
	}

	expenses, err := models.Expenses(co.DB)
	if err != nil {
		respondError(c, err)
		return
	}

	path, err := export.WriteFile(dir, expenses)
	if err != nil {
		log.Error().Err(err).Str("directory", dir).Msg("writing the CSV export file failed")
		c.JSON(http.StatusInternalServerError, httpError{Error: errExportWriteFailed.Error()})
		return
	}

	c.JSON(http.StatusCreated, ExportResponse{Data: ExportCreated{
		Path:  path,
		Count: len(expenses),
	}})
}
