package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invex/internal/csvexport"
	"invex/internal/domain"
)

// ExportHandler handles CSV export of an extraction result.
type ExportHandler struct{}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportCSV handles POST /api/v1/export
// @Summary Export a record bag as CSV
// @Description Accepts a previously extracted record bag and streams it as a CSV attachment
// @Tags export
// @Accept json
// @Produce text/csv
// @Param bag body domain.RecordBag true "Record bag to export"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} APIResponse "Invalid record bag"
// @Router /export [post]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	var bag domain.RecordBag
	if err := c.ShouldBindJSON(&bag); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a record bag")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="extraction.csv"`)
	c.Status(http.StatusOK)

	_, _ = c.Writer.Write(csvexport.BOM)
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteBag(&bag); err != nil {
		// Headers are already sent; nothing more to do than stop writing.
		return
	}
	w.Flush()
}
