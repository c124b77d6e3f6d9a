package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"invex/internal/domain"
	"invex/internal/service"
)

// ExtractHandler handles document extraction endpoints.
type ExtractHandler struct {
	extractionService service.ExtractionService
	maxFileSize       int64
}

// NewExtractHandler creates a new ExtractHandler. maxFileSizeMB bounds the
// accepted upload size.
func NewExtractHandler(extractionService service.ExtractionService, maxFileSizeMB int64) *ExtractHandler {
	return &ExtractHandler{
		extractionService: extractionService,
		maxFileSize:       maxFileSizeMB * 1024 * 1024,
	}
}

// Extract handles POST /api/v1/extract
// @Summary Extract invoice data from a document
// @Description Upload a PDF, image, or spreadsheet and receive normalized invoices, products, and customers
// @Tags extract
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to extract (PDF, JPG, PNG, XLSX, or XLS)"
// @Success 200 {object} APIResponse{data=domain.RecordBag} "Extraction result with validation warnings"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Router /extract [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > h.maxFileSize {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	fileType, ok := domain.FileTypeFromName(header.Filename)
	if !ok {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "READ_FAILED", "could not read uploaded file")
		return
	}
	if int64(len(data)) > h.maxFileSize {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	bag, err := h.extractionService.Extract(c.Request.Context(), service.ExtractInput{
		FileName:    header.Filename,
		FileType:    fileType,
		ContentType: domain.ExtensionContentTypes[ext],
		Data:        data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bag)
}
