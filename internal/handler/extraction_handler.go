package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradedocs/internal/domain"
	"tradedocs/internal/service"
)

// ExtractionHandler handles trade document extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// Create handles POST /api/v1/extractions
// @Summary Run document extraction
// @Description Upload up to three trade documents (PDF, JPG, PNG) and extract trade data via the configured model
// @Tags extractions
// @Accept multipart/form-data
// @Produce json
// @Param invoice formData file false "Commercial invoice"
// @Param packing_list formData file false "Packing list"
// @Param bill_of_lading formData file false "Bill of lading"
// @Success 200 {object} APIResponse{data=domain.ExtractionResult} "Extraction completed"
// @Failure 400 {object} APIResponse "No documents or unsupported type"
// @Failure 409 {object} APIResponse "Extraction already in flight"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 502 {object} APIResponse "Model call failed or returned nothing"
// @Failure 503 {object} APIResponse "Extractor not configured"
// @Router /extractions [post]
func (h *ExtractionHandler) Create(c *gin.Context) {
	var docs []service.SlotDocument

	// Collect populated slots in canonical order, whatever order the form
	// fields arrived in.
	for _, slot := range domain.SlotOrder {
		file, header, err := c.Request.FormFile(string(slot))
		if err != nil {
			// http.ErrMissingFile and malformed-form errors both mean the
			// slot is unpopulated.
			continue
		}
		defer func() { _ = file.Close() }()
		docs = append(docs, service.SlotDocument{Slot: slot, File: file, Header: header})
	}

	if len(docs) == 0 {
		RespondError(c, http.StatusBadRequest, "NO_DOCUMENTS", "select at least one document before analyzing")
		return
	}

	result, err := h.extractionService.Extract(c.Request.Context(), service.ExtractionInput{Documents: docs})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
