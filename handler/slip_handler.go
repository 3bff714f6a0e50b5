package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slipsense/slip-ocr-service/dto"
	"github.com/slipsense/slip-ocr-service/service"
)

type SlipHandler struct {
	slipService *service.SlipService
}

func NewSlipHandler(slipService *service.SlipService) *SlipHandler {
	return &SlipHandler{
		slipService: slipService,
	}
}

// ParseSlip handles POST /slip/parse: one slip image or PDF as multipart
// field "file".
func (h *SlipHandler) ParseSlip(c *gin.Context) {
	log.Println("Received slip parse request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	response, err := h.slipService.ParseUpload(c.Request.Context(), fileHeader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to process slip", err)
		return
	}

	log.Printf("Slip parse completed (request_id=%s, is_slip=%v)", response.RequestID, response.IsSlip)
	c.JSON(http.StatusOK, response)
}

// ParseSlipText handles POST /slip/parse-text: raw OCR text as JSON. Empty
// text is accepted and answered with the parser's terminal error record.
func (h *SlipHandler) ParseSlipText(c *gin.Context) {
	var request dto.ParseTextRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	response := h.slipService.ParseText(c.Request.Context(), request.Text)
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *SlipHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "SLIP_PARSE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
