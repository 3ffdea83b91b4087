package handlers

import (
	"errors"
	"net/http"

	"finance_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for the share endpoint. PdfBase64 may carry a data-URI prefix.
type shareRequest struct {
	Email     string `json:"email" binding:"required"`
	PdfBase64 string `json:"pdfBase64" binding:"required"`
}

// @Summary      Email a PDF summary
// @Description  Relays the caller-supplied PDF to the recipient via the configured mail provider. Single attempt, no retry.
// @Tags         share
// @Accept       json
// @Produce      json
// @Param        body  body  shareRequest  true  "Recipient and base64 PDF"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/share/send [post]
// @Security     BearerAuth
func (h *Handler) sendShare(c *gin.Context) {
	var req shareRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Share.Send(req.Email, req.PdfBase64); err != nil {
		if errors.Is(err, service.ErrInvalidPDF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to send email",
			"share_send_failed", err, "recipient", req.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
}
