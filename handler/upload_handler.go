package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studydrop/studydrop-be/service"
	"github.com/studydrop/studydrop-be/types"
)

const maxUploadSize = 25 << 20 // 25MB

type UploadHandler struct {
	pdfService *service.PDFService
	store      *service.DocumentStore
}

func NewUploadHandler(pdfService *service.PDFService, store *service.DocumentStore) *UploadHandler {
	return &UploadHandler{
		pdfService: pdfService,
		store:      store,
	}
}

// HandleUploadPDF accepts a multipart PDF upload, extracts its text and
// stores it under a fresh doc_id. Nothing is stored when extraction fails,
// so a failed upload never leaves a dangling document behind.
func (h *UploadHandler) HandleUploadPDF(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "invalid file",
		})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "file too large",
		})
		return
	}

	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		abortWithError(c, types.ErrUnsupportedFileType)
		return
	}

	result, err := h.pdfService.ExtractFromReader(file, header.Filename)
	if err != nil {
		abortWithError(c, err)
		return
	}

	docID := h.store.Put(result.Text)

	c.JSON(http.StatusOK, types.UploadResponse{
		DocID:     docID,
		Filename:  result.Filename,
		CharCount: result.CharCount,
		Preview:   result.Preview,
	})
}
