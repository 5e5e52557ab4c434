package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krthik777/nutritrackBackend/internal/core"
)

// UploadHandler proxies multipart file uploads to the external image host.
// /uploadImage and /scanfood share the same contract and differ only in
// how the frontend uses the returned URL.
type UploadHandler struct {
	uploadService core.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(us core.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: us}
}

// UploadImage handles POST /api/uploadImage.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	h.handleUpload(c)
}

// ScanFood handles POST /api/scanfood.
func (h *UploadHandler) ScanFood(c *gin.Context) {
	h.handleUpload(c)
}

func (h *UploadHandler) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "No file uploaded."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Could not read uploaded file.", Details: err.Error()})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Could not read uploaded file.", Details: err.Error()})
		return
	}

	url, err := h.uploadService.Upload(
		c.Request.Context(),
		content,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNoFile) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "No file uploaded."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Upload failed.", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, UploadResponse{URL: url})
}
