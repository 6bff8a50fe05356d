package extract

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"match-backend/internal/shared/server/respond"
)

// Uploads above this size are rejected before extraction.
const maxUploadBytes = 10 << 20

// Handler exposes file-to-text extraction for resume uploads.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the extract route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
}

func (h *Handler) extract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "请上传文件")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "文件过大，请上传10MB以内的文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "upload_error", "文件读取失败，请重试")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "upload_error", "文件读取失败，请重试")
		return
	}
	if int64(len(data)) > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "文件过大，请上传10MB以内的文件")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	text, err := TextFromUpload(data, contentType, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "不支持的文件类型，请上传PDF、DOCX或TXT文件")
			return
		}
		respond.Error(c, http.StatusBadRequest, "extract_error", "文件解析失败，请检查文件是否损坏")
		return
	}
	if text == "" {
		respond.Error(c, http.StatusBadRequest, "extract_error", "未能从文件中提取到文本内容")
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"text":    text,
	})
}
