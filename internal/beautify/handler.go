package beautify

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"match-backend/internal/shared/config"
	"match-backend/internal/shared/server/respond"
)

// Handler wires the beautify proxy endpoint.
type Handler struct {
	Svc *Service
	Cfg config.Config
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, cfg config.Config) *Handler {
	return &Handler{Svc: svc, Cfg: cfg}
}

// RegisterRoutes attaches the beautify route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, extra ...gin.HandlerFunc) {
	handlers := append([]gin.HandlerFunc{}, extra...)
	handlers = append(handlers, h.beautify)
	rg.POST("/beautify", handlers...)
}

type beautifyRequest struct {
	Resume string `json:"resume"`
}

func (h *Handler) beautify(c *gin.Context) {
	if !h.Cfg.HasPlausibleAPIKey() {
		respond.Error(c, http.StatusInternalServerError, "config_error", "服务配置错误：API密钥未配置")
		return
	}

	var req beautifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Resume == "" || utf8.RuneCountInString(req.Resume) < MinResumeLen {
		respond.Error(c, http.StatusBadRequest, "validation_error", "简历内容过短，请提供更详细的信息（至少100字）")
		return
	}

	result, err := h.Svc.Beautify(c.Request.Context(), req.Resume)
	if err != nil {
		respond.ProviderError(c, err)
		return
	}
	c.Set("reportId", result.ResumeID)

	respond.OK(c, gin.H{
		"success":     true,
		"htmlContent": result.HTMLContent,
		"resumeId":    result.ResumeID,
		"resumeUrl":   result.ResumeURL,
		"title":       result.Title,
		"usage":       result.Usage,
	})
}
