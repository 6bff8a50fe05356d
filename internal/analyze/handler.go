package analyze

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"match-backend/internal/shared/config"
	"match-backend/internal/shared/server/respond"
)

// Handler wires the analysis proxy endpoint.
type Handler struct {
	Svc *Service
	Cfg config.Config
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, cfg config.Config) *Handler {
	return &Handler{Svc: svc, Cfg: cfg}
}

// RegisterRoutes attaches the analyze route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, extra ...gin.HandlerFunc) {
	handlers := append([]gin.HandlerFunc{}, extra...)
	handlers = append(handlers, h.analyze)
	rg.POST("/analyze", handlers...)
}

type analyzeRequest struct {
	JobDescription string `json:"jobDescription"`
	Resume         string `json:"resume"`
}

func (h *Handler) analyze(c *gin.Context) {
	if h.Cfg.DeepSeekAPIKey == "" {
		respond.Error(c, http.StatusInternalServerError, "config_error", "服务配置错误：API密钥未配置。请检查环境变量设置。")
		return
	}
	if !h.Cfg.HasPlausibleAPIKey() {
		respond.Error(c, http.StatusInternalServerError, "config_error", "服务配置错误：API密钥格式不正确")
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "请提供完整的岗位描述和简历内容")
		return
	}
	if req.JobDescription == "" || req.Resume == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "请提供完整的岗位描述和简历内容")
		return
	}
	if utf8.RuneCountInString(req.JobDescription) < MinJobDescriptionLen || utf8.RuneCountInString(req.Resume) < MinResumeLen {
		respond.Error(c, http.StatusBadRequest, "validation_error", "岗位描述和简历内容过短，请提供更详细的信息")
		return
	}

	analysis, usage, err := h.Svc.Analyze(c.Request.Context(), req.JobDescription, req.Resume)
	if err != nil {
		respond.ProviderError(c, err)
		return
	}

	respond.OK(c, gin.H{
		"success":  true,
		"analysis": analysis,
		"usage":    usage,
	})
}
