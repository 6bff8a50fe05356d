package reports

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"match-backend/internal/shared/server/respond"
)

// Handler serves the resume share and storage sync endpoints.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.listResumes)
	rg.GET("/resumes/:id", h.getResume)
	rg.DELETE("/resumes/:id", h.deleteResume)
	rg.GET("/sync-storage", h.loadStorage)
	rg.POST("/sync-storage", h.syncStorage)
}

// getResume is the shareable-URL path: it increments the view count on
// every fetch.
func (h *Handler) getResume(c *gin.Context) {
	id := c.Param("id")

	report, err := h.Store.View(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "获取简历失败")
		return
	}
	if report == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "简历未找到")
		return
	}
	c.Set("reportId", report.ID)

	respond.OK(c, gin.H{
		"success": true,
		"resume":  report.Summary(),
	})
}

func (h *Handler) deleteResume(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.Store.Delete(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "删除简历失败")
		return
	}
	if !deleted {
		respond.Error(c, http.StatusNotFound, "not_found", "简历未找到")
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"message": "简历已删除",
	})
}

func (h *Handler) listResumes(c *gin.Context) {
	all, err := h.Store.GetAll(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "获取历史记录失败")
		return
	}

	resumes := make([]ResumeSummary, 0, len(all))
	for _, r := range all {
		if r.Type == TypeBeautifiedHTML {
			resumes = append(resumes, r.Summary())
		}
	}

	respond.OK(c, gin.H{
		"success": true,
		"resumes": resumes,
		"total":   len(resumes),
	})
}

func (h *Handler) loadStorage(c *gin.Context) {
	all, err := h.Store.GetAll(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "加载失败")
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"reports": all,
	})
}

// syncStorage bulk-replaces the mirrored collection with the client's
// local copy.
func (h *Handler) syncStorage(c *gin.Context) {
	var body struct {
		Reports json.RawMessage `json:"reports"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Reports == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid data format")
		return
	}

	var incoming []Report
	if err := json.Unmarshal(body.Reports, &incoming); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid data format")
		return
	}

	count, err := h.Store.ReplaceAll(c.Request.Context(), incoming)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "同步失败")
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"count":   count,
	})
}
