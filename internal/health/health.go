package health

import (
	"time"

	"github.com/gin-gonic/gin"

	"match-backend/internal/shared/config"
	"match-backend/internal/shared/server/respond"
)

// Handler reports service liveness and provider-key presence so the
// frontend can distinguish a broken deploy from a missing key.
type Handler struct {
	Cfg config.Config
	now func() time.Time
}

// NewHandler constructs a Handler.
func NewHandler(cfg config.Config) *Handler {
	return &Handler{Cfg: cfg, now: time.Now}
}

// RegisterRoutes attaches the health route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"config": gin.H{
			"hasApiKey":    h.Cfg.DeepSeekAPIKey != "",
			"apiKeyLength": len(h.Cfg.DeepSeekAPIKey),
			"environment":  h.Cfg.Env,
		},
	})
}
