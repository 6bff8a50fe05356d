package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"match-backend/internal/llm"
)

// ProviderError maps classified provider failures onto user-facing
// messages without leaking provider internals. Auth failures surface as a
// service-misconfiguration error; rate limits keep their own status so
// callers can back off.
func ProviderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, llm.ErrAuth):
		Error(c, http.StatusInternalServerError, "provider_auth", "API密钥无效，请检查配置")
	case errors.Is(err, llm.ErrRateLimited):
		Error(c, http.StatusTooManyRequests, "provider_rate_limited", "请求过于频繁，请稍后再试")
	case errors.Is(err, llm.ErrBadResponse):
		Error(c, http.StatusInternalServerError, "provider_bad_response", "AI服务响应格式异常")
	default:
		Error(c, http.StatusInternalServerError, "provider_unavailable", "AI服务暂时不可用，请稍后再试")
	}
}
