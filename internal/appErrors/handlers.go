package appErrors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink_backend/internal/logger"
)

// HandleError converts any error into a JSON response. Unknown errors
// are logged and degraded to a generic 500; an *AppError keeps its code
// and HTTP status.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if As(err, &appErr) {
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.CtxWithError(c.Request.Context(), "request failed", err,
				"path", c.FullPath(),
				"code", appErr.Code,
			)
		}
		c.JSON(appErr.HTTPCode, gin.H{"error": appErr})
		return
	}

	logger.CtxWithError(c.Request.Context(), "unexpected error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": InternalError(err)})
}
