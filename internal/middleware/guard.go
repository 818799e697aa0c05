package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink_backend/internal/guard"
	"devlink_backend/internal/models"
	"devlink_backend/internal/repositories"
	"devlink_backend/internal/session"
)

// RequireUserType gates a route subtree behind a role check against the
// profile store. Anyone who is not an authenticated holder of the
// required role is redirected; the protected handlers never run before
// the check authorizes. Lookup failures redirect to login (fail-closed).
func RequireUserType(required models.UserType, profiles repositories.ProfileRepository) gin.HandlerFunc {
	g := guard.New(required, profiles)

	return func(c *gin.Context) {
		var identity *session.Identity
		if userID := GetUserID(c); userID != "" {
			identity = &session.Identity{ID: userID, Email: GetUserEmail(c)}
		}

		decision := g.Check(c.Request.Context(), identity)
		if decision.State != guard.StateAuthorized {
			// One redirect per check cycle, nothing rendered.
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}

		c.Next()
	}
}
