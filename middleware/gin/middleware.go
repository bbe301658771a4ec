package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reoring/jsonskema"
	"github.com/reoring/jsonskema/middleware"
)

// ValidateJSON decodes the request body with opt (DefaultLoadOpt when omitted),
// validates it with v and stores the instance in the request context. Invalid
// bodies are answered with 400 and the basic output units.
func ValidateJSON(v *jsonskema.Validator, opt ...jsonskema.LoadOpt) gin.HandlerFunc {
	o := middleware.DefaultLoadOpt()
	if len(opt) > 0 {
		o = opt[len(opt)-1]
	}
	return func(c *gin.Context) {
		inst, ev, err := middleware.Decode(v, c.Request.Body, o)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if ev != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(ev))
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithInstance(c.Request.Context(), inst))
		c.Next()
	}
}

// GetInstance fetches the validated instance from gin.Context.
func GetInstance(c *gin.Context) (any, bool) {
	return middleware.InstanceFromContext(c.Request.Context())
}
