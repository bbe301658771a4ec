package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reoring/jsonskema"
	"github.com/reoring/jsonskema/middleware"
)

// ValidateJSON decodes and validates the request body, storing the instance in
// the request context on success or returning 400 otherwise.
func ValidateJSON(v *jsonskema.Validator, opt ...jsonskema.LoadOpt) echo.MiddlewareFunc {
	o := middleware.DefaultLoadOpt()
	if len(opt) > 0 {
		o = opt[len(opt)-1]
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			inst, ev, err := middleware.Decode(v, c.Request().Body, o)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
			}
			if ev != nil {
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(ev))
			}
			c.SetRequest(c.Request().WithContext(middleware.ContextWithInstance(c.Request().Context(), inst)))
			return next(c)
		}
	}
}

// GetInstance fetches the validated instance from echo.Context.
func GetInstance(c echo.Context) (any, bool) {
	return middleware.InstanceFromContext(c.Request().Context())
}
