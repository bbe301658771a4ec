package echomw_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/reoring/jsonskema"
	echomw "github.com/reoring/jsonskema/middleware/echo"
)

func TestValidateJSON(t *testing.T) {
	v, err := jsonskema.NewBuilder().BuildBlocking(map[string]any{"required": []any{"id"}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	e := echo.New()
	e.POST("/", func(c echo.Context) error {
		inst, ok := echomw.GetInstance(c)
		if !ok {
			t.Fatalf("instance missing")
		}
		return c.JSON(http.StatusOK, inst)
	}, echomw.ValidateJSON(v))

	cases := []struct {
		body string
		code int
		want string
	}{
		{`{"id": 1}`, http.StatusOK, `"id":1`},
		{`{}`, http.StatusBadRequest, `"valid":false`},
		{`{"id": 1, "id": 2}`, http.StatusBadRequest, `"error"`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != tc.code || !strings.Contains(rec.Body.String(), tc.want) {
			t.Fatalf("%s: got %d %s", tc.body, rec.Code, rec.Body.String())
		}
	}
}
