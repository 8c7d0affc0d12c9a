package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/huyphan2705/hireflow/internal/apperror"
)

func actorTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireActor(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor_id": ActorID(c)})
	})
	return r
}

func TestRequireActor(t *testing.T) {
	router := actorTestRouter()

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid id", "42", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"non-numeric", "abc", http.StatusUnauthorized},
		{"zero id", "0", http.StatusUnauthorized},
		{"negative id", "-1", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("X-Actor-ID", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err        error
		wantStatus int
	}{
		{apperror.Validation("bad input"), http.StatusBadRequest},
		{apperror.NotFound("missing"), http.StatusNotFound},
		{apperror.Authorization("not yours"), http.StatusForbidden},
		{apperror.InvalidState("wrong status"), http.StatusConflict},
		{apperror.DuplicateInvite("already invited"), http.StatusConflict},
		{apperror.ExternalProvider("model down", nil), http.StatusBadGateway},
		{apperror.Persistence("db down", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(apperror.KindOf(tc.err).String(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, tc.err)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}
