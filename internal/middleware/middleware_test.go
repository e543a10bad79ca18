package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"search-srv/pkg/log"
	"search-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubManager struct {
	tokens map[string]scope.Payload
}

func (s stubManager) Verify(token string) (scope.Payload, error) {
	p, ok := s.tokens[token]
	if !ok {
		return scope.Payload{}, errors.New("bad token")
	}
	return p, nil
}

func newAuthRouter(mgr scope.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := New(log.NewNop(), mgr, "access_token")
	r.GET("/whoami", mw.OptionalAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, scope.GetScopeFromContext(c.Request.Context()).UserID)
	})
	return r
}

func TestOptionalAuth(t *testing.T) {
	mgr := stubManager{tokens: map[string]scope.Payload{
		"good": {UserID: "42"},
	}}

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "bearer header", header: "Bearer good", want: "42"},
		{name: "raw header", header: "good", want: "42"},
		{name: "cookie", cookie: "good", want: "42"},
		{name: "invalid token is anonymous", header: "Bearer forged", want: ""},
		{name: "no token is anonymous", want: ""},
	}

	r := newAuthRouter(mgr)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestOptionalAuth_NoManager(t *testing.T) {
	r := newAuthRouter(nil)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(log.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig()))
	r.GET("/search/all", func(c *gin.Context) { c.Status(http.StatusOK) })

	pre := httptest.NewRequest(http.MethodOptions, "/search/all", nil)
	pre.Header.Set("Origin", "https://mundotango.life")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, pre)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	get := httptest.NewRequest(http.MethodGet, "/search/all", nil)
	get.Header.Set("Origin", "https://mundotango.life")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, get)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
