package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Route registration panics at startup when a static GET path is added
// under the public :shareLink wildcard, so the table itself is pinned here.
func TestSetupRouter(t *testing.T) {
	h, _ := setupTestHandler()
	gin.SetMode(gin.TestMode)

	var r *gin.Engine
	assert.NotPanics(t, func() {
		r = h.SetupRouter()
	})

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/v1/signup",
		"POST /api/v1/signin",
		"GET /api/v1/recall/:shareLink",
		"POST /api/v1/content",
		"GET /api/v1/content",
		"GET /api/v1/content/search",
		"DELETE /api/v1/content",
		"POST /api/v1/recall/share",
		"POST /api/v1/recall/import",
		"GET /api/v1/share/qr",
		"GET /api/v1/share/stats",
		"DELETE /api/v1/account",
		"GET /health",
	} {
		assert.True(t, registered[want], want)
	}
}

// The wildcard and the static share routes live in separate GET subtrees
// and must both dispatch.
func TestRouterWildcardAndStaticCoexist(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)
	token := signupAndSignin(t, r, "routeusr", "password123")
	hash := enableSharing(t, r, token)

	w := doJSON(r, "GET", "/api/v1/recall/"+hash, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/api/v1/share/qr", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
