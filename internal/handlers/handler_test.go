package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"recollect/internal/config"
	"recollect/internal/models"
	"recollect/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	// :memory: databases are per-connection; keep the pool at one.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	db.AutoMigrate(&models.User{}, &models.Content{}, &models.ShareLink{}, &models.AuditLog{}, &models.RecallView{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		JWTSecret:       "test-secret-12345678901234567890123456789012",
		ShareHashLength: 10,
		CORSOrigins:     "http://localhost:5173",
		ShareBaseURL:    "http://localhost:8080",
	}

	tokens := services.NewTokenService(cfg.JWTSecret)
	users := services.NewUserService(db, logger)
	content := services.NewContentService(db)
	shares := services.NewShareService(db, nil, logger, cfg.ShareHashLength)
	importer := services.NewImportService(db, shares, content, logger)
	audit := services.NewAuditService(db, logger)
	stats := services.NewRecallStatsService(db, logger)
	qr := services.NewQRService()

	h := NewHandler(cfg, logger, db, nil, tokens, users, content, shares, importer, audit, stats, qr)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter()
}

// startStatsWorker runs the recall stats worker and returns its stop func.
func startStatsWorker(h *Handler) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go h.statsService.Start(ctx)
	return cancel
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doJSON fires a JSON request with an optional auth token and returns
// the recorder.
func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		buf = bytes.NewBuffer(jsonBody)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		// Raw token, no "Bearer " prefix
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signupAndSignin registers a user through the API and returns their token.
func signupAndSignin(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(r, "POST", "/api/v1/signup", map[string]string{"username": username, "password": password}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("signup failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, "POST", "/api/v1/signin", map[string]string{"username": username, "password": password}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("signin failed: %d %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("signin returned no token")
	}
	return token
}
