package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/samyog8/community-events-backend/config"
	"github.com/samyog8/community-events-backend/controllers"
	"github.com/samyog8/community-events-backend/database"
	"github.com/samyog8/community-events-backend/models"
	"github.com/samyog8/community-events-backend/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open("file:"+path+"?_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
	}
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	controllers.Init(db, cfg, tokens)

	router := gin.New()
	SetupRoutes(router)
	return router, db
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/auth/login", "", gin.H{
		"username": "admin", "password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.AccessToken == "" {
		t.Fatalf("login response: %s", w.Body.String())
	}
	return resp.AccessToken
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/auth/login", "", gin.H{
		"username": "admin", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad credentials status = %d, want 401", w.Code)
	}

	login(t, router)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/admin/dashboard", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", w.Code)
	}

	w = doJSON(router, http.MethodGet, "/admin/dashboard", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token status = %d, want 401", w.Code)
	}

	token := login(t, router)
	w = doJSON(router, http.MethodGet, "/admin/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("valid token status = %d: %s", w.Code, w.Body.String())
	}
}

func TestRegistrationFlow(t *testing.T) {
	router, db := newTestRouter(t)
	token := login(t, router)

	date := models.Today().AddDate(0, 0, 7).Format("2006-01-02")
	w := doJSON(router, http.MethodPost, "/admin/events", token, gin.H{
		"name":         "Summer Community Festival",
		"description":  "Annual summer celebration",
		"date":         date,
		"start_time":   "10:00",
		"end_time":     "18:00",
		"max_capacity": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create event status = %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID             uint `json:"id"`
		AvailableSpots int  `json:"available_spots"`
		CanRegister    bool `json:"can_register"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if created.AvailableSpots != 2 || !created.CanRegister {
		t.Errorf("new event availability = %+v", created)
	}

	registerURL := fmt.Sprintf("/events/%d/register", created.ID)
	form := gin.H{
		"first_name": "Grace", "last_name": "Hopper", "email": "grace@example.com",
	}
	if w := doJSON(router, http.MethodPost, registerURL, "", form); w.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", w.Code, w.Body.String())
	}
	// Second submission with the same email is rejected.
	if w := doJSON(router, http.MethodPost, registerURL, "", form); w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400: %s", w.Code, w.Body.String())
	}

	// Fill the last seat, then the event reads as full.
	form2 := gin.H{
		"first_name": "Alan", "last_name": "Turing", "email": "alan@example.com",
	}
	if w := doJSON(router, http.MethodPost, registerURL, "", form2); w.Code != http.StatusCreated {
		t.Fatalf("second register status = %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/events/%d", created.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get event status = %d", w.Code)
	}
	var got struct {
		AvailableSpots int    `json:"available_spots"`
		CanRegister    bool   `json:"can_register"`
		Availability   string `json:"availability"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if got.AvailableSpots != 0 || got.CanRegister || got.Availability != "Unavailable" {
		t.Errorf("full event availability = %+v", got)
	}

	// Triage: confirm the first registration, then cancel the second one
	// publicly and watch a seat come back.
	var regs []models.Registration
	if err := db.Order("id").Find(&regs).Error; err != nil || len(regs) != 2 {
		t.Fatalf("registrations in db: %v (%d)", err, len(regs))
	}
	confirmURL := fmt.Sprintf("/admin/registrations/%d/confirm", regs[0].ID)
	if w := doJSON(router, http.MethodPost, confirmURL, token, nil); w.Code != http.StatusOK {
		t.Errorf("confirm status = %d: %s", w.Code, w.Body.String())
	}
	// A second confirm is a no-op conflict.
	if w := doJSON(router, http.MethodPost, confirmURL, token, nil); w.Code != http.StatusConflict {
		t.Errorf("second confirm status = %d, want 409", w.Code)
	}

	cancelURL := fmt.Sprintf("/registrations/%d/cancel", regs[1].ID)
	if w := doJSON(router, http.MethodPost, cancelURL, "", nil); w.Code != http.StatusOK {
		t.Errorf("cancel status = %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/events/%d", created.ID), "", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if got.AvailableSpots != 1 || !got.CanRegister {
		t.Errorf("availability after cancel = %+v", got)
	}

	// My registrations by email, any case.
	w = doJSON(router, http.MethodGet, "/registrations?email=GRACE@example.com", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("my registrations status = %d", w.Code)
	}
	var mine []models.Registration
	if err := json.Unmarshal(w.Body.Bytes(), &mine); err != nil || len(mine) != 1 {
		t.Fatalf("my registrations: %v (%s)", err, w.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := login(t, router)

	date := models.Today().AddDate(0, 0, 7).Format("2006-01-02")
	w := doJSON(router, http.MethodPost, "/admin/events", token, gin.H{
		"name":         "Community Talk Night",
		"description":  "Guest speakers",
		"date":         date,
		"start_time":   "18:00",
		"end_time":     "20:00",
		"max_capacity": 10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create event status = %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	registerURL := fmt.Sprintf("/events/%d/register", created.ID)
	tests := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"first_name": "Grace", "last_name": "Hopper"}},
		{"bad email", gin.H{"first_name": "Grace", "last_name": "Hopper", "email": "not-an-email"}},
		{"short first name", gin.H{"first_name": "G", "last_name": "Hopper", "email": "g@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doJSON(router, http.MethodPost, registerURL, "", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}

	// Unknown event is a 404.
	if w := doJSON(router, http.MethodPost, "/events/9999/register", "", gin.H{
		"first_name": "Grace", "last_name": "Hopper", "email": "g@example.com",
	}); w.Code != http.StatusNotFound {
		t.Errorf("unknown event status = %d, want 404", w.Code)
	}

	// Bad event payloads are rejected by binding or service validation.
	if w := doJSON(router, http.MethodPost, "/admin/events", token, gin.H{
		"name": "Bad", "description": "End before start", "date": date,
		"start_time": "18:00", "end_time": "17:00", "max_capacity": 10,
	}); w.Code != http.StatusBadRequest {
		t.Errorf("bad time range status = %d, want 400", w.Code)
	}
}
