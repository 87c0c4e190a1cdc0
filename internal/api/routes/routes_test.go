package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bid-ledger-api/config"
	_ "bid-ledger-api/docs"
	"bid-ledger-api/internal/api/routes"
	"bid-ledger-api/internal/app"
	"bid-ledger-api/internal/lock"
	"bid-ledger-api/internal/services"
	"bid-ledger-api/internal/storage/memory"
	"bid-ledger-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

func generateTestToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func setupTestRouter(t *testing.T, mutate func(cfg *config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWT:       config.JWTConfig{Secret: testSecret},
		Ledger:    config.LedgerConfig{MaxPitchLength: 300, SubmissionQuota: 15, SubmissionWindow: 48 * time.Hour},
		RateLimit: config.RateLimitConfig{RPS: 100, Burst: 100},
		Metrics:   config.MetricsConfig{Enabled: true},
	}
	if mutate != nil {
		mutate(cfg)
	}
	store := memory.NewStore()
	application := &app.Application{
		Config: cfg,
		Store:  store,
		Ledger: services.NewApplicationLedger(store, lock.NewLocal(), clockwork.NewRealClock(), nil, cfg.Ledger),
	}
	router := gin.New()
	routes.RegisterRoutes(router, application)
	return router
}

func call(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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

func bid(pitch string) gin.H {
	return gin.H{
		"freelancer_name":     "Ada",
		"freelancer_username": "ada",
		"freelancer_rating":   4.9,
		"proposed_price":      180,
		"delivery_days":       4,
		"pitch":               pitch,
	}
}

func TestRoutes_RequireAuth(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := call(router, http.MethodGet, "/api/v1/applications/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(router, http.MethodPost, "/api/v1/jobs/"+uuid.NewString()+"/applications", "", bid("hi"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_ReviewFlow(t *testing.T) {
	router := setupTestRouter(t, nil)
	jobID := uuid.New()
	owner := uuid.New()
	freelancers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	ids := make([]uuid.UUID, 0, len(freelancers))
	for i, f := range freelancers {
		w := call(router, http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/applications", generateTestToken(t, f), bid("pitch"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var resp dto.JobApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, i+1, resp.Position)
		assert.Equal(t, f, resp.Freelancer.ID)
		ids = append(ids, resp.ID)
	}

	// Second bid from the same freelancer
	w := call(router, http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/applications", generateTestToken(t, freelancers[0]), bid("again"))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(router, http.MethodGet, "/api/v1/jobs/"+jobID.String()+"/applications/eligibility", generateTestToken(t, freelancers[0]), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var elig dto.EligibilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &elig))
	assert.True(t, elig.HasApplied)
	assert.False(t, elig.Eligible)

	ownerToken := generateTestToken(t, owner)
	w = call(router, http.MethodPatch, "/api/v1/applications/"+ids[0].String()+"/shortlist", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = call(router, http.MethodPatch, "/api/v1/applications/"+ids[1].String()+"/shortlist", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = call(router, http.MethodPatch, "/api/v1/applications/"+ids[1].String()+"/hire", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = call(router, http.MethodGet, "/api/v1/jobs/"+jobID.String()+"/applications/summary", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary dto.JobSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.ShortlistedCount)
	require.NotNil(t, summary.HiredID)
	assert.Equal(t, ids[1], *summary.HiredID)

	w = call(router, http.MethodGet, "/api/v1/applications/my", generateTestToken(t, freelancers[2]), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []dto.JobApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "rejected", string(mine[0].Status))

	// Hired is terminal
	w = call(router, http.MethodPatch, "/api/v1/applications/"+ids[1].String()+"/reject", ownerToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(router, http.MethodGet, "/api/v1/applications/"+uuid.NewString(), ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_SubmitRateLimited(t *testing.T) {
	router := setupTestRouter(t, func(cfg *config.Config) {
		cfg.RateLimit = config.RateLimitConfig{RPS: 0.001, Burst: 1}
	})
	user := uuid.New()
	token := generateTestToken(t, user)

	w := call(router, http.MethodPost, "/api/v1/jobs/"+uuid.NewString()+"/applications", token, bid("one"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(router, http.MethodPost, "/api/v1/jobs/"+uuid.NewString()+"/applications", token, bid("two"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Reads are not limited
	w = call(router, http.MethodGet, "/api/v1/applications/my", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_HealthAndMetrics(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := call(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = call(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ledger_lock_wait_seconds")
}

func TestRoutes_SwaggerDoc(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := call(router, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/jobs/{job_id}/applications")
}

func TestRoutes_MetricsDisabled(t *testing.T) {
	router := setupTestRouter(t, func(cfg *config.Config) { cfg.Metrics.Enabled = false })

	w := call(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
