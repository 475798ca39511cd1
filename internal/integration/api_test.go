package integration

import (
	"asset-management-api/internal/auth"
	"asset-management-api/internal/config"
	"asset-management-api/internal/handler"
	"asset-management-api/internal/middleware"
	"asset-management-api/internal/notification"
	"asset-management-api/internal/repository"
	"asset-management-api/internal/router"
	"asset-management-api/internal/service"
	notifyadapter "asset-management-api/internal/service/notification"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC)

// IntegrationTestSuite holds the test dependencies
type IntegrationTestSuite struct {
	Router http.Handler
	Store  *repository.Store
	Config *config.Config
}

func testConfig(staticDir string) *config.Config {
	return &config.Config{
		Port: 5000,
		Static: config.StaticConfig{
			Dir:              staticDir,
			FallbackDocument: "index.html",
		},
		Upload: config.UploadConfig{MaxBytes: 1 << 20},
		Security: config.SecurityConfig{
			RateLimitRPS:    1000,
			RateLimitBurst:  1000,
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: time.Second,
			EnableCORS:      true,
			AllowedOrigins:  []string{"*"},
		},
		Server: config.ServerConfig{EnableMetrics: true},
	}
}

// setupIntegrationTest wires the full application over a freshly seeded store.
// A nil client leaves notifications disabled, as in production.
func setupIntegrationTest(t *testing.T, client notification.Notifier) *IntegrationTestSuite {
	t.Helper()

	var assignments service.AssignmentNotifier
	var notifierHealth handler.DependencyChecker
	if client != nil {
		assignments = notifyadapter.NewServiceAdapter(client)
		notifierHealth = client
	}

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<!doctype html><title>Assets</title>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.css"), []byte("body{}"), 0o644))

	cfg := testConfig(staticDir)
	logger := log.New(io.Discard, "", 0)

	seed, err := repository.LoadSeedFile("")
	require.NoError(t, err)
	store := repository.NewSeededStore(seed)

	authenticator, err := auth.NewStaticAuthenticator(auth.DefaultUsername, auth.DefaultPassword, auth.DefaultRole)
	require.NoError(t, err)

	assets := service.NewAssetService(store, logger)
	assets.SetClock(func() time.Time { return today })
	workflows := service.NewWorkflowService(store, assignments, logger)
	workflows.SetClock(func() time.Time { return today })

	h := handler.NewHandler(handler.Services{
		Assets:        assets,
		Workflows:     workflows,
		Users:         service.NewUserService(store, logger),
		Dashboard:     service.NewDashboardService(store),
		Authenticator: authenticator,
		Notifier:      notifierHealth,
	}, cfg.Upload.MaxBytes, logger)

	metrics := middleware.NewMetrics()
	metrics.RegisterResourceGauges(map[string]func() int{
		"asset":    store.CountAssets,
		"workflow": store.CountWorkflows,
		"user":     store.CountUsers,
	})

	r := router.NewRouter(h, cfg, router.Options{
		Static:  handler.NewStaticHandler(cfg.Static.Dir, cfg.Static.FallbackDocument, logger),
		Metrics: metrics,
		Logger:  logger,
	})

	return &IntegrationTestSuite{
		Router: middleware.NewLoggingMiddleware(logger).LogRequests(r),
		Store:  store,
		Config: cfg,
	}
}

// makeRequest sends a request through the full middleware chain
func (s *IntegrationTestSuite) makeRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func TestAssetLifecycle(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	// Seed + create
	rr := suite.makeRequest(t, http.MethodPost, "/api/assets", `{"building_name":"Test","region":"Asir"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	created := decodeJSON(t, rr)["asset"].(map[string]interface{})
	assert.Equal(t, "AST-004", created["id"])
	assert.Equal(t, ", ", created["coordinates"])
	assert.Equal(t, "2024-03-07", created["created"])

	// Partial update touches only condition
	rr = suite.makeRequest(t, http.MethodPut, "/api/assets/AST-004", `{"condition":"Poor"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decodeJSON(t, rr)["asset"].(map[string]interface{})
	assert.Equal(t, "Poor", updated["condition"])
	for _, field := range []string{"id", "building_name", "region", "city", "status", "area", "coordinates", "created"} {
		assert.Equal(t, created[field], updated[field], field)
	}

	// List reflects both
	rr = suite.makeRequest(t, http.MethodGet, "/api/assets", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assets := decodeJSON(t, rr)["assets"].([]interface{})
	require.Len(t, assets, 4)
	assert.Equal(t, updated, assets[3])
}

func TestSequentialAssetIDs(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	// Other kinds growing does not shift the asset sequence
	for i := 0; i < 3; i++ {
		suite.makeRequest(t, http.MethodPost, "/api/users", `{"username":"u"}`)
		suite.makeRequest(t, http.MethodPost, "/api/workflows", `{"title":"w"}`)
	}

	for i := 4; i <= 12; i++ {
		rr := suite.makeRequest(t, http.MethodPost, "/api/assets", `{}`)
		require.Equal(t, http.StatusOK, rr.Code)
		asset := decodeJSON(t, rr)["asset"].(map[string]interface{})
		assert.Equal(t, fmt.Sprintf("AST-%03d", i), asset["id"])
	}
}

func TestUpdateUnknownAsset(t *testing.T) {
	suite := setupIntegrationTest(t, nil)
	before := suite.Store.ListAssets()

	rr := suite.makeRequest(t, http.MethodPut, "/api/assets/AST-404", `{"condition":"Poor"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	body := decodeJSON(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Asset not found", body["message"])
	assert.Equal(t, before, suite.Store.ListAssets())
}

func TestWorkflowDefaults(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	rr := suite.makeRequest(t, http.MethodPost, "/api/workflows", `{"title":"Audit","status":"Completed"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	workflow := decodeJSON(t, rr)["workflow"].(map[string]interface{})
	assert.Equal(t, "WF-004", workflow["id"])
	assert.Equal(t, "Medium", workflow["priority"])
	assert.Equal(t, "Pending", workflow["status"])

	rr = suite.makeRequest(t, http.MethodPost, "/api/workflows", `{"title":"Urgent","priority":"High"}`)
	workflow = decodeJSON(t, rr)["workflow"].(map[string]interface{})
	assert.Equal(t, "High", workflow["priority"])
}

func TestWorkflowAssignmentNotification(t *testing.T) {
	received := make(chan notification.Notification, 1)
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n notification.Notification
		if err := json.NewDecoder(r.Body).Decode(&n); err == nil {
			received <- n
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer webhook.Close()

	client := notification.NewNotifierWithConfig(notification.NotificationConfig{
		URL:            webhook.URL,
		Timeout:        time.Second,
		RetryAttempts:  0,
		MaxPayloadSize: 64 * 1024,
	}, log.New(io.Discard, "", 0))
	suite := setupIntegrationTest(t, client)

	rr := suite.makeRequest(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	health := decodeJSON(t, rr)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "healthy", health["notifier"])

	rr = suite.makeRequest(t, http.MethodPost, "/api/workflows",
		`{"title":"Roof check","assigned_to":"Ahmed Al-Rashid","priority":"Urgent"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	select {
	case n := <-received:
		assert.Equal(t, notification.LevelWarning, n.Level)
		assert.Equal(t, "Ahmed Al-Rashid", n.Recipient)
		assert.Equal(t, notification.Source, n.Source)
		assert.Equal(t, "WF-004", n.Metadata["workflow_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("assignment notification was not delivered")
	}
}

func TestUsers(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	rr := suite.makeRequest(t, http.MethodPost, "/api/users", `{"username":"khalid","role":"Inspector"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	user := decodeJSON(t, rr)["user"].(map[string]interface{})
	assert.Equal(t, float64(4), user["id"])
	assert.Equal(t, "Active", user["status"])
	assert.Equal(t, "", user["name"])

	rr = suite.makeRequest(t, http.MethodGet, "/api/users", "")
	assert.Len(t, decodeJSON(t, rr)["users"], 4)
}

func TestDashboardTracksAssets(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	stats := func() map[string]interface{} {
		rr := suite.makeRequest(t, http.MethodGet, "/api/dashboard", "")
		require.Equal(t, http.StatusOK, rr.Code)
		return decodeJSON(t, rr)["stats"].(map[string]interface{})
	}

	s := stats()
	assert.Equal(t, float64(3), s["total_assets"])
	assert.Equal(t, float64(3), s["total_regions"])
	assert.Equal(t, float64(2), s["active_workflows"])

	// A repeated region adds an asset but not a region
	suite.makeRequest(t, http.MethodPost, "/api/assets", `{"region":"Riyadh"}`)
	suite.makeRequest(t, http.MethodPost, "/api/assets", `{"region":"Asir"}`)
	suite.makeRequest(t, http.MethodPost, "/api/workflows", `{"title":"New"}`)

	s = stats()
	assert.Equal(t, float64(5), s["total_assets"])
	assert.Equal(t, float64(len(suite.Store.ListAssets())), s["total_assets"])
	assert.Equal(t, float64(4), s["total_regions"])
	assert.Equal(t, float64(3), s["active_workflows"])
	assert.Equal(t, float64(3), s["total_users"])
}

func TestLogin(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	rr := suite.makeRequest(t, http.MethodPost, "/api/login", `{"username":"admin","password":"password123"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeJSON(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "System Administrator", body["user"].(map[string]interface{})["role"])

	for _, creds := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"guest","password":"password123"}`,
		`{"username":"admin","password":123}`,
		`{"username":null,"password":true}`,
		`["admin","password123"]`,
		`{}`,
	} {
		rr := suite.makeRequest(t, http.MethodPost, "/api/login", creds)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, creds)
		assert.Equal(t, false, decodeJSON(t, rr)["success"])
	}
}

func TestUploadWithoutFile(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	rr := suite.makeRequest(t, http.MethodPost, "/api/upload", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "No file part", decodeJSON(t, rr)["message"])
}

func TestStaticAndFallbackRouting(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	rr := suite.makeRequest(t, http.MethodGet, "/app.css", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "body{}", rr.Body.String())

	for _, path := range []string{"/", "/assets", "/workflows/WF-001"} {
		rr := suite.makeRequest(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, rr.Body.String(), "<title>Assets</title>", path)
	}

	// Unknown API paths do not fall back to the app shell
	rr = suite.makeRequest(t, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, false, decodeJSON(t, rr)["success"])
}

func TestHealthMetricsAndHeaders(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	rr := suite.makeRequest(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	suite.makeRequest(t, http.MethodPost, "/api/assets", `{}`)

	rr = suite.makeRequest(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	text := rr.Body.String()
	assert.Contains(t, text, `resource_records{kind="asset"} 4`)
	assert.Contains(t, text, `http_requests_total{method="POST",path="/api/assets",status="200"} 1`)
}

func TestMethodNotAllowedEnvelope(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	for _, path := range []string{"/dashboard", "/", "/health"} {
		rr := suite.makeRequest(t, http.MethodPost, path, `{}`)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, path)
		body := decodeJSON(t, rr)
		assert.Equal(t, false, body["success"], path)
		assert.Equal(t, "Method not allowed", body["message"], path)
	}
}

func TestNonObjectBodyCreatesWithDefaults(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	rr := suite.makeRequest(t, http.MethodPost, "/api/assets", `[]`)
	require.Equal(t, http.StatusOK, rr.Code)
	asset := decodeJSON(t, rr)["asset"].(map[string]interface{})
	assert.Equal(t, "AST-004", asset["id"])
	assert.Equal(t, ", ", asset["coordinates"])

	rr = suite.makeRequest(t, http.MethodPost, "/api/workflows", `"Audit"`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Medium", decodeJSON(t, rr)["workflow"].(map[string]interface{})["priority"])
}

func TestMalformedJSON(t *testing.T) {
	suite := setupIntegrationTest(t, nil)

	rr := suite.makeRequest(t, http.MethodPost, "/api/assets", `{"building_name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_JSON", decodeJSON(t, rr)["code"])
	assert.Equal(t, 3, suite.Store.CountAssets())
}
