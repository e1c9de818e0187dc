// Package integration provides end-to-end integration tests for the catalog API.
// Tests all API endpoints against both PostgreSQL and MySQL databases.
package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/catalog/internal/app"
	catalogDTO "github.com/allisson/catalog/internal/catalog/http/dto"
	"github.com/allisson/catalog/internal/config"
	internalHTTP "github.com/allisson/catalog/internal/http"
	"github.com/allisson/catalog/internal/httputil"
	"github.com/allisson/catalog/internal/testutil"
)

//nolint:gosec // test credential, never used outside the suite
const testAPIKey = "integration-test-api-key-0001"

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	db        *sql.DB
	server    *httptest.Server
	dbDriver  string
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
	useAuth bool,
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if useAuth {
		req.Header.Set("X-API-Key", testAPIKey)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// setupIntegrationTest initializes all components for integration testing.
func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Setup database
	var db *sql.DB
	var dsn string
	if dbDriver == "postgres" {
		db = testutil.SetupPostgresDB(t)
		dsn = testutil.GetPostgresTestDSN()
	} else {
		db = testutil.SetupMySQLDB(t)
		dsn = testutil.GetMySQLTestDSN()
	}

	// Create configuration
	cfg := &config.Config{
		DBDriver:             dbDriver,
		DBConnectionString:   dsn,
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		ServerHost:           "localhost",
		ServerPort:           8080,
		LogLevel:             "error",
		APIKeys:              testAPIKey,
		APIKeyHeader:         "X-API-Key",
		APIKeyQueryEnabled:   true,
		APIKeyQueryParam:     "api_key",
	}

	// Create DI container
	container := app.NewContainer(cfg)

	// Setup HTTP server
	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil")

	// Create test server with the handler
	testServer := httptest.NewServer(handler)

	t.Logf("Integration test setup complete for %s", dbDriver)

	return &integrationTestContext{
		container: container,
		db:        db,
		server:    testServer,
		dbDriver:  dbDriver,
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}

	if ctx.container != nil {
		err := ctx.container.Shutdown(context.Background())
		if err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}

	if ctx.db != nil {
		testutil.TeardownDB(t, ctx.db)
	}

	t.Logf("Integration test teardown complete for %s", ctx.dbDriver)
}

// validItemRequest returns a well-formed create payload with the given ISBN.
func validItemRequest(title, isbn string) *catalogDTO.CreateItemRequest {
	return &catalogDTO.CreateItemRequest{
		Title:  title,
		Author: "Ursula K. Le Guin",
		ISBN:   isbn,
		Location: catalogDTO.LocationRequest{
			Aisle: "F12",
			Floor: 2,
			Shelf: "S4",
		},
	}
}

// TestIntegration_Health_BasicChecks validates infrastructure health and readiness endpoints.
func TestIntegration_Health_BasicChecks(t *testing.T) {
	// Skip if short mode (integration tests can be slow)
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name     string
		dbDriver string
	}{
		{"PostgreSQL", "postgres"},
		{"MySQL", "mysql"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			// [1/3] Test GET /health without a credential
			t.Run("01_HealthCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil, false)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "ok", response["status"])
			})

			// [2/3] Test GET /ready without a credential
			t.Run("02_ReadinessCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/ready", nil, false)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "ok", response["status"])
			})

			// [3/3] Health endpoints still carry a correlation ID
			t.Run("03_RequestIDEcho", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodGet, "/health", nil, false)
				echoed := resp.Header.Get(internalHTTP.RequestIDHeader)
				_, err := uuid.Parse(echoed)
				assert.NoError(t, err, "generated request ID should be a canonical UUID")
			})
		})
	}
}

// TestIntegration_Items_CompleteFlow tests the full catalog item lifecycle
// including creation, retrieval, listing, updating, and deletion.
func TestIntegration_Items_CompleteFlow(t *testing.T) {
	// Skip if short mode (integration tests can be slow)
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name     string
		dbDriver string
	}{
		{"PostgreSQL", "postgres"},
		{"MySQL", "mysql"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			var itemID string

			// [1/8] Create an item
			t.Run("01_CreateItem", func(t *testing.T) {
				payload := validItemRequest("The Dispossessed", "978-0-06-051275-6")
				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/items", payload, true)
				require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", body)

				var item catalogDTO.ItemResponse
				err := json.Unmarshal(body, &item)
				require.NoError(t, err)
				assert.Equal(t, "The Dispossessed", item.Title)
				assert.Equal(t, "978-0-06-051275-6", item.ISBN)
				assert.Equal(t, "F12", item.Location.Aisle)
				assert.False(t, item.CreatedAt.IsZero())

				_, err = uuid.Parse(item.ID)
				require.NoError(t, err, "item ID should be a UUID")
				itemID = item.ID
			})

			// [2/8] Retrieve the item by ID
			t.Run("02_GetItem", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/items/"+itemID, nil, true)
				require.Equal(t, http.StatusOK, resp.StatusCode)

				var item catalogDTO.ItemResponse
				err := json.Unmarshal(body, &item)
				require.NoError(t, err)
				assert.Equal(t, itemID, item.ID)
				assert.Equal(t, "The Dispossessed", item.Title)
			})

			// [3/8] List items includes the created one
			t.Run("03_ListItems", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/items?offset=0&limit=10", nil, true)
				require.Equal(t, http.StatusOK, resp.StatusCode)

				var list catalogDTO.ListItemsResponse
				err := json.Unmarshal(body, &list)
				require.NoError(t, err)
				require.Len(t, list.Items, 1)
				assert.Equal(t, itemID, list.Items[0].ID)
				assert.Equal(t, 0, list.Offset)
				assert.Equal(t, 10, list.Limit)
			})

			// [4/8] Duplicate ISBN is rejected with a conflict
			t.Run("04_DuplicateISBN", func(t *testing.T) {
				payload := validItemRequest("Shadow Copy", "978-0-06-051275-6")
				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/items", payload, true)
				require.Equal(t, http.StatusConflict, resp.StatusCode)

				var envelope httputil.ErrorEnvelope
				err := json.Unmarshal(body, &envelope)
				require.NoError(t, err)
				assert.Equal(t, "ISBN_ALREADY_EXISTS", envelope.Error)
				assert.NotEmpty(t, envelope.RequestID)
			})

			// [5/8] Update the item
			t.Run("05_UpdateItem", func(t *testing.T) {
				payload := &catalogDTO.UpdateItemRequest{
					Title:  "The Dispossessed: An Ambiguous Utopia",
					Author: "Ursula K. Le Guin",
					ISBN:   "978-0-06-051275-6",
					Location: catalogDTO.LocationRequest{
						Aisle: "F13",
						Floor: 0,
						Shelf: "S1",
					},
				}
				resp, body := ctx.makeRequest(t, http.MethodPut, "/v1/items/"+itemID, payload, true)
				require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

				var item catalogDTO.ItemResponse
				err := json.Unmarshal(body, &item)
				require.NoError(t, err)
				assert.Equal(t, "The Dispossessed: An Ambiguous Utopia", item.Title)
				assert.Equal(t, "F13", item.Location.Aisle)
				assert.Equal(t, 0, item.Location.Floor)
			})

			// [6/8] Rows seeded directly in the database are readable via the API
			t.Run("06_SeededItemReadable", func(t *testing.T) {
				seededID := testutil.CreateTestItem(t, ctx.db, ctx.dbDriver, "978-0-306-40615-7")

				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/items/"+seededID.String(), nil, true)
				require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

				var item catalogDTO.ItemResponse
				err := json.Unmarshal(body, &item)
				require.NoError(t, err)
				assert.Equal(t, "Seeded Item", item.Title)
			})

			// [7/8] Delete the item
			t.Run("07_DeleteItem", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodDelete, "/v1/items/"+itemID, nil, true)
				require.Equal(t, http.StatusNoContent, resp.StatusCode)
				assert.Empty(t, body)
			})

			// [8/8] Deleted item is gone
			t.Run("08_GetDeletedItem", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/items/"+itemID, nil, true)
				require.Equal(t, http.StatusNotFound, resp.StatusCode)

				var envelope httputil.ErrorEnvelope
				err := json.Unmarshal(body, &envelope)
				require.NoError(t, err)
				assert.Equal(t, "ITEM_NOT_FOUND", envelope.Error)
			})
		})
	}
}

// TestIntegration_ErrorPipeline exercises authentication and error normalization
// end to end with a real database behind the stack.
func TestIntegration_ErrorPipeline(t *testing.T) {
	// Skip if short mode (integration tests can be slow)
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name     string
		dbDriver string
	}{
		{"PostgreSQL", "postgres"},
		{"MySQL", "mysql"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			// [1/6] Missing credential
			t.Run("01_MissingCredential", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/items", nil, false)
				require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

				var envelope httputil.ErrorEnvelope
				err := json.Unmarshal(body, &envelope)
				require.NoError(t, err)
				assert.Equal(t, "UNAUTHORIZED", envelope.Error)
				assert.Equal(t, "Missing API key", envelope.Message)
			})

			// [2/6] Invalid credential
			t.Run("02_InvalidCredential", func(t *testing.T) {
				req, err := http.NewRequest(http.MethodGet, ctx.server.URL+"/v1/items", nil)
				require.NoError(t, err)
				req.Header.Set("X-API-Key", "wrong-key")

				client := &http.Client{Timeout: 10 * time.Second}
				resp, err := client.Do(req)
				require.NoError(t, err)
				defer func() { _ = resp.Body.Close() }()

				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			})

			// [3/6] Query parameter fallback authenticates
			t.Run("03_QueryFallback", func(t *testing.T) {
				path := fmt.Sprintf("/v1/items?api_key=%s", testAPIKey)
				resp, _ := ctx.makeRequest(t, http.MethodGet, path, nil, false)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			})

			// [4/6] Validation failure carries field errors
			t.Run("04_ValidationFailure", func(t *testing.T) {
				payload := validItemRequest("", "not-an-isbn")
				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/items", payload, true)
				require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

				var envelope httputil.ErrorEnvelope
				err := json.Unmarshal(body, &envelope)
				require.NoError(t, err)
				assert.Equal(t, "VALIDATION_ERROR", envelope.Error)
				assert.NotEmpty(t, envelope.ValidationErrors)
			})

			// [5/6] Malformed item ID
			t.Run("05_MalformedItemID", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/items/not-a-uuid", nil, true)
				require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

				var envelope httputil.ErrorEnvelope
				err := json.Unmarshal(body, &envelope)
				require.NoError(t, err)
				assert.Equal(t, "VALIDATION_ERROR", envelope.Error)
			})

			// [6/6] Inbound request ID is echoed on the response and in the envelope
			t.Run("06_RequestIDRoundTrip", func(t *testing.T) {
				inbound := uuid.NewString()
				req, err := http.NewRequest(http.MethodGet, ctx.server.URL+"/v1/items/"+uuid.NewString(), nil)
				require.NoError(t, err)
				req.Header.Set("X-API-Key", testAPIKey)
				req.Header.Set(internalHTTP.RequestIDHeader, inbound)

				client := &http.Client{Timeout: 10 * time.Second}
				resp, err := client.Do(req)
				require.NoError(t, err)
				defer func() { _ = resp.Body.Close() }()

				require.Equal(t, http.StatusNotFound, resp.StatusCode)
				assert.Equal(t, inbound, resp.Header.Get(internalHTTP.RequestIDHeader))

				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				var envelope httputil.ErrorEnvelope
				err = json.Unmarshal(body, &envelope)
				require.NoError(t, err)
				assert.Equal(t, inbound, envelope.RequestID)
			})
		})
	}
}
