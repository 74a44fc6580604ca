// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/bytebank/backend/internal/application/usecase/attachment"
	"github.com/bytebank/backend/internal/application/usecase/auth"
	"github.com/bytebank/backend/internal/application/usecase/ledger"
	"github.com/bytebank/backend/internal/application/usecase/transaction"
	"github.com/bytebank/backend/internal/infra/server/router"
	"github.com/bytebank/backend/internal/integration/adapters"
	"github.com/bytebank/backend/internal/integration/entrypoint/controller"
	"github.com/bytebank/backend/internal/integration/entrypoint/middleware"
	"github.com/bytebank/backend/internal/integration/persistence"
	"github.com/bytebank/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// userCounter guarantees a unique email per scenario.
var userCounter int64

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string

	// Last created transaction, for PATCH/DELETE steps
	lastTransactionID string

	// Blob storage double
	storage *mock.FileStorage
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables the login rate limiter
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := db.Reset(); err != nil {
			return ctx, err
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		storage := mock.NewFileStorage()

		userRepo := persistence.NewUserRepository(db.DbConn)
		tokenRepo := persistence.NewTokenRepository(db.DbConn)
		transactionRepo := persistence.NewTransactionRepository(db.DbConn)
		ledgerRepo := persistence.NewLedgerRepository(db.DbConn)

		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo, redisClient)

		authController := controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
			auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
			auth.NewRefreshTokenUseCase(tokenService),
			auth.NewLogoutUserUseCase(tokenService),
		)
		transactionController := controller.NewTransactionController(
			transaction.NewListTransactionsUseCase(transactionRepo),
			transaction.NewCreateTransactionUseCase(ledgerRepo),
			transaction.NewUpdateTransactionUseCase(transactionRepo, ledgerRepo),
			transaction.NewDeleteTransactionUseCase(transactionRepo, ledgerRepo, storage),
		)
		ledgerController := controller.NewLedgerController(
			ledger.NewGetBalanceUseCase(ledgerRepo),
			ledger.NewGetInvestmentSummaryUseCase(ledgerRepo),
		)
		attachmentController := controller.NewAttachmentController(
			attachment.NewUploadAttachmentUseCase(storage),
		)
		healthController := controller.NewHealthController(func() bool { return true })

		r := router.NewRouter(
			healthController,
			authController,
			transactionController,
			ledgerController,
			attachmentController,
			middleware.NewRateLimiter(),
			middleware.NewAuthMiddleware(tokenService),
		)

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			storage:        storage,
		}
		tc.engine = r.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I send a "([^"]*)" request to the last created transaction$`, iSendARequestToLastTransaction)
	ctx.Step(`^I send a "([^"]*)" request to the last created transaction with body:$`, iSendARequestToLastTransactionWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am a logged in user$`, iAmALoggedInUser)
	ctx.Step(`^I have created a transaction with body:$`, iHaveCreatedATransactionWithBody)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	content := tc.expandPlaceholders(body.Content)
	if err := tc.doRequest(method, endpoint, bytes.NewBufferString(content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToLastTransaction(ctx context.Context, method string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.lastTransactionID == "" {
		return ctx, fmt.Errorf("no transaction has been created in this scenario")
	}
	if err := tc.doRequest(method, "/api/v1/transactions/"+tc.lastTransactionID, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToLastTransactionWithBody(ctx context.Context, method string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.lastTransactionID == "" {
		return ctx, fmt.Errorf("no transaction has been created in this scenario")
	}
	if err := tc.doRequest(method, "/api/v1/transactions/"+tc.lastTransactionID, bytes.NewBufferString(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

// iAmALoggedInUser registers a fresh user through the API and keeps the
// issued token pair for subsequent requests.
func iAmALoggedInUser(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	email := fmt.Sprintf("user%d@bytebank.test", atomic.AddInt64(&userCounter, 1))
	body := fmt.Sprintf(`{"email":%q,"name":"Test User","password":"Str0ngPass!"}`, email)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var authResp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &authResp); err != nil {
		return ctx, fmt.Errorf("failed to parse auth response: %w", err)
	}

	tc.accessToken = authResp.AccessToken
	tc.refreshToken = authResp.RefreshToken
	return SetTestContext(ctx, tc), nil
}

func iHaveCreatedATransactionWithBody(ctx context.Context, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body.Content)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("transaction creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return ctx, fmt.Errorf("failed to parse transaction response: %w", err)
	}

	tc.lastTransactionID = created.ID
	return SetTestContext(ctx, tc), nil
}

// expandPlaceholders substitutes scenario state into request bodies.
func (tc *TestContext) expandPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{refresh_token}", tc.refreshToken)
	content = strings.ReplaceAll(content, "{access_token}", tc.accessToken)
	return content
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return fmt.Errorf("%w. Body: %s", err, string(tc.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	if _, err := lookupField(tc.responseBody, field); err != nil {
		return fmt.Errorf("%w. Body: %s", err, string(tc.responseBody))
	}
	return nil
}

// lookupField resolves a dotted path like "pagination.total" or
// "allocations.0.category" against a JSON document.
func lookupField(body []byte, path string) (interface{}, error) {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := doc
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response", path)
			}
			current = value
		case []interface{}:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("field '%s' not found in response", path)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}
	return current, nil
}
